// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/creatured/configuration"
	"github.com/bitmark-inc/creatured/registry"
)

// applies registry options from a changed configuration file
type reloader struct {
	log      *logger.L
	fileName string
	registry registry.Registry
	watcher  configuration.Watcher
	channels configuration.WatcherChannels
	shutdown chan struct{}
	done     chan struct{}
}

// start watching the configuration file
//
// only the registry section is reloaded, all other changes need a restart
func newReloader(log *logger.L, fileName string, reg registry.Registry) (*reloader, error) {
	channels := configuration.WatcherChannels{
		Change: make(chan struct{}, 1),
		Remove: make(chan struct{}, 1),
	}

	watcher, err := configuration.NewWatcher(fileName, log, channels)
	if nil != err {
		return nil, err
	}

	r := &reloader{
		log:      log,
		fileName: fileName,
		registry: reg,
		watcher:  watcher,
		channels: channels,
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}

	// a failed start releases the watcher
	err = watcher.Start()
	if nil != err {
		return nil, err
	}

	go r.run()

	return r, nil
}

func (r *reloader) run() {
	defer close(r.done)
loop:
	for {
		select {
		case <-r.shutdown:
			break loop
		case <-r.channels.Remove:
			r.log.Warnf("configuration: %q removed, keeping current options", r.fileName)
		case <-r.channels.Change:
			r.reload()
		}
	}
}

func (r *reloader) reload() {
	c, err := getConfiguration(r.fileName)
	if nil != err {
		r.log.Errorf("configuration: %q reload error: %s", r.fileName, err)
		return
	}
	r.registry.Reconfigure(c.Registry)
}

// stop watching
func (r *reloader) stop() {
	close(r.shutdown)
	<-r.done
	if err := r.watcher.Stop(); nil != err {
		r.log.Errorf("watcher stop error: %s", err)
	}
}
