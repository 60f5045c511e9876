// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/creatured/fault"
)

// Watcher - signals changes to a single configuration file
type Watcher interface {
	Start() error
	Stop() error
}

// WatcherChannels - change and remove notifications
//
// sends never block, an event is discarded if its channel is full
type WatcherChannels struct {
	Change chan struct{}
	Remove chan struct{}
}

type watcher struct {
	log      *logger.L
	channels WatcherChannels
	notify   *fsnotify.Watcher
	filePath string
	done     chan struct{}

	sync.Mutex
	running bool
}

// NewWatcher - watch an existing file
func NewWatcher(fileName string, log *logger.L, channels WatcherChannels) (Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrFileNotFound
	}

	notify, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	return &watcher{
		log:      log,
		channels: channels,
		notify:   notify,
		filePath: filePath,
		done:     make(chan struct{}),
	}, nil
}

// Start - begin delivering events
//
// the directory is watched so that editors which replace the file
// are still seen
//
// on failure the underlying watcher is released
func (w *watcher) Start() error {
	w.Lock()
	defer w.Unlock()

	if w.running {
		return fault.ErrAlreadyInitialised
	}

	err := w.notify.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		_ = w.notify.Close()
		return err
	}

	w.running = true
	go w.loop()

	return nil
}

// Stop - release the underlying watcher, safe to call before Start
func (w *watcher) Stop() error {
	w.Lock()
	running := w.running
	w.Unlock()

	err := w.notify.Close()
	if running {
		<-w.done
	}
	return err
}

func (w *watcher) loop() {
	defer close(w.done)

loop:
	for {
		select {
		case event, ok := <-w.notify.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			w.log.Debugf("file event: %v", event)

			if isRemove(event) {
				w.log.Warnf("file: %q removed", w.filePath)
				w.send(w.channels.Remove, "remove")
				continue loop
			}
			if isChange(event) {
				w.send(w.channels.Change, "change")
			}

		case err, ok := <-w.notify.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
	w.log.Info("watcher stopped")
}

func (w *watcher) send(ch chan<- struct{}, name string) {
	if nil == ch {
		return
	}
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel: %s full, discard event", name)
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
