// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - send registry events to ZeroMQ subscribers
package publish

import (
	"sync"

	"github.com/bitmark-inc/creatured/background"
	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/messagebus"
	"github.com/bitmark-inc/creatured/zmqutil"
	"github.com/bitmark-inc/logger"
)

// size of the event queue between the bus and the sockets
const queueSize = 1000

// Configuration - a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting events

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start publishing events from the bus
//
// nothing is started when no broadcast addresses are configured
func Initialise(configuration *Configuration, bus *messagebus.BroadcastQueue) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses: publishing disabled")
		return nil
	}

	privateKey := []byte{}
	publicKey := []byte{}
	if "" != configuration.PrivateKey {
		var err error
		privateKey, err = zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		publicKey, err = zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}
		globalData.log.Tracef("public key:  %x", publicKey)

		err = zmqutil.StartAuthentication()
		if nil != err {
			globalData.log.Errorf("zmq authentication error: %s", err)
			return err
		}
	}

	err := globalData.brdc.initialise(globalData.log, privateKey, publicKey, configuration.Broadcast)
	if nil != err {
		return err
	}
	globalData.brdc.queue = bus.Chan(queueSize)

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
