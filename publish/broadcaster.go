// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/creatured/messagebus"
	"github.com/bitmark-inc/creatured/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	zapDomain = "publish"
)

type broadcaster struct {
	log     *logger.L
	queue   <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string) error {

	brdc.log = log

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	brdc.socket4 = socket4
	brdc.socket6 = socket6

	return nil
}

// Run - wait for events and send them to all subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		log.Debug("waiting…")

		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			err := brdc.process(item)
			if nil != err {
				log.Errorf("publish: %s  error: %s", item.Name, err)
			}
		}
	}

	log.Info("shutting down…")
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send one event to all sockets
func (brdc *broadcaster) process(item messagebus.Message) error {
	message, err := Encode(item)
	if nil != err {
		return err
	}

	brdc.log.Debugf("publish: %s  data: %s", message[0], message[1])

	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		_, err := socket.SendMessage(message[0], message[1])
		if nil != err {
			return err
		}
	}
	return nil
}

// Encode - the two parts of a published event: name and JSON body
func Encode(item messagebus.Message) ([][]byte, error) {
	data, err := json.Marshal(item.Event)
	if nil != err {
		return nil, err
	}
	return [][]byte{[]byte(item.Name), data}, nil
}
