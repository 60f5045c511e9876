// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/logger"
)

// Message - one event as seen by a listener
type Message struct {
	Name  string
	Event creature.Event
}

// BroadcastQueue - deliver each deposited event to every listener
type BroadcastQueue struct {
	sync.RWMutex
	log       *logger.L
	listeners []chan Message
	dropped   uint64
}

// New - create an empty broadcast queue
//
// log may be nil
func New(log *logger.L) *BroadcastQueue {
	return &BroadcastQueue{
		log:       log,
		listeners: make([]chan Message, 0),
	}
}

// Chan - add a listener with a queue of the given size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size < 0 {
		size = 0
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - close all listener channels
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	for _, c := range queue.listeners {
		close(c)
	}
	queue.listeners = make([]chan Message, 0)
	queue.Unlock()
}

// Deposit - send an event to all current listeners
func (queue *BroadcastQueue) Deposit(event creature.Event) {
	m := Message{
		Name:  event.Name(),
		Event: event,
	}

	queue.RLock()
	defer queue.RUnlock()

	for i, c := range queue.listeners {
		select {
		case c <- m:
		default:
			atomic.AddUint64(&queue.dropped, 1)
			if nil != queue.log {
				queue.log.Warnf("listener: %d  full, dropped: %s", i, m.Name)
			}
		}
	}
}

// Listeners - number of registered listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.listeners)
}

// Dropped - total deliveries missed because a listener was full
func (queue *BroadcastQueue) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}
