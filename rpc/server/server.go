// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/creatured/counter"
	"github.com/bitmark-inc/creatured/registry"
	"github.com/bitmark-inc/creatured/rpc/creatures"
	"github.com/bitmark-inc/creatured/rpc/node"
	"github.com/bitmark-inc/creatured/rpc/owner"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, reg registry.Registry) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(creatures.New(log, reg))
	_ = server.Register(owner.New(log, reg))
	_ = server.Register(node.New(log, reg, start, version, rpcCount))

	return server
}
