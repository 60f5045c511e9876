// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)

	assert.Nil(t, ratelimit.Limit(limiter), "single")
	assert.Nil(t, ratelimit.LimitN(limiter, 5, 10), "multiple")

	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 10), "zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 11, 10), "over maximum")
}

func TestBurstExceeded(t *testing.T) {
	limiter := rate.NewLimiter(100, 2)

	// more than the burst can never be reserved
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(limiter, 5, 10), "burst")

	zero := rate.NewLimiter(0, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(zero), "no tokens")
}
