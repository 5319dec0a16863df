// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package supervisor

import (
	"github.com/rymnc/fuel-gossiper/gossip"
)

// HeightState - highest block height seen, never decreases
type HeightState struct {
	highest gossip.Height
}

// Observe - record a height, true only if it is strictly higher
func (h *HeightState) Observe(height gossip.Height) bool {
	if height <= h.highest {
		return false
	}
	h.highest = height
	return true
}

// Highest - current value
func (h HeightState) Highest() gossip.Height {
	return h.highest
}
