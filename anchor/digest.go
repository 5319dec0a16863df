// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package anchor

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rymnc/fuel-gossiper/fault"
)

// DigestLength - number of bytes in a digest
const DigestLength = 32

// Digest - a 32 byte commitment, big-endian as written in hex
type Digest [DigestLength]byte

// DigestFromBytes - copy a slice into a digest after checking its length
func DigestFromBytes(b []byte) (Digest, error) {
	d := Digest{}
	if DigestLength != len(b) {
		return d, fault.WithItem(fault.InvalidDigest, hex.EncodeToString(b), fmt.Errorf("length: %d  expected: %d", len(b), DigestLength))
	}
	copy(d[:], b)
	return d, nil
}

// DigestFromHex - decode "0x" followed by 64 hex digits, the prefix is optional
func DigestFromHex(s string) (Digest, error) {
	h := strings.TrimSpace(s)
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}

	if 2*DigestLength != len(h) {
		return Digest{}, fault.WithItem(fault.InvalidDigest, s, fmt.Errorf("hex length: %d  expected: %d", len(h), 2*DigestLength))
	}

	b, err := hex.DecodeString(h)
	if nil != err {
		return Digest{}, fault.WithItem(fault.InvalidDigest, s, err)
	}
	return DigestFromBytes(b)
}

// Bytes - a copy of the digest as a slice
func (d Digest) Bytes() []byte {
	b := make([]byte, DigestLength)
	copy(b, d[:])
	return b
}

// String - "0x" prefixed hex
func (d Digest) String() string {
	return "0x" + hex.EncodeToString(d[:])
}

// MarshalText - for JSON and log output
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - accepts the same forms as DigestFromHex
func (d *Digest) UnmarshalText(s []byte) error {
	v, err := DigestFromHex(string(s))
	if nil != err {
		return err
	}
	*d = v
	return nil
}
