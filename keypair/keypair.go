// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - the network identity of the node
//
// The identity is a secp256k1 private key supplied as 64 hex digits
// (optionally "0x" prefixed) in the KEYPAIR environment variable.
// It is never written anywhere and never logged; only the derived
// peer id is displayed.
package keypair

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/btcsuite/btcd/btcec"
	"github.com/libp2p/go-libp2p-core/crypto"
	peerlib "github.com/libp2p/go-libp2p-core/peer"

	"github.com/rymnc/fuel-gossiper/fault"
)

// EnvironmentVariable - where the secret is normally found
const EnvironmentVariable = "KEYPAIR"

const secretLength = 32

// error causes, none of them include the secret
var (
	ErrNotSet    = fault.NotFoundError("variable is not set")
	ErrNotHex    = fault.InvalidError("secret is not hexadecimal")
	ErrKeyLength = fault.InvalidError("key length is invalid")
	ErrKeyRange  = fault.InvalidError("key is outside the curve order")
)

// Identity - private key and the peer id derived from it
type Identity struct {
	privateKey crypto.PrivKey
	id         peerlib.ID
}

// PrivateKey - for the network host
func (i *Identity) PrivateKey() crypto.PrivKey {
	return i.privateKey
}

// ID - the peer id
func (i *Identity) ID() peerlib.ID {
	return i.id
}

// String - only the peer id, so an identity is safe to log
func (i *Identity) String() string {
	return peerlib.IDB58Encode(i.id)
}

// FromEnvironment - derive the identity from the named variable
func FromEnvironment(name string) (*Identity, error) {
	secret, ok := os.LookupEnv(name)
	if !ok {
		return nil, fault.WithItem(fault.InvalidKey, name, ErrNotSet)
	}
	identity, err := Derive(secret)
	if nil != err {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return identity, nil
}

// Derive - convert the hex secret into an identity
func Derive(secret string) (*Identity, error) {
	s := strings.TrimSpace(secret)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}

	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.WithItem(fault.InvalidKey, "decode", ErrNotHex)
	}
	defer zero(b)

	if secretLength != len(b) {
		return nil, fault.WithItem(fault.InvalidKey, "length", ErrKeyLength)
	}

	k := new(big.Int).SetBytes(b)
	if 0 == k.Sign() || k.Cmp(btcec.S256().N) >= 0 {
		return nil, fault.WithItem(fault.InvalidKey, "range", ErrKeyRange)
	}

	privateKey, err := crypto.UnmarshalSecp256k1PrivateKey(b)
	if nil != err {
		return nil, fault.WithItem(fault.InvalidKey, "unmarshal", err)
	}

	id, err := peerlib.IDFromPrivateKey(privateKey)
	if nil != err {
		return nil, fault.WithItem(fault.InvalidKey, "peer id", err)
	}

	return &Identity{
		privateKey: privateKey,
		id:         id,
	}, nil
}

// Generate - a new random secret in the form accepted by Derive
func Generate() (string, *Identity, error) {
	privateKey, err := btcec.NewPrivateKey(btcec.S256())
	if nil != err {
		return "", nil, err
	}

	b := privateKey.Serialize()
	defer zero(b)

	secret := "0x" + hex.EncodeToString(b)
	identity, err := Derive(secret)
	if nil != err {
		return "", nil, err
	}
	return secret, identity, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
