// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rymnc/fuel-gossiper/fault"
	"github.com/rymnc/fuel-gossiper/keypair"
)

const (
	// private key 1, public key is the generator point
	keyOne = "0x0000000000000000000000000000000000000000000000000000000000000001"

	generatorPoint = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

	// secp256k1 group order
	curveOrder = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

	testVariable = "GOSSIPER_TEST_KEYPAIR"
)

func TestDerive(t *testing.T) {
	identity, err := keypair.Derive(keyOne)
	if !assert.NoError(t, err, "derive error") {
		return
	}

	// identity multihash of the protobuf encoded compressed public key
	expected, _ := hex.DecodeString("0025" + "08021221" + generatorPoint)
	assert.Equal(t, expected, []byte(identity.ID()), "wrong peer id")
	assert.True(t, strings.HasPrefix(identity.String(), "16Uiu2HA"), "unexpected peer id text: %s", identity)

	public, err := identity.PrivateKey().GetPublic().Raw()
	assert.NoError(t, err, "public key")
	assert.Equal(t, generatorPoint, hex.EncodeToString(public), "wrong public key")
}

func TestDeriveAcceptedForms(t *testing.T) {
	secrets := []string{
		keyOne,
		keyOne[2:],
		"  " + keyOne + "\n",
		"0X" + keyOne[2:],
	}
	for i, s := range secrets {
		identity, err := keypair.Derive(s)
		if assert.NoError(t, err, "%d: derive error", i) {
			assert.Equal(t, "16Uiu2HAm3cuhhRL2msUuLF62KRSfneFDx94RsuouyW25Ho42cFMq", identity.String(), "%d: peer id", i)
		}
	}
}

func TestDeriveInvalid(t *testing.T) {
	orderPlusOne := curveOrder[:63] + "2"
	secrets := []struct {
		secret string
		cause  error
	}{
		{"", keypair.ErrKeyLength},
		{"0x", keypair.ErrKeyLength},
		{"0x" + strings.Repeat("zz", 32), keypair.ErrNotHex},
		{"0x" + strings.Repeat("01", 31), keypair.ErrKeyLength},
		{"0x" + strings.Repeat("01", 33), keypair.ErrKeyLength},
		{"0x" + strings.Repeat("00", 32), keypair.ErrKeyRange},
		{"0x" + curveOrder, keypair.ErrKeyRange},
		{"0x" + orderPlusOne, keypair.ErrKeyRange},
		{"0x" + strings.Repeat("ff", 32), keypair.ErrKeyRange},
	}
	for i, item := range secrets {
		identity, err := keypair.Derive(item.secret)
		assert.Nil(t, identity, "%d: identity returned", i)
		if !assert.Error(t, err, "%d: accepted", i) {
			continue
		}
		assert.True(t, errors.Is(err, fault.InvalidKey), "%d: wrong class: %s", i, err)

		var ie *fault.ItemError
		if assert.True(t, errors.As(err, &ie), "%d: not an item error", i) {
			assert.Equal(t, item.cause, ie.Cause(), "%d: wrong cause", i)
		}
		if "" != item.secret && "0x" != item.secret {
			assert.NotContains(t, err.Error(), item.secret[2:], "%d: secret echoed", i)
		}
	}
}

func TestFromEnvironment(t *testing.T) {
	os.Unsetenv(testVariable)
	_, err := keypair.FromEnvironment(testVariable)
	assert.True(t, errors.Is(err, fault.InvalidKey), "unset variable accepted: %v", err)
	assert.Contains(t, err.Error(), testVariable, "variable not named")

	os.Setenv(testVariable, "0x1234")
	defer os.Unsetenv(testVariable)
	_, err = keypair.FromEnvironment(testVariable)
	assert.True(t, errors.Is(err, fault.InvalidKey), "short key accepted: %v", err)
	assert.Contains(t, err.Error(), testVariable, "variable not named")

	os.Setenv(testVariable, keyOne)
	identity, err := keypair.FromEnvironment(testVariable)
	assert.NoError(t, err, "valid key rejected")
	assert.NotNil(t, identity, "no identity")
}

func TestGenerate(t *testing.T) {
	secret1, identity1, err := keypair.Generate()
	assert.NoError(t, err, "generate error")
	secret2, identity2, err := keypair.Generate()
	assert.NoError(t, err, "generate error")

	assert.Len(t, secret1, 66, "secret length")
	assert.NotEqual(t, secret1, secret2, "same secret twice")
	assert.NotEqual(t, identity1.ID(), identity2.ID(), "same identity twice")

	derived, err := keypair.Derive(secret1)
	assert.NoError(t, err, "generated secret rejected")
	assert.Equal(t, identity1.ID(), derived.ID(), "derive does not reproduce identity")
}
