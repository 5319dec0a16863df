// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised   = ExistsError("already initialised")
	InvalidConfiguration = InvalidError("invalid configuration")
	InvalidDigest        = InvalidError("invalid digest")
	InvalidHostName      = InvalidError("invalid host name")
	InvalidKey           = InvalidError("invalid key")
	InvalidPeerAddress   = InvalidError("invalid peer address")
	InvalidPortNumber    = InvalidError("invalid port number")
	MessageTooLarge      = LengthError("message too large")
	MisplacedPeerID      = InvalidError("peer id is not the last component")
	MissingPeerID        = InvalidError("missing peer id")
	MissingTransport     = InvalidError("missing transport address")
	NoAddress            = NotFoundError("no address")
	NotInitialised       = NotFoundError("not initialised")
	PublishFailure       = ProcessError("publish failure")
	RateLimiting         = ProcessError("rate limiting")
	ServiceTerminated    = ProcessError("service terminated")
	UnknownMessage       = InvalidError("unknown message")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any item wrapper
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }

// ItemError - a class error together with the input that caused it
type ItemError struct {
	Class error
	Item  string
	cause error
}

// WithItem - wrap a class error so that its message names the offending item
func WithItem(class error, item string, cause error) error {
	return &ItemError{
		Class: class,
		Item:  item,
		cause: cause,
	}
}

// Error - class: "item": cause
func (e *ItemError) Error() string {
	if nil == e.cause {
		return fmt.Sprintf("%s: %q", e.Class, e.Item)
	}
	return fmt.Sprintf("%s: %q: %s", e.Class, e.Item, e.cause)
}

// Unwrap - the class, so errors.Is(err, fault.InvalidKey) holds
func (e *ItemError) Unwrap() error {
	return e.Class
}

// Cause - the underlying library error, if any
func (e *ItemError) Cause() error {
	return e.cause
}
