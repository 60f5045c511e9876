// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrCannotDecodeAccount      = InvalidError("cannot decode account")
	ErrCertificateFileExists    = ExistsError("certificate file already exists")
	ErrChecksumMismatch         = ProcessError("checksum mismatch")
	ErrConfigurationNotTable    = InvalidError("configuration did not return a table")
	ErrDatabaseIsNotSet         = ProcessError("database is not set")
	ErrFileNotFound             = NotFoundError("file not found")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidIdentifier        = InvalidError("invalid identifier")
	ErrInvalidIPAddress         = InvalidError("invalid IP address")
	ErrInvalidKeyLength         = LengthError("invalid key length")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidPublicKeyFile     = InvalidError("invalid public key file")
	ErrInvalidPrivateKeyFile    = InvalidError("invalid private key file")
	ErrInvalidSignature         = InvalidError("invalid signature")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrInvalidTrait             = InvalidError("invalid trait")
	ErrKeyFileExists            = ExistsError("key file already exists")
	ErrMissingParameters        = InvalidError("missing parameters")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrNotPublicKey             = RecordError("not a public key")
	ErrRateLimiting             = InvalidError("rate limiting")
	ErrRecordTruncated          = LengthError("record is truncated")
	ErrTransactionAlreadyInUse  = ProcessError("transaction already in use")
	ErrTransactionNotInProgress = ProcessError("transaction not in progress")
	ErrUnauthenticated          = InvalidError("unauthenticated")
	ErrWrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
