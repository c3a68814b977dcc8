// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCannotDecodeAccount  = InvalidError("cannot decode account")
	ErrChecksumMismatch     = ProcessError("checksum mismatch")
	ErrInvalidHash          = NotFoundError("invalid hash")
	ErrInvalidKeyType       = InvalidError("invalid key type")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidNonce         = InvalidError("invalid nonce")
	ErrInvalidOwner         = InvalidError("invalid owner")
	ErrInvalidSeedLength    = InvalidError("invalid seed length")
	ErrInvalidSignature     = InvalidError("invalid signature")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrLongNameProvided     = InvalidError("long name provided")
	ErrNotAssetIdentifier   = InvalidError("not an asset identifier")
	ErrNotAssetRecord       = InvalidError("not an asset record")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrNotMetadata          = InvalidError("not metadata")
	ErrNotPublicKey         = InvalidError("not a public key")
	ErrShortNameProvided    = InvalidError("short name provided")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
