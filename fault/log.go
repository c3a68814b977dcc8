// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"runtime"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel for last ditch messages
var log *logger.L

// Initialise - set up a log channel for last attempt to log something
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Critical - log a simple string
func Critical(message string) {
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) "+message, file, line)
	} else {
		internalCriticalf("%s", message)
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

// Panic - log a message and panic
func Panic(message string) {
	Critical(message)
	Finalise()
	panic(message)
}

// Panicf - log a formatted message and panic
func Panicf(format string, arguments ...interface{}) {
	Criticalf(format, arguments...)
	Finalise()
	panic("fault.Panicf")
}

// PanicIfError - panic with a message if the error is not nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	Panicf("%s failed with error: %s", message, err)
}

// log or fallback
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		logger.Criticalf(format, arguments...)
	} else {
		log.Criticalf(format, arguments...)
	}
}
