// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package si702x

import (
	"errors"
	"fmt"
)

// Status is the outcome of a driver operation. The transport values share
// their numbering with the two-wire endTransmission codes; the driver adds its
// own refusals after them.
type Status uint8

const (
	Success Status = iota
	DataTooLong
	AddressNack
	DataNack
	OtherError
	HeaterLevelOutOfRange
	VoltageTooLow
	ResolutionInvalid
)

var statusNames = [...]string{
	Success:               "success",
	DataTooLong:           "data too long",
	AddressNack:           "address nack",
	DataNack:              "data nack",
	OtherError:            "other error",
	HeaterLevelOutOfRange: "heater level out of range",
	VoltageTooLow:         "voltage too low",
	ResolutionInvalid:     "resolution invalid",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Transport errors. An i2c.Bus implementation that can tell these conditions
// apart should return (or wrap) them so that StatusOf reports them.
var (
	ErrDataTooLong = errors.New("si702x: data too long for transmit buffer")
	ErrAddressNack = errors.New("si702x: address not acknowledged")
	ErrDataNack    = errors.New("si702x: data not acknowledged")
)

// Errors produced by the driver itself. None of them is returned after a
// register write has been attempted.
var (
	ErrHeaterLevel   = errors.New("si702x: heater level out of range 0-15")
	ErrVoltageTooLow = errors.New("si702x: supply voltage too low to enable heater")
	ErrResolution    = errors.New("si702x: invalid resolution")
	ErrChecksum      = errors.New("si702x: measurement checksum mismatch")
)

// StatusOf classifies an error returned by this package. A nil error is
// Success, and any error it doesn't recognize is OtherError.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrDataTooLong):
		return DataTooLong
	case errors.Is(err, ErrAddressNack):
		return AddressNack
	case errors.Is(err, ErrDataNack):
		return DataNack
	case errors.Is(err, ErrHeaterLevel):
		return HeaterLevelOutOfRange
	case errors.Is(err, ErrVoltageTooLow):
		return VoltageTooLow
	case errors.Is(err, ErrResolution):
		return ResolutionInvalid
	}
	return OtherError
}
