// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tinygoi2c exposes a TinyGo I²C peripheral as a periph i2c.Bus, so
// drivers in this repository can run on microcontrollers.
//
// The bus clock is configured on the TinyGo side (machine.I2CConfig) before
// the bus is wrapped; SetSpeed is not supported.
//
// Errors from the wrapped bus are passed through with %w. TinyGo's machine
// package does not export distinct NACK or overflow errors, so si702x.StatusOf
// reports them as OtherError. A drivers.I2C that returns (or wraps)
// si702x.ErrAddressNack, ErrDataNack or ErrDataTooLong keeps the finer
// classification through the adapter.
package tinygoi2c

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

// Bus adapts a drivers.I2C to i2c.Bus.
type Bus struct {
	bus  drivers.I2C
	name string
}

// New wraps bus. name is returned by String.
func New(bus drivers.I2C, name string) *Bus {
	return &Bus{bus: bus, name: name}
}

func (b *Bus) String() string {
	return b.name
}

// Tx implements i2c.Bus. The write and read halves go out as one
// transaction with a repeated start.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if err := b.bus.Tx(addr, w, r); err != nil {
		return fmt.Errorf("tinygoi2c: %s: %w", b.name, err)
	}
	return nil
}

// SetSpeed implements i2c.Bus.
func (b *Bus) SetSpeed(physic.Frequency) error {
	return errors.New("tinygoi2c: SetSpeed is not supported")
}

var _ i2c.Bus = &Bus{}
