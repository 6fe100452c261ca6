// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package si702x provides a driver for the Silicon Labs Si7013, Si7020 and
// Si7021 I²C humidity and temperature sensors.
//
// The driver keeps no copy of the device configuration. Every change to the
// user or heater control register reads the register, changes only the bits
// concerned and writes the byte back. Nothing stops another bus master, or
// another Dev on a different i2c.Bus handle, from writing the same register
// between the read and the write.
//
// # Datasheet
//
// https://www.silabs.com/documents/public/data-sheets/Si7021-A20.pdf
package si702x

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/GermanBionicSystems/sensors/common"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Address is the fixed I²C address of the device family.
const Address uint16 = 0x40

const (
	// Command bytes. Datasheet table 11.
	cmdMeasureRHHold   byte = 0xe5
	cmdMeasureTempHold byte = 0xe3
	cmdReset           byte = 0xfe
	cmdWriteUser       byte = 0xe6
	cmdReadUser        byte = 0xe7
	cmdWriteHeater     byte = 0x51
	cmdReadHeater      byte = 0x11
)

// Two byte commands.
var (
	cmdSerial   = []byte{0xfa, 0x0f}
	cmdDeviceID = []byte{0xfc, 0xc9}
	cmdFirmware = []byte{0x84, 0xb8}
)

const (
	// User register 1 bits.
	userRES1      byte = 1 << 7
	userVDDS      byte = 1 << 6
	userHTRE      byte = 1 << 2
	userRES0      byte = 1 << 0
	userResolMask byte = userRES1 | userRES0

	// Heater control register. The upper nibble is reserved.
	heaterLevelMask byte = 0x0f

	// MaxHeaterLevel is the highest value accepted by SetHeaterLevel.
	MaxHeaterLevel uint8 = 15

	// Time from soft reset to the device accepting commands.
	resetDuration = 15 * time.Millisecond
)

// Resolution selects the measurement resolution pair. The value is the two
// bit RES1:RES0 field of the user register.
type Resolution uint8

const (
	// RH 12 bit, temperature 14 bit. Power-on default.
	RH12Temp14 Resolution = 0b00
	RH8Temp12  Resolution = 0b01
	RH10Temp13 Resolution = 0b10
	RH11Temp11 Resolution = 0b11
)

// ResolutionBits builds a Resolution from its two bits, high bit first.
func ResolutionBits(rhBit, tempBit bool) Resolution {
	var r Resolution
	if rhBit {
		r |= 0b10
	}
	if tempBit {
		r |= 0b01
	}
	return r
}

func (r Resolution) String() string {
	switch r {
	case RH12Temp14:
		return "RH 12 bit, T 14 bit"
	case RH8Temp12:
		return "RH 8 bit, T 12 bit"
	case RH10Temp13:
		return "RH 10 bit, T 13 bit"
	case RH11Temp11:
		return "RH 11 bit, T 11 bit"
	default:
		return fmt.Sprintf("Resolution(%d)", uint8(r))
	}
}

// Opts holds the configuration options for the device.
type Opts struct {
	// Checksum makes measurements read the checksum byte the device appends
	// to each result and verify it. A mismatch returns ErrChecksum. Default
	// is false.
	Checksum bool
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{}

// Dev is a handle to an Si7013/Si7020/Si7021 sensor.
type Dev struct {
	d    *i2c.Dev
	opts Opts
	mu   sync.Mutex
}

// New returns a Dev talking to the sensor on bus. opts can be nil. No bus
// access happens until the first call.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	return &Dev{d: &i2c.Dev{Bus: bus, Addr: Address}, opts: *opts}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("si702x{%s}", d.d)
}

// Halt implements conn.Resource. The device has nothing running in the
// background.
func (d *Dev) Halt() error {
	return nil
}

// Reset issues a soft reset. The user and heater control registers return to
// their power-on values.
func (d *Dev) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.d.Tx([]byte{cmdReset}, nil); err != nil {
		return fmt.Errorf("si702x: error resetting %w", err)
	}
	time.Sleep(resetDuration)
	return nil
}

// measure runs a hold master measurement. The device stretches the clock
// until the conversion is done, so the result is read in the same
// transaction as the command.
func (d *Dev) measure(cmd byte) (uint16, error) {
	r := make([]byte, 2, 3)
	if d.opts.Checksum {
		r = r[:3]
	}
	if err := d.d.Tx([]byte{cmd}, r); err != nil {
		return 0, fmt.Errorf("si702x: error measuring %w", err)
	}
	if d.opts.Checksum && common.CRC8Init(r[:2], 0) != r[2] {
		return 0, ErrChecksum
	}
	return uint16(r[0])<<8 | uint16(r[1]), nil
}

// RawTemperature returns the unconverted temperature code.
func (d *Dev) RawTemperature() (uint16, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.measure(cmdMeasureTempHold)
}

// RawHumidity returns the unconverted relative humidity code.
func (d *Dev) RawHumidity() (uint16, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.measure(cmdMeasureRHHold)
}

// Humidity measures relative humidity in percent. See RelativeHumidity.
func (d *Dev) Humidity() (float64, error) {
	raw, err := d.RawHumidity()
	if err != nil {
		return 0, err
	}
	return RelativeHumidity(raw), nil
}

// Celsius measures the temperature in degrees Celsius.
func (d *Dev) Celsius() (float64, error) {
	raw, err := d.RawTemperature()
	if err != nil {
		return 0, err
	}
	return Celsius(raw), nil
}

func (d *Dev) celsiusTo(convert func(float64) float64) (float64, error) {
	c, err := d.Celsius()
	if err != nil {
		return 0, err
	}
	return convert(c), nil
}

// Kelvin measures the temperature in Kelvin.
func (d *Dev) Kelvin() (float64, error) {
	return d.celsiusTo(CelsiusToKelvin)
}

// Fahrenheit measures the temperature in degrees Fahrenheit.
func (d *Dev) Fahrenheit() (float64, error) {
	return d.celsiusTo(CelsiusToFahrenheit)
}

// Rankine measures the temperature in degrees Rankine.
func (d *Dev) Rankine() (float64, error) {
	return d.celsiusTo(CelsiusToRankine)
}

// Newton measures the temperature in degrees Newton.
func (d *Dev) Newton() (float64, error) {
	return d.celsiusTo(CelsiusToNewton)
}

// Delisle measures the temperature in degrees Delisle.
func (d *Dev) Delisle() (float64, error) {
	return d.celsiusTo(CelsiusToDelisle)
}

// Reaumur measures the temperature in degrees Réaumur.
func (d *Dev) Reaumur() (float64, error) {
	return d.celsiusTo(CelsiusToReaumur)
}

// Romer measures the temperature in degrees Rømer.
func (d *Dev) Romer() (float64, error) {
	return d.celsiusTo(CelsiusToRomer)
}

// Sense implements physic.SenseEnv. It takes one humidity and one temperature
// measurement. Pressure is always 0.
func (d *Dev) Sense(e *physic.Env) error {
	e.Temperature = 0
	e.Pressure = 0
	e.Humidity = 0
	d.mu.Lock()
	defer d.mu.Unlock()
	h, err := d.measure(cmdMeasureRHHold)
	if err != nil {
		return err
	}
	t, err := d.measure(cmdMeasureTempHold)
	if err != nil {
		return err
	}
	e.Humidity = countToHumidity(h)
	e.Temperature = countToTemperature(t)
	return nil
}

// SenseContinuous implements physic.SenseEnv. Polling is left to the caller.
func (d *Dev) SenseContinuous(time.Duration) (<-chan physic.Env, error) {
	return nil, errors.New("si702x: not implemented")
}

// Precision implements physic.SenseEnv. It reports the step size at the
// default resolution, 14 bit temperature and 12 bit humidity.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.Temperature(math.Round(temperatureScalar / (1 << 14) * float64(physic.Celsius)))
	e.Humidity = physic.RelativeHumidity(math.Round(humidityScalar / (1 << 12) * float64(physic.PercentRH)))
	e.Pressure = 0
}

// Serial returns the first 16 bits of the electronic serial number.
func (d *Dev) Serial() (uint16, error) {
	r := make([]byte, 2)
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.d.Tx(cmdSerial, r); err != nil {
		return 0, fmt.Errorf("si702x: error reading serial %w", err)
	}
	return uint16(r[0])<<8 | uint16(r[1]), nil
}

// DeviceID reads the part identification byte. Call String on the result for
// the part name.
func (d *Dev) DeviceID() (DeviceID, error) {
	r := make([]byte, 1)
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.d.Tx(cmdDeviceID, r); err != nil {
		return 0, fmt.Errorf("si702x: error reading device id %w", err)
	}
	return DeviceID(r[0]), nil
}

// FirmwareVersion reads the firmware revision byte.
func (d *Dev) FirmwareVersion() (Firmware, error) {
	r := make([]byte, 1)
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.d.Tx(cmdFirmware, r); err != nil {
		return 0, fmt.Errorf("si702x: error reading firmware version %w", err)
	}
	return Firmware(r[0]), nil
}

// readRegister reads a one byte register. The caller holds d.mu.
func (d *Dev) readRegister(cmd byte) (byte, error) {
	r := make([]byte, 1)
	if err := d.d.Tx([]byte{cmd}, r); err != nil {
		return 0, fmt.Errorf("si702x: error reading register 0x%02x %w", cmd, err)
	}
	return r[0], nil
}

// writeRegister writes a one byte register. The caller holds d.mu.
func (d *Dev) writeRegister(cmd, value byte) error {
	if err := d.d.Tx([]byte{cmd, value}, nil); err != nil {
		return fmt.Errorf("si702x: error writing register 0x%02x %w", cmd, err)
	}
	return nil
}

func (d *Dev) readUser() (byte, error) {
	return d.readRegister(cmdReadUser)
}

func (d *Dev) writeUser(value byte) error {
	return d.writeRegister(cmdWriteUser, value)
}

func (d *Dev) readHeater() (byte, error) {
	return d.readRegister(cmdReadHeater)
}

func (d *Dev) writeHeater(value byte) error {
	return d.writeRegister(cmdWriteHeater, value)
}

// modifyUser reads the user register, passes it to fn and writes back what fn
// returns. Nothing is written if the read or fn fails.
func (d *Dev) modifyUser(fn func(byte) (byte, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.readUser()
	if err != nil {
		return err
	}
	if v, err = fn(v); err != nil {
		return err
	}
	return d.writeUser(v)
}

// EnableHeater turns the on-chip heater on at the level set by
// SetHeaterLevel. If the device reports its supply voltage as too low the
// heater is left off and ErrVoltageTooLow is returned.
func (d *Dev) EnableHeater() error {
	return d.modifyUser(func(v byte) (byte, error) {
		if v&userVDDS != 0 {
			return v, ErrVoltageTooLow
		}
		return v | userHTRE, nil
	})
}

// DisableHeater turns the heater off. The heater level is kept.
func (d *Dev) DisableHeater() error {
	return d.modifyUser(func(v byte) (byte, error) {
		return v &^ userHTRE, nil
	})
}

// SetHeaterLevel sets the heater current, 0 (about 3mA) to 15 (about 94mA).
// The heater must be turned on with EnableHeater to take effect. Levels
// above MaxHeaterLevel return ErrHeaterLevel without touching the device.
func (d *Dev) SetHeaterLevel(level uint8) error {
	if level > MaxHeaterLevel {
		return ErrHeaterLevel
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.readHeater()
	if err != nil {
		return err
	}
	return d.writeHeater(v&^heaterLevelMask | level)
}

// SetResolution changes the measurement resolution. Values above RH11Temp11
// return ErrResolution without touching the device.
//
// The RES1 and RES0 bits live in user register 1 (bits 7 and 0), so that is
// the register read and written back. The Arduino Si702X library writes them
// to the heater control register instead, which would change the heater
// level.
func (d *Dev) SetResolution(res Resolution) error {
	if res > RH11Temp11 {
		return ErrResolution
	}
	bits := byte(res&0b01) | byte(res&0b10)<<6
	return d.modifyUser(func(v byte) (byte, error) {
		return v&^userResolMask | bits, nil
	})
}

// Resolution reads the current measurement resolution.
func (d *Dev) Resolution() (Resolution, error) {
	v, err := d.user()
	if err != nil {
		return 0, err
	}
	var r Resolution
	if v&userRES1 != 0 {
		r |= 0b10
	}
	if v&userRES0 != 0 {
		r |= 0b01
	}
	return r, nil
}

// HeaterEnabled reports whether the heater is on.
func (d *Dev) HeaterEnabled() (bool, error) {
	v, err := d.user()
	return v&userHTRE != 0, err
}

// LowVoltage reports the device's supply voltage status. The bit is updated
// after each measurement.
func (d *Dev) LowVoltage() (bool, error) {
	v, err := d.user()
	return v&userVDDS != 0, err
}

// HeaterLevel reads the heater level set by SetHeaterLevel.
func (d *Dev) HeaterLevel() (uint8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.readHeater()
	if err != nil {
		return 0, err
	}
	return v & heaterLevelMask, nil
}

func (d *Dev) user() (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readUser()
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
