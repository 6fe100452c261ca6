// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package si702x

// DeviceID is the part identification byte (SNB_3) of the electronic serial
// number.
type DeviceID byte

const (
	EngineeringSample  DeviceID = 0x00
	EngineeringSampleF DeviceID = 0xff
	Si7013             DeviceID = 0x0d
	Si7020             DeviceID = 0x14
	Si7021             DeviceID = 0x15
)

// String returns the part name, or "Unknown" for codes not in the datasheet.
func (id DeviceID) String() string {
	switch id {
	case EngineeringSample, EngineeringSampleF:
		return "Engineering sample"
	case Si7013:
		return "Si7013"
	case Si7020:
		return "Si7020"
	case Si7021:
		return "Si7021"
	default:
		return "Unknown"
	}
}

// Firmware is the firmware revision byte.
type Firmware byte

const (
	Firmware10 Firmware = 0xff
	Firmware20 Firmware = 0x20
)

func (f Firmware) String() string {
	switch f {
	case Firmware10:
		return "Firmware version 1.0"
	case Firmware20:
		return "Firmware version 2.0"
	default:
		return "Firmware version unknown"
	}
}
