// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, a CRC8 calculation
package common

// CRC8Init calculates the 8-bit CRC (polynomial x^8 + x^5 + x^4 + 1) of bytes
// starting from init. Silicon Labs humidity sensors use an initial value of
// 0x00 where TI and Sensirion parts use 0xff.
func CRC8Init(bytes []byte, init byte) byte {
	crc := init
	for _, val := range bytes {
		crc ^= val
		for i := 0; i < 8; i++ {
			if (crc & 0x80) == 0 {
				crc <<= 1
			} else {
				crc = (byte)((crc << 1) ^ 0x31)
			}
		}
	}
	return crc
}
