// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sensors is a container for the Si702x humidity sensor driver and
// its support packages.
//
// si702x is the driver. common holds helpers shared by drivers, and tinygoi2c
// lets the driver run on a TinyGo I²C peripheral.
package sensors
