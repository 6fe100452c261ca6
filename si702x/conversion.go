// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package si702x

import "periph.io/x/conn/v3/physic"

const (
	// Magic numbers for count to value conversions. Datasheet section 5.1.
	temperatureScalar float64 = 175.72
	temperatureOffset float64 = 46.85
	humidityScalar    float64 = 125.0
	humidityOffset    float64 = 6.0
	scaleDivisor      float64 = 65536.0
)

// Celsius converts a raw temperature code to degrees Celsius. The code is
// unsigned.
func Celsius(raw uint16) float64 {
	return temperatureScalar*float64(raw)/scaleDivisor - temperatureOffset
}

// RelativeHumidity converts a raw humidity code to percent relative humidity.
//
// The result is not clamped. Near the ends of the range the sensor can report
// slightly below 0% or above 100%, and that is passed through as is.
func RelativeHumidity(raw uint16) float64 {
	return humidityScalar*float64(raw)/scaleDivisor - humidityOffset
}

// CelsiusToKelvin converts c to Kelvin.
func CelsiusToKelvin(c float64) float64 {
	return c + 273.15
}

// CelsiusToFahrenheit converts c to degrees Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9.0/5.0 + 32
}

// CelsiusToRankine converts c to degrees Rankine, the absolute scale with
// Fahrenheit sized degrees.
func CelsiusToRankine(c float64) float64 {
	return (c + 273.15) * 9.0 / 5.0
}

// CelsiusToNewton converts c to degrees Newton.
func CelsiusToNewton(c float64) float64 {
	return c * 0.33
}

// CelsiusToDelisle converts c to degrees Delisle. The scale counts down from
// the boiling point of water.
func CelsiusToDelisle(c float64) float64 {
	return (100 - c) * 3.0 / 2.0
}

// CelsiusToReaumur converts c to degrees Réaumur.
func CelsiusToReaumur(c float64) float64 {
	return c * 0.8
}

// CelsiusToRomer converts c to degrees Rømer.
func CelsiusToRomer(c float64) float64 {
	return c*21.0/40.0 + 7.5
}

func countToTemperature(raw uint16) physic.Temperature {
	return physic.ZeroCelsius + physic.Temperature(Celsius(raw)*float64(physic.Celsius))
}

func countToHumidity(raw uint16) physic.RelativeHumidity {
	return physic.RelativeHumidity(RelativeHumidity(raw) * float64(physic.PercentRH))
}
