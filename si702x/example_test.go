// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package si702x_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/sensors/si702x"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	dev, err := si702x.New(bus, nil)
	if err != nil {
		log.Fatal(err)
	}

	fw, err := dev.FirmwareVersion()
	if err != nil {
		log.Fatal(err)
	}
	id, err := dev.DeviceID()
	if err != nil {
		log.Fatal(err)
	}
	sn, err := dev.Serial()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s, %s, serial %d\n", id, fw, sn)

	env := physic.Env{}
	if err := dev.Sense(&env); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Sensor Output: %s\n", env)
}

// ExampleDev_SetHeaterLevel drives the heater to clear condensation.
func ExampleDev_SetHeaterLevel() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	dev, err := si702x.New(bus, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.SetHeaterLevel(5); err != nil {
		log.Fatal(err)
	}
	switch err := dev.EnableHeater(); si702x.StatusOf(err) {
	case si702x.Success:
	case si702x.VoltageTooLow:
		log.Println("supply voltage too low, heater left off")
	default:
		log.Fatal(err)
	}
	f, err := dev.Fahrenheit()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.2f°F\n", f)
	if err := dev.DisableHeater(); err != nil {
		log.Fatal(err)
	}
}
