package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/zabaglione/jr100-emulator-v2/internal/jr100"
	"github.com/zabaglione/jr100-emulator-v2/internal/loader"
	"github.com/zabaglione/jr100-emulator-v2/internal/ui"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("jr100: ")

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "run" {
		args = args[1:]
	}

	fs := flag.NewFlagSet("run", flag.ExitOnError)
	romPath := fs.String("rom", "", "path to the 8KB BASIC ROM image (required)")
	programPath := fs.String("program", "", "PROG file to load after reset")
	scale := fs.Int("scale", 2, "window scale factor")
	fullscreen := fs.Bool("fullscreen", false, "start in fullscreen mode")
	extendedRAM := fs.Bool("extended-ram", false, "fit the 16KB RAM expansion")
	cpuProfile := fs.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	fs.Parse(args)

	if *cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "jr100: -rom is required")
		os.Exit(2)
	}
	romImage, err := loader.LoadROM(*romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jr100: %v\n", err)
		os.Exit(2)
	}

	machine, err := jr100.NewMachine(jr100.Config{
		ROMImage:    romImage,
		ExtendedRAM: *extendedRAM,
	})
	if err != nil {
		log.Fatalf("couldn't assemble the machine: %v", err)
	}

	if *programPath != "" {
		if err := machine.LoadProgram(*programPath); err != nil {
			log.Fatalf("couldn't load the program: %v", err)
		}
		if machine.Program.Name != "" {
			log.Printf("loaded %q", machine.Program.Name)
		}
		for _, warning := range machine.Program.Warnings {
			log.Print(warning)
		}
	}

	if err := machine.Beeper.Start(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer machine.Beeper.Close()

	if err := ui.Run(ui.New(machine), *scale, *fullscreen); err != nil {
		log.Fatalf("%v", err)
	}
}
