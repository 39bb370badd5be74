// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/thumbgen/elf"
	"github.com/ezrec/thumbgen/firmware"
	"github.com/ezrec/thumbgen/script"
)

func main() {
	var compile string
	var output string
	var stub string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".star build script (default: built-in demo program)")
	flag.StringVar(&output, "o", "firmware.bin", "Firmware image output")
	flag.StringVar(&stub, "e", "", "Placeholder debugger ELF output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	b := firmware.NewBuilder(firmware.DefaultConfig)
	b.Verbose = verbose

	var image []byte
	var err error
	if len(compile) != 0 {
		image, err = script.Run(b, compile, nil)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	} else {
		image, err = b.Reference()
		if err != nil {
			log.Fatal(err)
		}
	}

	if err = os.WriteFile(output, image, 0644); err != nil {
		log.Fatalf("%v: %v", output, err)
	}
	if verbose {
		log.Printf("%v: %v bytes", output, len(image))
	}

	if len(stub) != 0 {
		if err = os.WriteFile(stub, elf.Stub{}.Bytes(), 0644); err != nil {
			log.Fatalf("%v: %v", stub, err)
		}
	}
}
