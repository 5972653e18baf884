package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gbsemu/sm83/internal/bus"
	"github.com/gbsemu/sm83/internal/cpu"
	"github.com/gbsemu/sm83/pkg/log"
	"github.com/gbsemu/sm83/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	startPC := flag.Uint("pc", 0x0100, "The address to start execution at")
	maxSteps := flag.Uint64("steps", 50_000_000, "The maximum number of instructions to execute")
	trace := flag.Bool("trace", false, "Log every executed instruction")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *trace {
		logger.SetLevel(logrus.DebugLevel)
	}

	if *romFile == "" {
		logger.Error("no rom file given")
		flag.Usage()
		os.Exit(2)
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("loading %s: %v", *romFile, err)
		os.Exit(1)
	}

	var serial bytes.Buffer
	mem := bus.NewMemory(bus.WithSerial(&serial), bus.WithLogger(log.Wrap(logger)))
	mem.LoadROM(rom)

	c := cpu.New()
	c.ResetDMG()
	c.PC = uint16(*startPC)

	var (
		cycles uint64
		// repeated fingerprints mean the program has settled into a
		// state it can never leave, e.g. JR -2 at the end of a test rom
		lastPrint uint64
		printRuns uint
	)
	for step := uint64(0); step < *maxSteps; step++ {
		if *trace {
			opcode := mem.Read(c.PC)
			logger.Debugf("0x%04X: %s", c.PC, cpu.InstructionSet[opcode].Name())
		}

		t, err := c.Step(mem)
		if err != nil {
			logger.Errorf("after %d cycles: %v", cycles, err)
			os.Exit(1)
		}
		cycles += uint64(t)

		if print := c.Fingerprint(); print == lastPrint {
			if printRuns++; printRuns >= 16 {
				logger.Infof("settled at 0x%04X after %d cycles", c.PC, cycles)
				break
			}
		} else {
			lastPrint, printRuns = print, 0
		}
	}

	output := serial.String()
	if output != "" {
		fmt.Print(output)
	}
	logger.Infof("executed %d cycles", cycles)

	// blargg test roms report their verdict over the serial port
	if strings.Contains(output, "Failed") {
		os.Exit(1)
	}
}
