package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eiannone/keyboard"
	"golang.org/x/term"

	"m65832/internal/coproc"
	"m65832/internal/cpu"
)

func main() {
	verbose := flag.Bool("v", false, "enable verbose logging")
	memoryFlag := flag.Uint64("memory", 1<<24, "physical memory size in bytes (max 4294967295)")
	loadAddr := flag.Uint64("load-addr", 0, "physical address to load the image at")
	breakAddr := flag.String("break", "", "hex PC address to set an initial breakpoint at")
	traceFlag := flag.Bool("trace", false, "log each instruction's PC before executing it")
	coprocVBR := flag.Uint64("coproc-vbr", 0, "physical base address of the 6502 coprocessor's 64KiB window (0 disables it)")
	flag.Parse()

	printIfVerbose(*verbose, "Starting M65832 emulator...")

	if *memoryFlag > uint64(math.MaxUint32) {
		log.Fatalf("memory size %d exceeds max uint32 %d", *memoryFlag, math.MaxUint32)
	}
	if flag.NArg() < 1 {
		fmt.Printf("usage: %s [flags] <image>\n", os.Args[0])
		flag.PrintDefaults()
		return
	}

	definedMemory := uint32(*memoryFlag)
	printIfVerbose(*verbose, "Allocating %d bytes of physical memory...", definedMemory)

	c, err := cpu.New(definedMemory)
	if err != nil {
		log.Fatalf("failed to build CPU: %v", err)
	}

	image, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to read image %q: %v", flag.Arg(0), err)
	}
	printIfVerbose(*verbose, "Loading %d bytes at physical 0x%X...", len(image), *loadAddr)
	if err := c.WriteBlock(*loadAddr, image); err != nil {
		log.Fatalf("failed to load image: %v", err)
	}
	c.PC = uint32(*loadAddr)

	var cp *coproc.Coprocessor
	if *coprocVBR != 0 {
		printIfVerbose(*verbose, "Attaching 6502 coprocessor window at 0x%X...", *coprocVBR)
		cp = coproc.New(c.Bus, uint32(*coprocVBR))
		// Bank 0 is the keyboard peripheral: register 0 is "key ready",
		// register 1 is the key value, the common 6502-host convention.
		cp.ConfigureBank(keyboardBank, keyboardBankBase, true)
	}

	if *breakAddr != "" {
		var addr uint32
		if _, err := fmt.Sscanf(*breakAddr, "%x", &addr); err != nil {
			log.Fatalf("invalid -break address %q: %v", *breakAddr, err)
		}
		c.AddBreakpoint(addr)
	}

	if *traceFlag {
		c.EnableTrace(func(pc uint32, opcodeBytes []byte) {
			log.Printf("PC=0x%08X OP=0x%02X", pc, opcodeBytes[0])
		})
	}

	debugSig := &cpu.DebugSignal{}
	c.AttachDebugSignal(debugSig)

	oldState, termErr := term.MakeRaw(int(os.Stdin.Fd()))
	if termErr == nil {
		defer term.Restore(int(os.Stdin.Fd()), oldState)
		go runKeyboardFeeder(debugSig, cp, *verbose)
	} else {
		printIfVerbose(*verbose, "Stdin is not a terminal, interactive input disabled: %v", termErr)
	}

	done := make(chan struct{})

	printIfVerbose(*verbose, "Running CPU from PC=0x%08X...", c.PC)
	start := time.Now()

	go func() {
		trap := c.Run()
		if trap.Kind != cpu.TrapNone {
			printIfVerbose(*verbose, "Stopped on trap %s at 0x%08X", trap.Kind, trap.Addr)
		}
		close(done)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		printIfVerbose(*verbose, "Signal received, stopping CPU...")
		c.Stop()
	case <-done:
	}

	elapsed := time.Since(start)
	printIfVerbose(*verbose, "CPU stopped after %d cycles in %s", c.Cycles, elapsed)
}

// keyboardBank/keyboardBankBase pick the shadow-I/O bank the coprocessor
// exposes as a keyboard peripheral: register 0 is set to 1 once a key is
// waiting, register 1 holds its value, the same two-register convention
// the teacher's TRAP_GETC/TRAP_IN handlers model for a single polled
// character.
const (
	keyboardBank     = 0
	keyboardBankBase = 0x00
)

// runKeyboardFeeder reads single keystrokes from the terminal and either
// posts a debug-mailbox request ('p' pause, 'i' IRQ, Ctrl+C pause) or, when
// a coprocessor is attached, pokes the key into its shadow-I/O keyboard
// bank for the running 6502 program to poll — the host-side half of the
// concurrency contract from spec.md §5: a second goroutine sets flags
// under Mu, and Step drains them at most once per instruction.
func runKeyboardFeeder(sig *cpu.DebugSignal, cp *coproc.Coprocessor, verbose bool) {
	if err := keyboard.Open(); err != nil {
		printIfVerbose(verbose, "keyboard feeder: keyboard unavailable: %v", err)
		return
	}
	defer keyboard.Close()

	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return
		}
		if key == keyboard.KeyCtrlC {
			sig.Mu.Lock()
			sig.PauseRequested = true
			sig.Mu.Unlock()
			return
		}
		switch char {
		case 'p':
			sig.Mu.Lock()
			sig.PauseRequested = true
			sig.Mu.Unlock()
			continue
		case 'i':
			sig.Mu.Lock()
			sig.IRQRequested = true
			sig.Mu.Unlock()
			continue
		}
		if cp != nil {
			cp.PokeBank(keyboardBank, 1, byte(char))
			cp.PokeBank(keyboardBank, 0, 1)
		}
	}
}

func printIfVerbose(verbose bool, format string, v ...interface{}) {
	if verbose {
		log.Printf(format, v...)
	}
}
