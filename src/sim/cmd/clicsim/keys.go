package main

import (
	"fmt"
	"io"

	"bl602/src/hardware/bl602"
)

type action int

const (
	actNone action = iota
	actRaise
	actUnknownLine
	actException
	actStats
	actHelp
	actQuit
)

// the line raised by 'z': nothing is wired to it
const unknownLine = 200

// illegal instruction
const exceptionCode = 2

var keyMap = map[rune]bl602.Interrupt{
	'o': bl602.MachineSoft,
	'x': bl602.MachineExternal,
	'g': bl602.GPIO,
	'0': bl602.TimerCh0,
	'1': bl602.TimerCh1,
	'w': bl602.Watchdog,
	'd': bl602.DMA,
	'p': bl602.SPI,
	'u': bl602.UART0,
	'U': bl602.UART1,
	'i': bl602.I2C,
	'm': bl602.PWM,
}

func decodeKey(r rune) (action, bl602.Interrupt) {
	if i, ok := keyMap[r]; ok {
		return actRaise, i
	}
	switch r {
	case 'z':
		return actUnknownLine, bl602.Unknown
	case 'e':
		return actException, bl602.Unknown
	case 's':
		return actStats, bl602.Unknown
	case '?', 'h':
		return actHelp, bl602.Unknown
	case 'q', 3 /*ctrl-c*/, 4 /*ctrl-d*/ :
		return actQuit, bl602.Unknown
	}
	return actNone, bl602.Unknown
}

func printKeys(w io.Writer) {
	for _, i := range bl602.Interrupts() {
		for r, target := range keyMap {
			if target == i {
				fmt.Fprintf(w, "  %c  raise %s (irq %d)\n", r, i, i.IRQ())
			}
		}
	}
	fmt.Fprintf(w, "  z  raise irq %d, which has no source\n", unknownLine)
	fmt.Fprintf(w, "  e  take an illegal instruction exception\n")
	fmt.Fprintf(w, "  s  print dispatch counters\n")
	fmt.Fprintf(w, "  q  quit\n")
}
