package bl602

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// Interrupt is one of the interrupt sources this SoC can deliver. Unknown is
// only ever produced by FromIRQ for a line with no name.
type Interrupt uint8

const (
	Unknown Interrupt = iota
	MachineSoft
	MachineTimer
	MachineExternal
	GPIO
	TimerCh0
	TimerCh1
	Watchdog // only when the watchdog is configured in interrupt mode
	DMA
	SPI
	UART0
	UART1
	I2C
	PWM
	numInterrupts
)

// NumInterrupts is the number of Interrupt values, Unknown included, so a
// [NumInterrupts]T array can be indexed by Interrupt.
const NumInterrupts = int(numInterrupts)

var irqTable = [numInterrupts]uint32{
	MachineSoft:     MSIPIRQ,
	MachineTimer:    MTIPIRQ,
	MachineExternal: MEIPIRQ,
	GPIO:            GPIOIRQ,
	TimerCh0:        TimerCh0IRQ,
	TimerCh1:        TimerCh1IRQ,
	Watchdog:        WatchdogIRQ,
	DMA:             DMA0IRQ,
	SPI:             SPI0IRQ,
	UART0:           UART0IRQ,
	UART1:           UART1IRQ,
	I2C:             I2C0IRQ,
	PWM:             PWMIRQ,
}

var names = [numInterrupts]string{
	Unknown:         "Unknown",
	MachineSoft:     "MachineSoft",
	MachineTimer:    "MachineTimer",
	MachineExternal: "MachineExternal",
	GPIO:            "Gpio",
	TimerCh0:        "TimerCh0",
	TimerCh1:        "TimerCh1",
	Watchdog:        "Watchdog",
	DMA:             "Dma",
	SPI:             "Spi",
	UART0:           "Uart0",
	UART1:           "Uart1",
	I2C:             "I2c",
	PWM:             "Pwm",
}

// FromIRQ names the source wired to irq, or returns Unknown.
func FromIRQ(irq uint32) Interrupt {
	switch irq {
	case MSIPIRQ:
		return MachineSoft
	case MTIPIRQ:
		return MachineTimer
	case MEIPIRQ:
		return MachineExternal
	case GPIOIRQ:
		return GPIO
	case TimerCh0IRQ:
		return TimerCh0
	case TimerCh1IRQ:
		return TimerCh1
	case WatchdogIRQ:
		return Watchdog
	case DMA0IRQ:
		return DMA
	case SPI0IRQ:
		return SPI
	case UART0IRQ:
		return UART0
	case UART1IRQ:
		return UART1
	case I2C0IRQ:
		return I2C
	case PWMIRQ:
		return PWM
	}
	return Unknown
}

// IRQ returns the line number of i. Asking for the line of Unknown means an
// undecodable hardware code was treated as a real source, so it panics.
func (i Interrupt) IRQ() uint32 {
	if !i.Known() {
		panic("bl602: " + i.String() + " interrupt has no irq number")
	}
	return irqTable[i]
}

func (i Interrupt) Known() bool {
	return i != Unknown && i < numInterrupts
}

func (i Interrupt) String() string {
	if i < numInterrupts {
		return names[i]
	}
	return "Interrupt(" + strconv.Itoa(int(i)) + ")"
}

// Interrupts lists every known source in irq order.
func Interrupts() []Interrupt {
	result := make([]Interrupt, 0, NumInterrupts-1)
	for i := MachineSoft; i < numInterrupts; i++ {
		result = append(result, i)
	}
	slices.SortFunc(result, func(a, b Interrupt) int {
		return int(irqTable[a]) - int(irqTable[b])
	})
	return result
}

// IRQs lists the line number of every known source, ascending.
func IRQs() []uint32 {
	result := make([]uint32, 0, NumInterrupts-1)
	for i := MachineSoft; i < numInterrupts; i++ {
		result = append(result, irqTable[i])
	}
	slices.Sort(result)
	return result
}
