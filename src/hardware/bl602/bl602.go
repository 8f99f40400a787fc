// Package bl602 holds the fixed address map and interrupt numbering of the
// BL602 RISC-V SoC. See bl602_std clic.h and bl_irq.c in the vendor SDK.
package bl602

// core local interruptor: timer block
const CLICCtrlAddr = 0x0200_0000
const CLICMTimeCmp = 0x4000 //64 bits
const CLICMTime = 0xBFF8    //64 bits
const CLICTimerBlockSize = 0xC000

// core local interruptor: per hart interrupt banks, one byte per irq
const CLICHart0Addr = 0x0280_0000
const CLICIntIP = 0x000
const CLICIntIE = 0x400
const CLICHartBlockSize = 0x1000

// IRQNumBase is the first peripheral irq, everything below is a core interrupt.
const IRQNumBase = 16

// IRQTableSize is the number of entries in each bank: (16 + 8) words of
// 4 bytes, which covers the 16 core lines and all 64 peripheral lines.
const IRQTableSize = (16 + 8) * 4

// core interrupts, fixed by the architecture
const MSIPIRQ = 3
const MTIPIRQ = 7
const MEIPIRQ = 11

// peripheral interrupts
const DMA0IRQ = IRQNumBase + 15
const SPI0IRQ = IRQNumBase + 27
const UART0IRQ = IRQNumBase + 29
const UART1IRQ = IRQNumBase + 30
const I2C0IRQ = IRQNumBase + 32
const PWMIRQ = IRQNumBase + 34
const TimerCh0IRQ = IRQNumBase + 36
const TimerCh1IRQ = IRQNumBase + 37
const WatchdogIRQ = IRQNumBase + 38
const GPIOIRQ = IRQNumBase + 44
