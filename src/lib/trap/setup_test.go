package trap

import (
	"bytes"
	"strings"
	"testing"

	"bl602/src/hardware/bl602"
	"bl602/src/hardware/clic"
	"bl602/src/hardware/mmio"
	"bl602/src/hardware/riscv"
	"bl602/src/lib/trust"
)

// orderBus records whether MIE was clear for every store into the banks.
type orderBus struct {
	*mmio.Memory
	hart          *riscv.SimHart
	storesWithMIE int
	stores        int
}

func (b *orderBus) StoreUint8(addr uintptr, val uint8) {
	b.stores++
	if b.hart.InterruptsEnabled() {
		b.storesWithMIE++
	}
	b.Memory.StoreUint8(addr, val)
}

func TestSetupInterrupts(t *testing.T) {
	var buf bytes.Buffer
	prev := trust.SetOutput(&buf)
	defer trust.SetOutput(prev)

	m, err := mmio.NewMemory(clic.Windows()...)
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	hart := &riscv.SimHart{MStatus: 1 << 3, Trace: true}
	bus := &orderBus{Memory: m, hart: hart}
	regs := clic.NewRegisters(bus)
	regs.IntEnable.Fill(1)
	regs.IntPending.Fill(1)
	bus.stores = 0
	bus.storesWithMIE = 0
	hart.Log = nil

	SetupInterrupts(hart, regs, 0x2300_0100)

	if hart.MTVec != 0x2300_0102 {
		t.Errorf("expected mtvec 0x23000102 but got %#x", hart.MTVec)
	}
	if strings.Join(hart.Log, ",") != "disable,mtvec,enable" {
		t.Errorf("unexpected csr sequence %v", hart.Log)
	}
	if !hart.InterruptsEnabled() {
		t.Errorf("global interrupts not re-enabled")
	}
	if bus.storesWithMIE != 0 {
		t.Errorf("%d bank stores happened with interrupts enabled", bus.storesWithMIE)
	}
	if bus.stores != 2*bl602.IRQTableSize {
		t.Errorf("expected %d byte stores but saw %d", 2*bl602.IRQTableSize, bus.stores)
	}
	for i := uint32(0); i < bl602.IRQTableSize; i++ {
		if regs.IntEnable.Get(i) != 0 || regs.IntPending.Get(i) != 0 {
			t.Errorf("line %d not cleared", i)
		}
	}
}
