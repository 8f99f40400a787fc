package sim

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"bl602/src/hardware/bl602"
	"bl602/src/hardware/clic"
	"bl602/src/hardware/mmio"
	"bl602/src/lib/fault"
	"bl602/src/lib/trap"
	"bl602/src/lib/trust"
)

func newTestBoard(t *testing.T, cfg Config) *Board {
	t.Helper()
	var buf bytes.Buffer
	prev := trust.SetOutput(&buf)
	t.Cleanup(func() { trust.SetOutput(prev) })
	b, err := NewBoard(cfg)
	if err != nil {
		t.Fatalf("unable to build board: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func TestBoardStartsClean(t *testing.T) {
	b := newTestBoard(t, Config{SysClk: 160_000_000, RTC: 32_768})
	if b.Clic == nil {
		t.Fatalf("rtc is on but there is no time base")
	}
	if b.Hart.MTVec != TrapEntry|0b10 {
		t.Errorf("unexpected mtvec %#x", b.Hart.MTVec)
	}
	if !b.Hart.InterruptsEnabled() {
		t.Errorf("global interrupts should be on after setup")
	}
	for _, i := range bl602.Interrupts() {
		if b.Regs.IsEnabled(i) || b.Regs.IsPending(i) {
			t.Errorf("%s not reset", i)
		}
	}
}

func TestBoardWithoutRTC(t *testing.T) {
	b := newTestBoard(t, Config{SysClk: 160_000_000})
	if b.Clic != nil {
		t.Errorf("expected no time base with the rtc off")
	}
}

func TestBoardRaiseRespectsEnable(t *testing.T) {
	b := newTestBoard(t, Config{RTC: 32_768})
	calls := 0
	b.Registry.Register(bl602.GPIO, func(*trap.Frame) {
		calls++
		b.Regs.ClearInterrupt(bl602.GPIO)
	})
	b.Raise(bl602.GPIO)
	if calls != 0 {
		t.Errorf("disabled line was delivered")
	}
	b.Regs.EnableInterrupt(bl602.GPIO)
	b.Deliver()
	if calls != 1 {
		t.Errorf("expected one delivery after enabling, got %d", calls)
	}
	if b.Regs.IsPending(bl602.GPIO) {
		t.Errorf("handler clear did not stick")
	}
	if b.Dispatcher.State() != trap.Idle {
		t.Errorf("dispatcher left in %s", b.Dispatcher.State())
	}
}

func TestBoardMaskedGlobally(t *testing.T) {
	b := newTestBoard(t, Config{RTC: 32_768})
	calls := 0
	b.Registry.Register(bl602.UART0, func(*trap.Frame) { calls++ })
	b.Regs.EnableInterrupt(bl602.UART0)
	b.Hart.DisableInterrupts()
	b.Raise(bl602.UART0)
	if calls != 0 {
		t.Errorf("delivered with MIE clear")
	}
	b.Hart.EnableInterrupts()
	b.Deliver()
	if calls != 1 {
		t.Errorf("pending line not delivered once MIE was set, got %d", calls)
	}
}

func TestBoardTimer(t *testing.T) {
	b := newTestBoard(t, Config{RTC: 32_768})
	fired := 0
	b.Registry.Register(bl602.MachineTimer, func(*trap.Frame) {
		fired++
		b.Clic.SetTimeCmp(1_000)
	})
	b.Regs.EnableInterrupt(bl602.MachineTimer)
	b.Clic.SetTimeCmp(1_000)
	b.Advance(999)
	if fired != 0 {
		t.Errorf("timer fired early")
	}
	b.Advance(1)
	if fired != 1 {
		t.Errorf("timer did not fire at mtimecmp, fired %d", fired)
	}
	if b.Clic.TimeCmp() != 2_000 {
		t.Errorf("handler did not re-arm: mtimecmp %d", b.Clic.TimeCmp())
	}
	b.Advance(500)
	if fired != 1 || b.Regs.IsPending(bl602.MachineTimer) {
		t.Errorf("timer line should be low between compares")
	}
	b.Advance(500)
	if fired != 2 {
		t.Errorf("second compare missed, fired %d", fired)
	}
}

func TestBoardFallbacks(t *testing.T) {
	b := newTestBoard(t, Config{RTC: 32_768})
	exceptions := 0
	b.Registry.SetExceptionHandler(func(*trap.Frame) { exceptions++ })
	b.RaiseLine(200)
	b.Exception(2)
	if exceptions != 2 {
		t.Errorf("expected both traps on the exception path, got %d", exceptions)
	}
	if b.Dispatcher.Count(bl602.Unknown) != 1 || b.Dispatcher.ExceptionCount() != 1 {
		t.Errorf("unexpected counters: unknown %d exceptions %d",
			b.Dispatcher.Count(bl602.Unknown), b.Dispatcher.ExceptionCount())
	}
}

func TestBoardImage(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("register images need linux mmap")
	}
	path := filepath.Join(t.TempDir(), "clic.img")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create image: %v", err)
	}
	if err := f.Truncate(bl602.CLICHart0Addr + bl602.CLICHartBlockSize); err != nil {
		t.Fatalf("truncate image: %v", err)
	}
	f.Close()

	b := newTestBoard(t, Config{RTC: 1_000_000, SplitTickRead: true, Image: path})
	b.Regs.EnableInterrupt(bl602.PWM)
	b.Advance(5_000_000)
	if b.Clic.TimeUs() != 5_000_000 {
		t.Errorf("expected 5000000 from the image backed clic, got %d", b.Clic.TimeUs())
	}
	if err := b.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read image: %v", err)
	}
	if raw[bl602.CLICHart0Addr+bl602.CLICIntIE+bl602.PWMIRQ] != 1 {
		t.Errorf("pwm enable byte missing from the image")
	}
}

// storeLog records the address of every store, in order.
type storeLog struct {
	*mmio.Memory
	addrs []uintptr
}

func (s *storeLog) StoreUint8(addr uintptr, val uint8) {
	s.addrs = append(s.addrs, addr)
	s.Memory.StoreUint8(addr, val)
}

func (s *storeLog) StoreUint64(addr uintptr, val uint64) {
	s.addrs = append(s.addrs, addr)
	s.Memory.StoreUint64(addr, val)
}

func TestBoardSetupBeforeRegisterUse(t *testing.T) {
	m, err := mmio.NewMemory(clic.Windows()...)
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	bus := &storeLog{Memory: m}
	b := newTestBoard(t, Config{RTC: 32_768, Bus: bus})

	banks := 2 * bl602.IRQTableSize
	if len(bus.addrs) != banks+1 {
		t.Fatalf("expected %d stores but saw %d", banks+1, len(bus.addrs))
	}
	for i, addr := range bus.addrs[:banks] {
		if addr < bl602.CLICHart0Addr {
			t.Fatalf("store %d to %#x came before the banks were reset", i, addr)
		}
	}
	if bus.addrs[banks] != b.Regs.MTimeCmp.Address() {
		t.Errorf("last store went to %#x, not mtimecmp", bus.addrs[banks])
	}
	if b.Clic.TimeCmp() != math.MaxUint64 {
		t.Errorf("mtimecmp not parked: %#x", b.Clic.TimeCmp())
	}
}

func TestBoardRejectsShortImage(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("register images need linux mmap")
	}
	path := filepath.Join(t.TempDir(), "short.img")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create image: %v", err)
	}
	// covers the timer block but ends inside the hart banks
	if err := f.Truncate(bl602.CLICHart0Addr + 0x10); err != nil {
		t.Fatalf("truncate image: %v", err)
	}
	f.Close()

	_, err = NewBoard(Config{RTC: 32_768, Image: path})
	if !errors.Is(err, fault.ErrWindowMissing) {
		t.Errorf("expected a missing window error but got %v", err)
	}
}
