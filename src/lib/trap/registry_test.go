package trap

import (
	"errors"
	"strings"
	"testing"

	"bl602/src/hardware/bl602"
	"bl602/src/lib/fault"
)

func TestRegisterRejects(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(bl602.Unknown, func(*Frame) {}); !errors.Is(err, fault.ErrUnknownSource) {
		t.Errorf("registering Unknown should fail with ErrUnknownSource, got %v", err)
	}
	if err := r.Register(bl602.GPIO, nil); !errors.Is(err, fault.ErrNilHandler) {
		t.Errorf("registering nil should fail with ErrNilHandler, got %v", err)
	}
	if _, ok := r.Handler(bl602.GPIO); ok {
		t.Errorf("a rejected registration left a handler behind")
	}
}

func TestSourcesAndUnregister(t *testing.T) {
	r := NewRegistry()
	nop := func(*Frame) {}
	for _, i := range []bl602.Interrupt{bl602.GPIO, bl602.MachineTimer, bl602.UART0} {
		if err := r.Register(i, nop); err != nil {
			t.Fatalf("register %s: %v", i, err)
		}
	}
	got := r.Sources()
	want := []bl602.Interrupt{bl602.MachineTimer, bl602.UART0, bl602.GPIO}
	if len(got) != len(want) {
		t.Fatalf("expected %v but got %v", want, got)
	}
	for n := range want {
		if got[n] != want[n] {
			t.Errorf("position %d: expected %s but got %s", n, want[n], got[n])
		}
	}
	r.Unregister(bl602.UART0)
	if _, ok := r.Handler(bl602.UART0); ok {
		t.Errorf("uart0 still registered")
	}
}

func TestValidate(t *testing.T) {
	r := NewRegistry()
	nop := func(*Frame) {}
	for _, i := range bl602.Interrupts() {
		if i == bl602.PWM {
			continue
		}
		if err := r.Register(i, nop); err != nil {
			t.Fatalf("register %s: %v", i, err)
		}
	}
	err := r.Validate()
	if !errors.Is(err, fault.ErrMissingHandler) {
		t.Fatalf("expected ErrMissingHandler but got %v", err)
	}
	if !strings.Contains(err.Error(), "Pwm") || !strings.Contains(err.Error(), "exception") {
		t.Errorf("error should name Pwm and the exception path: %v", err)
	}
	r.Register(bl602.PWM, nop)
	r.SetExceptionHandler(nop)
	if err := r.Validate(); err != nil {
		t.Errorf("complete registry failed validation: %v", err)
	}
}
