package trap

import (
	"fmt"
	"strings"

	"bl602/src/hardware/bl602"
	"bl602/src/lib/fault"
)

// Handler services one interrupt source, or the exception path.
type Handler func(frame *Frame)

// Registry maps each interrupt source to its handler. It is filled in at
// startup, before interrupts are enabled, and only read by the dispatcher.
type Registry struct {
	handlers  [bl602.NumInterrupts]Handler
	exception Handler
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register installs h for i, replacing any previous handler.
func (r *Registry) Register(i bl602.Interrupt, h Handler) error {
	if !i.Known() {
		return fmt.Errorf("register %s: %w", i, fault.ErrUnknownSource)
	}
	if h == nil {
		return fmt.Errorf("register %s: %w", i, fault.ErrNilHandler)
	}
	r.handlers[i] = h
	return nil
}

func (r *Registry) Unregister(i bl602.Interrupt) {
	if i.Known() {
		r.handlers[i] = nil
	}
}

func (r *Registry) Handler(i bl602.Interrupt) (Handler, bool) {
	if !i.Known() || r.handlers[i] == nil {
		return nil, false
	}
	return r.handlers[i], true
}

// SetExceptionHandler installs the handler for synchronous exceptions and for
// interrupts that cannot be routed anywhere else. nil restores the default.
func (r *Registry) SetExceptionHandler(h Handler) {
	r.exception = h
}

// Sources lists the sources with a handler, in irq order.
func (r *Registry) Sources() []bl602.Interrupt {
	var result []bl602.Interrupt
	for _, i := range bl602.Interrupts() {
		if r.handlers[i] != nil {
			result = append(result, i)
		}
	}
	return result
}

// Validate reports every known source without a handler. Firmware that expects
// to service all lines calls it once after registration.
func (r *Registry) Validate() error {
	var missing []string
	for _, i := range bl602.Interrupts() {
		if r.handlers[i] == nil {
			missing = append(missing, i.String())
		}
	}
	if r.exception == nil {
		missing = append(missing, "exception")
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", fault.ErrMissingHandler, strings.Join(missing, ", "))
}
