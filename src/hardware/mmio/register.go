package mmio

// Register64 is a 64-bit device register at a fixed address.
type Register64 struct {
	bus  Bus
	addr uintptr
}

func NewRegister64(bus Bus, addr uintptr) Register64 {
	return Register64{bus: bus, addr: addr}
}

func (r Register64) Address() uintptr {
	return r.addr
}

// Get is a single 64-bit load.
func (r Register64) Get() uint64 {
	return r.bus.LoadUint64(r.addr)
}

// Set is a single 64-bit store.
func (r Register64) Set(value uint64) {
	r.bus.StoreUint64(r.addr, value)
}

// GetSplit reads a live 64-bit counter on a bus that only guarantees 32-bit
// transactions. The high word is read before and after the low word and the
// read is repeated until both agree, so a carry between the halves is never
// observed.
func (r Register64) GetSplit() uint64 {
	hi := r.bus.LoadUint32(r.addr + 4)
	for {
		lo := r.bus.LoadUint32(r.addr)
		again := r.bus.LoadUint32(r.addr + 4)
		if again == hi {
			return uint64(hi)<<32 | uint64(lo)
		}
		hi = again
	}
}

// ByteBank is an array of single byte flags, one per index, starting at base.
type ByteBank struct {
	bus  Bus
	base uintptr
	n    uint32
}

func NewByteBank(bus Bus, base uintptr, n uint32) ByteBank {
	return ByteBank{bus: bus, base: base, n: n}
}

func (b ByteBank) Address() uintptr {
	return b.base
}

func (b ByteBank) Len() uint32 {
	return b.n
}

func (b ByteBank) Get(i uint32) uint8 {
	b.check(i)
	return b.bus.LoadUint8(b.base + uintptr(i))
}

func (b ByteBank) Set(i uint32, value uint8) {
	b.check(i)
	b.bus.StoreUint8(b.base+uintptr(i), value)
}

// Fill stores value into every entry, one byte store each.
func (b ByteBank) Fill(value uint8) {
	for i := uint32(0); i < b.n; i++ {
		b.bus.StoreUint8(b.base+uintptr(i), value)
	}
}

func (b ByteBank) check(i uint32) {
	if i >= b.n {
		panic("mmio: byte bank index out of range")
	}
}
