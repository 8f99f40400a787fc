package mmio

import "encoding/binary"

// Memory is a Bus backed by ordinary byte slices, one per window. It stands in
// for the device in tests and in the simulator. Values are little endian, as
// on the hart. It is not safe for concurrent use.
type Memory struct {
	windows []Window
	data    [][]byte
}

func NewMemory(windows ...Window) (*Memory, error) {
	if err := checkWindows(windows); err != nil {
		return nil, err
	}
	m := &Memory{windows: append([]Window(nil), windows...)}
	for _, w := range windows {
		m.data = append(m.data, make([]byte, w.Size))
	}
	return m, nil
}

func (m *Memory) slice(addr uintptr, width uintptr) []byte {
	for i, w := range m.windows {
		if w.contains(addr, width) {
			off := addr - w.Base
			return m.data[i][off : off+width]
		}
	}
	outsideWindows(addr)
	return nil
}

func (m *Memory) LoadUint8(addr uintptr) uint8 {
	return m.slice(addr, 1)[0]
}

func (m *Memory) StoreUint8(addr uintptr, val uint8) {
	m.slice(addr, 1)[0] = val
}

func (m *Memory) LoadUint32(addr uintptr) uint32 {
	return binary.LittleEndian.Uint32(m.slice(addr, 4))
}

func (m *Memory) StoreUint32(addr uintptr, val uint32) {
	binary.LittleEndian.PutUint32(m.slice(addr, 4), val)
}

func (m *Memory) LoadUint64(addr uintptr) uint64 {
	return binary.LittleEndian.Uint64(m.slice(addr, 8))
}

func (m *Memory) StoreUint64(addr uintptr, val uint64) {
	binary.LittleEndian.PutUint64(m.slice(addr, 8), val)
}
