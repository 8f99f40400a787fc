package riscv

import (
	"go/parser"
	"go/token"
	"strconv"
	"testing"
)

// CSR reads and writes are compiler intrinsics keyed on device/riscv.
func TestCSRHartImportsDeviceRiscv(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "csr_tinygo.go", nil, parser.ImportsOnly)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	found := false
	for _, imp := range f.Imports {
		path, _ := strconv.Unquote(imp.Path.Value)
		switch path {
		case "device/riscv":
			found = true
		case "github.com/tinygo-org/tinygo/src/device/riscv":
			t.Errorf("%s has no bodies outside the tinygo compiler", path)
		}
	}
	if !found {
		t.Errorf("csr hart does not import device/riscv")
	}
}
