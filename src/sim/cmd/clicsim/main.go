package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tty "github.com/mattn/go-tty"

	"bl602/src/hardware/bl602"
	"bl602/src/hardware/bl602/clock"
	"bl602/src/lib/trap"
	"bl602/src/lib/trust"
	"bl602/src/sim"
)

var helpFlag = flag.Bool("h", false, "get usage info")
var rtcFlag = flag.Uint("rtc", 32768, "rtc clock in Hz that drives mtime, 0 leaves the rtc off")
var tickFlag = flag.Uint64("tick", 3277, "mtime ticks per step")
var intervalFlag = flag.Duration("interval", 100*time.Millisecond, "wall clock time per step")
var periodFlag = flag.Duration("period", time.Second, "machine timer period")
var imageFlag = flag.String("image", "", "mmap this register image instead of using private memory")
var splitFlag = flag.Bool("split", false, "read mtime as two 32 bit halves")
var ttyFlag = flag.String("tty", "", "read keys from this tty device instead of the controlling terminal")
var verbose = flag.Int("v", 0, "verbosity level: 0 terse (default), 1 info and stats, 2 show everything")

func main() {
	flag.Parse()
	if *helpFlag {
		usage()
	}
	trust.SetLevel(trust.Verbosity(*verbose))

	t, err := openTTY(*ttyFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer t.Close()
	restore, err := t.Raw()
	if err != nil {
		log.Fatalf("unable to put the terminal in raw mode: %v", err)
	}
	defer restore()
	console := &crlfWriter{w: t.Output()}
	trust.SetOutput(console)

	board, err := sim.NewBoard(sim.Config{
		SysClk:        160_000_000,
		RTC:           clock.Hertz(*rtcFlag),
		SplitTickRead: *splitFlag,
		Image:         *imageFlag,
	})
	if err != nil {
		restore()
		log.Fatalf("%v", err)
	}
	defer board.Close()
	installHandlers(board, console, *periodFlag)
	if err := board.Registry.Validate(); err != nil {
		trust.Warnf("%v", err)
	}

	printKeys(console)
	keys := make(chan rune)
	readErr := make(chan error, 1)
	go readKeys(t, keys, readErr)
	ticker := time.NewTicker(*intervalFlag)
	defer ticker.Stop()
	for {
		select {
		case r, ok := <-keys:
			if !ok {
				if err := <-readErr; err != nil {
					trust.Errorf("tty: %v", err)
				}
				return
			}
			act, source := decodeKey(r)
			switch act {
			case actRaise:
				board.Raise(source)
			case actUnknownLine:
				board.RaiseLine(unknownLine)
			case actException:
				board.Exception(exceptionCode)
			case actStats:
				fmt.Fprintf(console, "mtime %d, state %s\n", board.Regs.MTime.Get(), board.Dispatcher.State())
				prev := trust.SetLevel(trust.Level() | trust.StatsMask)
				board.Dispatcher.LogStats()
				trust.SetLevel(prev)
			case actHelp:
				printKeys(console)
			case actQuit:
				return
			}
		case <-ticker.C:
			board.Advance(*tickFlag)
		}
	}
}

func openTTY(path string) (*tty.TTY, error) {
	if path == "" {
		return tty.Open()
	}
	return tty.OpenDevice(path)
}

type runeReader interface {
	ReadRune() (rune, error)
}

// readKeys forwards runes until the reader fails. The error is sent on errs
// before keys is closed; only the main loop writes to the console.
func readKeys(r runeReader, keys chan<- rune, errs chan<- error) {
	defer close(keys)
	for {
		ch, err := r.ReadRune()
		if err != nil {
			errs <- err
			return
		}
		keys <- ch
	}
}

// installHandlers enables every known line and gives it a handler that reports
// the trap and clears the line. The machine timer handler re-arms instead.
func installHandlers(board *sim.Board, out io.Writer, period time.Duration) {
	for _, i := range bl602.Interrupts() {
		source := i
		err := board.Registry.Register(source, func(frame *trap.Frame) {
			fmt.Fprintf(out, "%10d ms  %s\n", now(board), source)
			if source == bl602.MachineTimer {
				if board.Clic != nil {
					board.Clic.SetTimeout(period)
				}
				return
			}
			board.Regs.ClearInterrupt(source)
		})
		if err != nil {
			trust.Errorf("%v", err)
			continue
		}
		board.Regs.EnableInterrupt(source)
	}
	board.Registry.SetExceptionHandler(func(frame *trap.Frame) {
		fmt.Fprintf(out, "%10d ms  exception path, mcause %#x\n", now(board), uint32(board.Hart.Cause()))
	})
	if board.Clic != nil {
		board.Clic.SetTimeout(period)
	}
}

func now(board *sim.Board) uint64 {
	if board.Clic == nil {
		return 0
	}
	return board.Clic.TimeMs()
}

// crlfWriter turns \n into \r\n for a terminal in raw mode.
type crlfWriter struct {
	w io.Writer
}

func (c *crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: clicsim [flags]\n")
	fmt.Fprintf(os.Stderr, "simulates the bl602 interrupt core; keys raise interrupt lines\n")
	flag.PrintDefaults()
	printKeys(os.Stderr)
	os.Exit(1)
}
