package trust

import (
	"fmt"
	"io"
	"os"
)

type MaskLevel int

const (
	Nothing   MaskLevel = 0x0
	ErrorMask MaskLevel = 0x1
	WarnMask  MaskLevel = 0x2
	InfoMask  MaskLevel = 0x4
	DebugMask MaskLevel = 0x8
	StatsMask MaskLevel = 0x10
	fatalMask MaskLevel = 0x80
)

var level = fatalMask | StatsMask | ErrorMask | WarnMask | InfoMask

var out io.Writer = os.Stdout
var exit = os.Exit

// SetLevel lets you set an error mask directly. You can pass in something like
// ErrorMask | DebugMask to control exactly what gets printed.  It returns the
// previous mask.
func SetLevel(mask MaskLevel) MaskLevel {
	if mask&0x1f == 0 {
		logf(WarnMask, "trust.SetLevel is turning off log messages")
	}
	r := level & 0x1f
	level = (mask & 0x1f) | fatalMask
	return r
}

func Level() MaskLevel {
	return level
}

// Verbosity maps a command line verbosity (0 terse, 1 debug info, 2 everything)
// onto a mask.
func Verbosity(v int) MaskLevel {
	switch {
	case v <= 0:
		return ErrorMask | WarnMask
	case v == 1:
		return ErrorMask | WarnMask | InfoMask | StatsMask
	}
	return ErrorMask | WarnMask | InfoMask | DebugMask | StatsMask
}

func LevelToString() string {
	result := ""
	if level&ErrorMask > 0 {
		result += "error "
	}
	if level&WarnMask > 0 {
		result += "warn "
	}
	if level&InfoMask > 0 {
		result += "info "
	}
	if level&DebugMask > 0 {
		result += "debug "
	}
	if level&StatsMask > 0 {
		result += "stats "
	}
	if len(result) > 0 {
		result = result[:len(result)-1]
	}
	return result
}

// SetOutput redirects every log message to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// SetExit replaces the function Fatalf uses to stop the program.
func SetExit(f func(int)) func(int) {
	prev := exit
	exit = f
	return prev
}

func logf(l MaskLevel, format string, params ...interface{}) {
	if level&l == 0 {
		return
	}
	switch {
	case l&fatalMask > 0:
		fmt.Fprint(out, "FATAL:")
	case l&ErrorMask > 0:
		fmt.Fprint(out, "ERROR:")
	case l&WarnMask > 0:
		fmt.Fprint(out, " WARN:")
	case l&InfoMask > 0:
		fmt.Fprint(out, " INFO:")
	case l&DebugMask > 0:
		fmt.Fprint(out, "DEBUG:")
	case l&StatsMask > 0:
		s, ok := params[0].(string)
		if !ok {
			s = "unknown"
		}
		fmt.Fprintf(out, "STATS[%s]:", s)
		params = params[1:]
	}
	if len(format) == 0 {
		format = "\n"
	} else if format[len(format)-1] != '\n' {
		format += "\n"
	}
	fmt.Fprintf(out, format, params...)
}

//Fatalf prints the given log message (format + params) and then
//exits with the exitCode provided.  Fatalf is not maskable.
func Fatalf(exitCode int, format string, params ...interface{}) {
	logf(fatalMask, format, params...)
	exit(exitCode)
}

//Errorf prints the given log message (format + params) using the ErrorMask level.
func Errorf(format string, params ...interface{}) {
	logf(ErrorMask, format, params...)
}

//Warnf prints the given log message (format + params) using the WarnMask level.
func Warnf(format string, params ...interface{}) {
	logf(WarnMask, format, params...)
}

//Infof prints the given log message (format + params) using the InfoMask level.
func Infof(format string, params ...interface{}) {
	logf(InfoMask, format, params...)
}

//Debugf prints the given log message (format + params) using the DebugMask level.
func Debugf(format string, params ...interface{}) {
	logf(DebugMask, format, params...)
}

//Statsf prints the given log message (format + params) using the StatsMask level and
//takes an extra parameter that will be visible in the log message as the category
//of stats that is reported.
func Statsf(category string, format string, params ...interface{}) {
	logf(StatsMask, format, append([]interface{}{category}, params...)...)
}
