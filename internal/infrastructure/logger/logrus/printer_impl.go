package logrus

import (
	"fmt"
	"os"

	applogger "fry.org/qft/trail/internal/application/logger"
)

type printer struct {
	out *os.File
}

func (p printer) Print(v ...interface{}) {

	fmt.Fprint(p.out, v...)
}

func (p printer) Printf(format string, v ...interface{}) {

	fmt.Fprintf(p.out, format, v...)
}

// NewPrinter returns a Printer that writes raw text to f, without the
// log decoration applied by the Logger implementation
func NewPrinter(f *os.File) applogger.Printer {

	if f == nil {
		f = os.Stdout
	}

	return printer{
		out: f,
	}
}
