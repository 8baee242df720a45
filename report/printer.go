// Package report prints diagnostics and summaries to the terminal.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	failColor    = color.New(color.FgHiRed)
	warnColor    = color.New(color.FgHiYellow)
	successColor = color.New(color.FgHiGreen)
	headerColor  = color.New(color.FgHiCyan, color.Bold)
)

// Printer writes coloured status lines and tables to Out.
type Printer struct {
	Out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{Out: out}
}

// DisableColor turns colour off for every printer in the process.
func DisableColor() {
	color.NoColor = true
}

func (p *Printer) Fail(format string, args ...interface{}) {
	failColor.Fprintf(p.Out, "Error! "+format+"\n", args...)
}

func (p *Printer) Warn(format string, args ...interface{}) {
	warnColor.Fprintf(p.Out, "Warning! "+format+"\n", args...)
}

func (p *Printer) Success(format string, args ...interface{}) {
	successColor.Fprintf(p.Out, format+"\n", args...)
}

func (p *Printer) Header(format string, args ...interface{}) {
	headerColor.Fprintf(p.Out, "\n"+format+"\n", args...)
}

func (p *Printer) Info(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}
