// Package output renders CLI results as colored text, tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Printer struct {
	out     io.Writer
	errOut  io.Writer
	json    bool
	quiet   bool
	noColor bool
}

type Option func(*Printer)

func WithJSON(json bool) Option {
	return func(p *Printer) {
		p.json = json
	}
}

func WithQuiet(quiet bool) Option {
	return func(p *Printer) {
		p.quiet = quiet
	}
}

func WithNoColor(noColor bool) Option {
	return func(p *Printer) {
		p.noColor = noColor
	}
}

func WithOutput(out io.Writer) Option {
	return func(p *Printer) {
		p.out = out
	}
}

func WithErrOutput(errOut io.Writer) Option {
	return func(p *Printer) {
		p.errOut = errOut
	}
}

func New(opts ...Option) *Printer {
	p := &Printer{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.noColor {
		color.NoColor = true
	}
	return p
}

var (
	successIcon = color.GreenString("✓")
	errorIcon   = color.RedString("✗")
	warnIcon    = color.YellowString("!")
	infoIcon    = color.CyanString("→")
	indentIcon  = color.HiBlackString("└─")
)

func (p *Printer) IsJSON() bool {
	return p.json
}

func (p *Printer) IsQuiet() bool {
	return p.quiet
}

func (p *Printer) Printf(format string, args ...interface{}) {
	if p.quiet || p.json {
		return
	}
	fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(args ...interface{}) {
	if p.quiet || p.json {
		return
	}
	fmt.Fprintln(p.out, args...)
}

func (p *Printer) Success(format string, args ...interface{}) {
	if p.quiet || p.json {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", successIcon, fmt.Sprintf(format, args...))
}

func (p *Printer) Error(format string, args ...interface{}) {
	if p.json {
		return
	}
	fmt.Fprintf(p.errOut, "%s %s\n", errorIcon, fmt.Sprintf(format, args...))
}

func (p *Printer) Warn(format string, args ...interface{}) {
	if p.quiet || p.json {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", warnIcon, fmt.Sprintf(format, args...))
}

func (p *Printer) Info(format string, args ...interface{}) {
	if p.quiet || p.json {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", infoIcon, fmt.Sprintf(format, args...))
}

func (p *Printer) Indent(format string, args ...interface{}) {
	if p.quiet || p.json {
		return
	}
	fmt.Fprintf(p.out, "  %s %s\n", indentIcon, fmt.Sprintf(format, args...))
}

func (p *Printer) JSON(v interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) Header(title string) {
	if p.quiet || p.json {
		return
	}
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "%s\n", color.New(color.Bold).Sprint(title))
	fmt.Fprintln(p.out)
}

func (p *Printer) KeyValue(key, value string) {
	if p.quiet || p.json {
		return
	}
	fmt.Fprintf(p.out, "  %s: %s\n", color.HiBlackString(key), value)
}

// Translated prints one translation result with its detected source language.
func (p *Printer) Translated(text, detectedSource string) {
	if p.quiet || p.json {
		return
	}
	if detectedSource != "" {
		fmt.Fprintf(p.out, "%s %s\n", color.HiBlackString("["+detectedSource+"]"), text)
		return
	}
	fmt.Fprintln(p.out, text)
}

// DocumentHandle prints the id/key pair the caller needs for follow-up calls.
func (p *Printer) DocumentHandle(id, key string) {
	if p.quiet || p.json {
		return
	}
	fmt.Fprintf(p.out, "%s document uploaded\n", successIcon)
	fmt.Fprintf(p.out, "  %s id:  %s\n", indentIcon, id)
	fmt.Fprintf(p.out, "  %s key: %s\n", indentIcon, key)
}
