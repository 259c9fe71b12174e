package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Spinner shows indeterminate progress while waiting on the server.
type Spinner struct {
	bar     *progressbar.ProgressBar
	quiet   bool
	out     io.Writer
	started time.Time
}

func NewSpinner(description string, quiet bool) *Spinner {
	s := &Spinner{
		out:     os.Stderr,
		quiet:   quiet,
		started: time.Now(),
	}

	if quiet {
		return s
	}

	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(s.out),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprint(s.out, "\n")
		}),
	)

	return s
}

func (s *Spinner) Update(description string) {
	if s.bar != nil {
		s.bar.Describe(description)
		_ = s.bar.Add(1)
	}
}

func (s *Spinner) Finish() {
	if s.bar != nil {
		_ = s.bar.Finish()
	}
}

func (s *Spinner) Duration() time.Duration {
	return time.Since(s.started)
}

// UsageBar renders account quota consumption as a determinate bar.
type UsageBar struct {
	bar   *progressbar.ProgressBar
	quiet bool
	out   io.Writer
}

func NewUsageBar(count, limit int64, quiet bool) *UsageBar {
	u := &UsageBar{
		out:   os.Stderr,
		quiet: quiet,
	}

	if quiet || limit <= 0 {
		return u
	}

	u.bar = progressbar.NewOptions64(limit,
		progressbar.OptionSetDescription("characters used"),
		progressbar.OptionSetWriter(u.out),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	_ = u.bar.Set64(count)

	return u
}

func (u *UsageBar) Finish() {
	if u.bar != nil {
		_, _ = fmt.Fprint(u.out, "\n")
	}
}
