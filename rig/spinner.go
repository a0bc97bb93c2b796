package rig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ErrSpinnerActive is returned by Start when the spinner already has a live
// ticker. Two tickers would fight over the same terminal cell.
var ErrSpinnerActive = errors.New("spinner already running")

// SpinnerFrames maps the style names accepted in config to glyph cycles.
var SpinnerFrames = map[string][]string{
	"line": {"|", "/", "-", "\\"},
	"dots": {"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	"grow": {"▁", "▃", "▅", "▇", "▅", "▃"},
}

// DefaultSpinnerStyle is the classic single-cell line spinner.
const DefaultSpinnerStyle = "line"

const (
	defaultSpinnerInterval = 100 * time.Millisecond
	defaultSpinnerSettle   = 300 * time.Millisecond
)

// Spinner is the busy indicator shown while a command runs. A background
// goroutine redraws one terminal cell on a fixed cadence. Stopping is
// cooperative and lossy: Stop signals the goroutine and never waits for it,
// so one final frame may land after the signal; the settle delay plus cell
// erase absorbs that.
type Spinner struct {
	frames   []string
	interval time.Duration
	settle   time.Duration
	writer   io.Writer

	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
	frameIdx int
}

// SpinnerConfig configures a Spinner. Zero values select the defaults.
type SpinnerConfig struct {
	Style        string        // key into SpinnerFrames
	CustomFrames []string      // overrides Style when set
	Interval     time.Duration // frame cadence (default 100ms)
	Settle       time.Duration // pause before erasing on Stop (default 300ms)
	Writer       io.Writer     // output destination (default os.Stdout)
}

// NewSpinner creates a stopped spinner.
func NewSpinner(cfg SpinnerConfig) *Spinner {
	var frames []string
	if len(cfg.CustomFrames) > 0 {
		frames = cfg.CustomFrames
	} else if cfg.Style != "" {
		frames = SpinnerFrames[cfg.Style]
	}
	if frames == nil {
		frames = SpinnerFrames[DefaultSpinnerStyle]
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = defaultSpinnerInterval
	}
	settle := cfg.Settle
	if settle == 0 {
		settle = defaultSpinnerSettle
	}
	writer := cfg.Writer
	if writer == nil {
		writer = os.Stdout
	}

	return &Spinner{
		frames:   frames,
		interval: interval,
		settle:   settle,
		writer:   writer,
	}
}

// Start launches the ticker goroutine and fails with ErrSpinnerActive when
// one is already live. The goroutine holds no resources that would keep the
// process alive and is never joined.
func (s *Spinner) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrSpinnerActive
	}
	s.running = true
	s.frameIdx = 0
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.mu.Unlock()

	go s.run()
	return nil
}

// Stop signals the ticker to quit without waiting for it, sleeps the settle
// delay so a mid-cadence frame can still land, and erases the indicator
// cell. Stopping a stopped spinner is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	time.Sleep(s.settle)
	s.eraseCell()
}

func (s *Spinner) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.render()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frameIdx = (s.frameIdx + 1) % len(s.frames)
			s.mu.Unlock()
			s.render()
		}
	}
}

// render draws the current glyph and backs the cursor onto it so the next
// frame overwrites the same cell.
func (s *Spinner) render() {
	s.mu.Lock()
	frame := s.frames[s.frameIdx]
	s.mu.Unlock()

	fmt.Fprintf(s.writer, "%s\b", frame)
}

func (s *Spinner) eraseCell() {
	fmt.Fprint(s.writer, " \b")
}
