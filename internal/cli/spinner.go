package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const spinnerTick = 100 * time.Millisecond

// spinnerFrames grows and shrinks a bar, one step per tick.
var spinnerFrames = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "▆", "▅", "▄", "▃", "▂"}

// spinner redraws a single status line on w until stopped or until its
// context ends. Runs longer than a second also show the elapsed time.
type spinner struct {
	w       io.Writer
	label   string
	started time.Time

	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu    sync.Mutex
	width int // widest line drawn so far, for clearing
}

// startSpinner draws label on w and keeps animating it in the background.
func startSpinner(ctx context.Context, w io.Writer, label string) *spinner {
	sctx, cancel := context.WithCancel(ctx)
	s := &spinner{
		w:       w,
		label:   label,
		started: time.Now(),
		parent:  ctx,
		ctx:     sctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *spinner) run() {
	defer close(s.done)
	ticker := time.NewTicker(spinnerTick)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			s.clear()
			return
		case <-ticker.C:
			s.draw(spinnerFrames[i%len(spinnerFrames)])
		}
	}
}

func (s *spinner) draw(frame string) {
	line := s.label
	if elapsed := time.Since(s.started); elapsed >= time.Second {
		line = fmt.Sprintf("%s %.1fs", s.label, elapsed.Seconds())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(line) + 2; n > s.width {
		s.width = n
	}
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(line))
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
	}
}

// Stop ends the animation and clears the line. It is safe to call more than once.
func (s *spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Fail stops the spinner and reports msg as an error, unless the run was
// interrupted, in which case main reports the cancellation.
func (s *spinner) Fail(msg string) {
	s.Stop()
	if !s.Interrupted() {
		printError("%s", msg)
	}
}

// Interrupted reports whether the caller's context ended, as opposed to a
// plain Stop.
func (s *spinner) Interrupted() bool {
	return s.parent.Err() != nil
}
