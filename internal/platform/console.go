package platform

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrListenCancelled is returned when a pending listen is canceled by context.
var ErrListenCancelled = errors.New("listen canceled")

// Console implements service.Speaker over a terminal. Speak renders the
// agent's line; Listen blocks for one caller utterance, respecting
// context cancellation so Ctrl-C ends a call cleanly.
type Console struct {
	writer      io.Writer
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewConsole creates a console platform over the given streams.
func NewConsole(reader io.Reader, writer io.Writer) *Console {
	if reader == nil {
		panic("reader cannot be nil")
	}
	if writer == nil {
		panic("writer cannot be nil")
	}

	return &Console{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Speak renders one agent line. The interruptibility flag is display
// only on a console; a real speech platform would use it to open the
// microphone during playback.
func (c *Console) Speak(text string, allowInterruptions bool) error {
	label := AgentLabelStyle.Render("DemoBank:")
	line := AgentStyle.Render(text)
	if allowInterruptions {
		line += " " + SubtleStyle.Render("(you may interrupt)")
	}

	if _, err := fmt.Fprintf(c.writer, "%s %s\n\n", label, line); err != nil {
		return fmt.Errorf("failed to write agent line: %w", err)
	}
	return nil
}

// Listen reads one caller utterance, honoring context cancellation.
// io.EOF is returned unchanged when the input stream ends.
func (c *Console) Listen(ctx context.Context) (string, error) {
	if _, err := fmt.Fprint(c.writer, CallerPromptStyle.Render("You:"), " "); err != nil {
		return "", fmt.Errorf("failed to write caller prompt: %w", err)
	}

	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		c.readingLock.Lock()
		defer c.readingLock.Unlock()

		value, err := c.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		// The reading goroutine finishes on its own; we return to the
		// caller immediately.
		return "", ErrListenCancelled
	case res := <-resultCh:
		if res.err != nil && (res.value == "" || res.err != io.EOF) {
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}
