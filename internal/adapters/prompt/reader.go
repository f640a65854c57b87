// Package prompt reads interactive answers from the terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

// LineReader reads lines from r on a background goroutine so that a pending
// read can be abandoned when its context is cancelled. A line that arrives
// after cancellation is handed to the next ReadLine.
type LineReader struct {
	r     io.Reader
	lines chan line
	start sync.Once
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: r, lines: make(chan line)}
}

// ReadLine returns the next line without its terminator. It returns io.EOF
// once the input is exhausted.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	l.start.Do(func() { go l.pump() })

	select {
	case next, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return next.text, next.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (l *LineReader) pump() {
	defer close(l.lines)

	reader := bufio.NewReader(l.r)
	for {
		text, err := reader.ReadString('\n')
		text = strings.TrimRight(text, "\r\n")
		switch {
		case err == nil:
			l.lines <- line{text: text}
		case errors.Is(err, io.EOF):
			if text != "" {
				l.lines <- line{text: text}
			}
			return
		default:
			l.lines <- line{err: err}
			return
		}
	}
}
