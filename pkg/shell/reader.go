package shell

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/lifecycle"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

type readResult struct {
	line string
	err  error
}

// Reader forwards lines from an io.Reader over a channel so that a blocked
// read never keeps the owner goroutine from noticing cancellation.
// It implements command.LineReader.
type Reader struct {
	results chan readResult
}

// NewReader starts reading r in the background until EOF or until ctx is done.
func NewReader(ctx context.Context, r io.Reader, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	rd := &Reader{results: make(chan readResult)}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(rd.results)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case rd.results <- readResult{line: strings.TrimSuffix(scanner.Text(), "\r")}:
			case <-ctx.Done():
				return nil
			}
		}

		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		select {
		case rd.results <- readResult{err: err}:
		case <-ctx.Done():
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		logger.Error("input reader panic", "error", err)
	}))

	return rd
}

// ReadLine returns the next line, io.EOF at the end of input, or the
// context error once ctx is done.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-r.results:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}
