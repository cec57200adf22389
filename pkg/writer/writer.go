// Package writer serializes integer sequences into fixture files: one decimal
// integer per line, every line newline-terminated, nothing else.
package writer

import (
	"bufio"
	"context"
	"io"
	"iter"
	"os"
	"strconv"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
)

const (
	bufferSize = 64 * 1024
	// cancellation is polled once per this many lines
	ctxCheckEvery = 4096
	// mode of newly created fixtures; replaced files keep their own mode
	fixtureMode os.FileMode = 0644
)

// Result describes one fixture file on disk
type Result struct {
	Path  string `json:"path" yaml:"path"`
	Lines int64  `json:"lines" yaml:"lines"`
	Bytes int64  `json:"bytes" yaml:"bytes"`
}

// WriteInts writes values to path. The content is streamed into a temporary
// file next to path and renamed over it only once fully written, so a failed
// or cancelled write leaves no partial fixture behind.
func WriteInts(ctx context.Context, path string, values iter.Seq[int64]) (*Result, error) {
	result := &Result{Path: path}
	_, statErr := os.Stat(path)
	created := os.IsNotExist(statErr)

	pr, pw := io.Pipe()
	done := make(chan struct{})

	go func() {
		defer close(done)
		pw.CloseWithError(encode(ctx, pw, values, result))
	}()

	err := atomic.WriteFile(path, pr)
	// unblocks the encoder if WriteFile gave up before draining the pipe
	pr.Close()
	<-done

	if err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", path)
	}
	if created {
		if err := os.Chmod(path, fixtureMode); err != nil {
			return nil, errors.Wrapf(err, "failed to set mode on %s", path)
		}
	}
	return result, nil
}

func encode(ctx context.Context, w io.Writer, values iter.Seq[int64], result *Result) error {
	bw := bufio.NewWriterSize(w, bufferSize)
	line := make([]byte, 0, 24)

	for v := range values {
		if result.Lines%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		line = strconv.AppendInt(line[:0], v, 10)
		line = append(line, '\n')
		n, err := bw.Write(line)
		if err != nil {
			return err
		}
		result.Lines++
		result.Bytes += int64(n)
	}

	return bw.Flush()
}
