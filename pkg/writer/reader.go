package writer

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrMalformedLine = errors.New("malformed fixture line")
	ErrUnsorted      = errors.New("fixture is not sorted")
	ErrOutOfRange    = errors.New("value out of range")
)

// Check lists the properties VerifyFile enforces beyond the line format
type Check struct {
	Sorted bool
	Min    *int64
	Max    *int64
}

// Summary describes a fixture that passed verification
type Summary struct {
	Path  string
	Lines int64
	First int64
	Last  int64
}

// ReadInts parses r line by line and calls fn with the 1-based line number
// and value. Every line must be a decimal integer followed by '\n'.
func ReadInts(r io.Reader, fn func(line int64, v int64) error) error {
	br := bufio.NewReader(r)
	var line int64

	for {
		b, err := br.ReadSlice('\n')
		if err == bufio.ErrBufferFull {
			return errors.Wrapf(ErrMalformedLine, "line %d: too long", line+1)
		}
		if err != nil && err != io.EOF {
			return errors.Wrapf(err, "line %d", line+1)
		}
		if len(b) > 0 {
			line++
			if b[len(b)-1] != '\n' {
				return errors.Wrapf(ErrMalformedLine, "line %d: missing trailing newline", line)
			}
			text := string(b[:len(b)-1])
			v, perr := strconv.ParseInt(text, 10, 64)
			// only the canonical decimal form: no "+", zero padding or "-0"
			if perr != nil || strconv.FormatInt(v, 10) != text {
				return errors.Wrapf(ErrMalformedLine, "line %d: %q", line, text)
			}
			if ferr := fn(line, v); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

// VerifyFile reads the fixture at path and enforces c
func VerifyFile(path string, c Check) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	summary := &Summary{Path: path}
	err = ReadInts(f, func(line int64, v int64) error {
		if c.Sorted && line > 1 && v < summary.Last {
			return errors.Wrapf(ErrUnsorted, "line %d: %d after %d", line, v, summary.Last)
		}
		if c.Min != nil && v < *c.Min {
			return errors.Wrapf(ErrOutOfRange, "line %d: %d below %d", line, v, *c.Min)
		}
		if c.Max != nil && v > *c.Max {
			return errors.Wrapf(ErrOutOfRange, "line %d: %d above %d", line, v, *c.Max)
		}
		if line == 1 {
			summary.First = v
		}
		summary.Last = v
		summary.Lines = line
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return summary, nil
}
