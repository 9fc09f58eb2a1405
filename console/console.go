// Package console writes prompts and reads single lines of input.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klejdi94/sanitize/core"
)

// Console pairs an input source with the sink prompts are written to.
type Console struct {
	in  io.Reader
	out io.Writer
}

// Option configures a Console.
type Option func(*Console)

// WithInput sets the input source (default os.Stdin).
func WithInput(r io.Reader) Option {
	return func(c *Console) {
		c.in = r
	}
}

// WithOutput sets the prompt sink (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
	}
}

// New creates a Console on stdin and stdout unless overridden by options.
func New(opts ...Option) *Console {
	c := &Console{in: os.Stdin, out: os.Stdout}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Ask writes prompt, if any, without a trailing newline and reads one line.
func (c *Console) Ask(prompt string) (string, error) {
	if prompt != "" && c.out != nil {
		if _, err := io.WriteString(c.out, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}
	return ReadLine(c.in)
}

// ReadLine reads up to and including the next '\n' and returns the line without
// its line ending. Bytes after the newline are left in r. A last line without a
// newline is returned as is; EOF before any byte yields core.ErrNoInput.
func ReadLine(r io.Reader) (string, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}
	var sb strings.Builder
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if sb.Len() > 0 {
					break
				}
				return "", fmt.Errorf("%w: %w", core.ErrNoInput, err)
			}
			return "", fmt.Errorf("read input: %w", err)
		}
		if b == '\n' {
			break
		}
		sb.WriteByte(b)
	}
	return strings.TrimSuffix(sb.String(), "\r"), nil
}

// byteReader reads one byte per call so nothing past the line is consumed.
type byteReader struct {
	r   io.Reader
	buf [1]byte
	err error
}

func (b *byteReader) ReadByte() (byte, error) {
	if b.err != nil {
		return 0, b.err
	}
	for {
		n, err := b.r.Read(b.buf[:])
		if n == 1 {
			b.err = err
			return b.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
