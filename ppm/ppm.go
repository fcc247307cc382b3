package ppm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/seqsense/raytracer/rgb"
)

const (
	magic    = "P3"
	maxValue = 255

	flushSize = 32 * 1024
)

var (
	ErrFormat     = errors.New("not a P3 image")
	ErrMaxValue   = errors.New("unsupported max channel value")
	ErrChannel    = errors.New("invalid channel value")
	ErrPixelCount = errors.New("pixel count does not match image size")
)

// WriteTo writes img as P3 text: the header line, a blank line, then one
// "r g b" line per pixel in row-major order.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	var written int64
	flush := func(b []byte) error {
		n, err := w.Write(b)
		written += int64(n)
		return err
	}

	buf := make([]byte, 0, flushSize+16)
	buf = fmt.Appendf(buf, "%s %d %d %d\n\n", magic, img.width, img.height, maxValue)
	for it := img.Iterator(); it.IsValid(); it.Incr() {
		buf = it.Pixel().AppendText(buf)
		if len(buf) >= flushSize {
			if err := flush(buf); err != nil {
				return written, err
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		if err := flush(buf); err != nil {
			return written, err
		}
	}
	return written, nil
}

// Marshal writes img to w in P3 format.
func Marshal(img *Image, w io.Writer) error {
	if _, err := img.WriteTo(w); err != nil {
		return fmt.Errorf("writing P3 image: %w", err)
	}
	return nil
}

func (img *Image) String() string {
	var buf bytes.Buffer
	_, _ = img.WriteTo(&buf)
	return buf.String()
}

// MaxPixels bounds the size accepted by Unmarshal, so that a header alone
// cannot request an arbitrarily large allocation.
const MaxPixels = 1 << 26

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scanTokens is a bufio.SplitFunc returning whitespace separated tokens.
// '#' starts a comment running to the end of the line, also inside a token.
func scanTokens(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(data) {
		c := data[start]
		if c == '#' {
			j := bytes.IndexAny(data[start:], "\r\n")
			if j < 0 {
				if atEOF {
					return len(data), nil, nil
				}
				return start, nil, nil
			}
			start += j
			continue
		}
		if !isSpace(c) {
			break
		}
		start++
	}
	for i := start; i < len(data); i++ {
		if c := data[i]; isSpace(c) || c == '#' {
			return i, data[start:i], nil
		}
	}
	if atEOF && start < len(data) {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(scanTokens)
	return &tokenizer{sc: sc}
}

// next returns the next token, or io.EOF once the input is exhausted.
func (t *tokenizer) next() (string, error) {
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	switch err := t.sc.Err(); {
	case errors.Is(err, bufio.ErrTooLong):
		return "", fmt.Errorf("%w: %v", ErrFormat, err)
	case err != nil:
		return "", err
	}
	return "", io.EOF
}

// Unmarshal parses a P3 image. Only a max channel value of 255 is accepted,
// and images larger than MaxPixels are rejected with ErrFormat.
func Unmarshal(r io.Reader) (*Image, error) {
	t := newTokenizer(r)

	m, err := t.next()
	if err != nil && err != io.EOF {
		return nil, err
	}
	if err == io.EOF || m != magic {
		return nil, ErrFormat
	}
	var header [3]int
	for i := range header {
		s, err := t.next()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: truncated header", ErrFormat)
		} else if err != nil {
			return nil, err
		}
		if header[i], err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("%w: header: %v", ErrFormat, err)
		}
	}
	width, height, maxv := header[0], header[1], header[2]
	if width <= 0 || height <= 0 || width > MaxPixels/height {
		return nil, fmt.Errorf("%w: size %dx%d", ErrFormat, width, height)
	}
	if maxv != maxValue {
		return nil, fmt.Errorf("%w: %d", ErrMaxValue, maxv)
	}

	img := New(width, height)
	var ch [3]uint8
	for i := range img.pix {
		for c := range ch {
			s, err := t.next()
			if err == io.EOF {
				return nil, fmt.Errorf("%w: %d pixels read", ErrPixelCount, i)
			} else if err != nil {
				return nil, err
			}
			v, err := strconv.ParseUint(s, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrChannel, s)
			}
			ch[c] = uint8(v)
		}
		img.pix[i] = rgb.New(ch[0], ch[1], ch[2])
	}
	if _, err := t.next(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: trailing data", ErrPixelCount)
	}
	return img, nil
}
