package loaders

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const maxLineLength = 16 * 1024 * 1024

// tokenReader splits input into whitespace-delimited tokens.
// A '#' starts a comment that runs to the end of the line.
type tokenReader struct {
	scanner *bufio.Scanner
	pending []string
	line    int
}

func newTokenReader(r io.Reader) *tokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &tokenReader{scanner: scanner}
}

// next returns the next token, or io.ErrUnexpectedEOF when input runs out
func (tr *tokenReader) next() (string, error) {
	for len(tr.pending) == 0 {
		if !tr.scanner.Scan() {
			if err := tr.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		tr.line++
		text := tr.scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		tr.pending = strings.Fields(text)
	}
	token := tr.pending[0]
	tr.pending = tr.pending[1:]
	return token, nil
}

// word reads a token that is used as-is
func (tr *tokenReader) word(what string) (string, error) {
	token, err := tr.next()
	if err != nil {
		return "", fmt.Errorf("line %d: reading %s: %w", tr.line, what, err)
	}
	return token, nil
}

func (tr *tokenReader) float(what string) (float64, error) {
	token, err := tr.word(what)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s: %w", tr.line, what, err)
	}
	return value, nil
}

func (tr *tokenReader) int(what string) (int, error) {
	token, err := tr.word(what)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s: %w", tr.line, what, err)
	}
	return value, nil
}

// count reads a non-negative integer
func (tr *tokenReader) count(what string) (int, error) {
	n, err := tr.int(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("line %d: %s must not be negative, got %d", tr.line, what, n)
	}
	return n, nil
}

func (tr *tokenReader) vec3(what string) (core.Vec3, error) {
	var xyz [3]float64
	for i := range xyz {
		v, err := tr.float(what)
		if err != nil {
			return core.Vec3{}, err
		}
		xyz[i] = v
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}
