package builddir

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
)

// ErrNoInput is returned when standard input closes before a valid
// selection was entered.
var ErrNoInput = errors.New("no build directory selected: input closed")

// Picker chooses one of several build directories.
type Picker interface {
	Pick(candidates []string) (string, error)
}

// Prompter asks a human to choose by number. It keeps asking until the
// answer is a number in [1, len(candidates)].
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading answers from in and writing the
// menu to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Pick lists candidates with 1-based indices and blocks for a choice.
func (p *Prompter) Pick(candidates []string) (string, error) {
	for i, c := range candidates {
		fmt.Fprintf(p.out, "%d: %s\n", i+1, c)
	}
	for {
		fmt.Fprint(p.out, color.Question.Sprint("Pick the directory: "))
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if err != nil && line == "" {
			fmt.Fprintln(p.out)
			return "", ErrNoInput
		}
		if idx, ok := parseIndex(line, len(candidates)); ok {
			return candidates[idx-1], nil
		}
		fmt.Fprintln(p.out, color.Warn.Sprint("Invalid input!"))
	}
}

// parseIndex accepts only plain decimal digits, so "+2" and " -1" are
// rejected the same way as words.
func parseIndex(line string, n int) (int, bool) {
	s := strings.TrimSpace(line)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 1 || idx > n {
		return 0, false
	}
	return idx, true
}
