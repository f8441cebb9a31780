// Package cli is the thin interactive shell around the engine: it collects
// a username and a finished click-pattern sequence and hands them to the
// auth service as complete values. It has no awareness of individual click
// events or timing.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/akoreshkova/patternlock/internal/common"
	"github.com/akoreshkova/patternlock/internal/pattern"
)

// readSecret is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readSecret = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPattern prompts for a click pattern typed as coordinate pairs, e.g.
//
//	10,10 50,50 90,10
//
// The input is read without echo: the pattern is the secret.
func GetPattern(w io.Writer) (pattern.Pattern, error) {
	if _, err := fmt.Fprint(w, "Enter pattern as x,y pairs (3-5 points, space-separated): "); err != nil {
		return nil, err
	}
	raw, err := readSecret(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	// Don't leave the raw keystrokes sitting in memory.
	defer common.WipeByteArray(raw)
	return ParsePattern(string(raw))
}

// ParsePattern converts "x,y x,y ..." into a Pattern. It only checks the
// syntax; the engine enforces the length invariant.
func ParsePattern(s string) (pattern.Pattern, error) {
	fields := strings.Fields(s)
	p := make(pattern.Pattern, 0, len(fields))

	for _, f := range fields {
		xy := strings.SplitN(f, ",", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("invalid point %q: expected x,y", f)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xy[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid x in %q: %w", f, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(xy[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid y in %q: %w", f, err)
		}
		p = append(p, pattern.Point{X: x, Y: y})
	}

	return p, nil
}
