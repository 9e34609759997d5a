package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrAborted is returned when the input ends before an answer was given.
var ErrAborted = errors.New("aborted by operator")

// Validator checks an answer. A non-nil error is shown and the question repeated.
type Validator func(string) error

// Prompter asks the operator for values.
type Prompter interface {
	Text(label, def string, validate Validator) (string, error)
	Confirm(label string, def bool) (bool, error)
}

// LinePrompter asks questions one line at a time.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter reading answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", ErrAborted
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Text asks for a value. An empty answer selects def.
func (p *LinePrompter) Text(label, def string, validate Validator) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(p.out, "? %s [%s]: ", label, def)
		} else {
			fmt.Fprintf(p.out, "? %s: ", label)
		}

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			answer = def
		}

		if validate != nil {
			if err := validate(answer); err != nil {
				fmt.Fprintf(p.out, "  invalid value: %v\n", err)
				continue
			}
		}
		return answer, nil
	}
}

// Confirm asks a yes/no question. An empty answer selects def.
func (p *LinePrompter) Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "? %s (%s) ", label, hint)
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "  please answer y or n")
	}
}

// MatchRegexp accepts answers matching pattern.
func MatchRegexp(pattern string) Validator {
	re := regexp.MustCompile(pattern)
	return func(s string) error {
		if !re.MatchString(s) {
			return fmt.Errorf("%q does not match %s", s, pattern)
		}
		return nil
	}
}

// NonNegativeInt accepts whole numbers of zero or more.
func NonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || strings.HasPrefix(s, "+") {
		return fmt.Errorf("%q is not a non-negative whole number", s)
	}
	return nil
}
