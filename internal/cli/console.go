package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console reads utterances line by line and prints replies.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole wraps the given input and output streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Out returns the writer replies are printed to.
func (c *Console) Out() io.Writer {
	return c.out
}

// ReadLine prints prompt and returns the next line without its line ending.
// A final unterminated line is returned normally; io.EOF is only reported once
// the input is exhausted.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question and defaults to no.
func (c *Console) Confirm(question string) (bool, error) {
	response, err := c.ReadLine(fmt.Sprintf("%s [y/N]: ", question))
	if err != nil {
		return false, err
	}

	switch strings.TrimSpace(strings.ToLower(response)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// PrintDependencyStatus prints a summary of dependency status
func (c *Console) PrintDependencyStatus(deps []DependencyStatus) {
	fmt.Fprintln(c.out, "\nHost Tool Status:")
	fmt.Fprintln(c.out, "-----------------")

	for _, dep := range deps {
		icon := "+"
		if !dep.Installed {
			icon = "-"
		}

		path := dep.Path
		if path == "" {
			path = "not installed"
		}

		required := ""
		if dep.Required {
			required = " (required)"
		}

		fmt.Fprintf(c.out, "  [%s] %s: %s%s\n", icon, dep.Name, path, required)

		if dep.Message != "" {
			fmt.Fprintf(c.out, "      %s\n", dep.Message)
		}
	}

	fmt.Fprintln(c.out)
}
