package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for the x/term calls.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetPassword prints a prompt to w and reads a password from the terminal fd
// without echo. A newline is printed after the read to keep the UI tidy.
func GetPassword(fd int, prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return nil, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// readLine prints a prompt to w and reads a single line of input from
// reader, dropping only the line ending. If EOF occurs after some input was
// read, the partial line is returned.
//
// Prompt format:
//
//	Prompt text
//	> _
func readLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Console reads answers from a line-oriented stream. It implements
// flow.Input.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
}

// NewConsole reads from in and prompts on out. fd is the descriptor behind in,
// or -1 when in is not a file; secrets are read without echo only when fd is
// a terminal.
func NewConsole(in io.Reader, out io.Writer, fd int) *Console {
	return &Console{reader: bufio.NewReader(in), out: out, fd: fd}
}

// ReadLine returns the answer as typed, without its line ending. Emails are
// validated exactly as entered; menu choices are trimmed by the flow.
func (c *Console) ReadLine(prompt string) (string, error) {
	return readLine(c.reader, prompt, c.out)
}

// ReadSecret keeps the value as typed; only the line ending is dropped.
func (c *Console) ReadSecret(prompt string) (string, error) {
	if c.fd < 0 || !isTerminal(c.fd) {
		return readLine(c.reader, prompt, c.out)
	}

	pw, err := GetPassword(c.fd, prompt, c.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
