// Package prompt reads the private key from the user.
//
// In the terminal the input is not echoed.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// Message is printed before reading the key
const Message = "Enter your private key: "

// the exit code of the program interrupted by the user
const interrupted_code = 130

// Prompt reads the key from the input.
type Prompt struct {
	input  io.Reader
	output io.Writer
}

// New prompt reading the standard input.
// The message is printed to the standard error.
func New() *Prompt {
	return &Prompt{input: os.Stdin, output: os.Stderr}
}

// NewFromReader creates a prompt on any input and output.
func NewFromReader(input io.Reader, output io.Writer) *Prompt {
	return &Prompt{input: input, output: output}
}

// PrivateKey asks the user for the private key.
//
// If the input is the terminal, then the typed characters are hidden.
// Otherwise, the first line of the input is the key.
func (p *Prompt) PrivateKey(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(p.output, Message); err != nil {
		return "", fmt.Errorf("fmt.Fprint: %w", err)
	}

	if file, ok := p.input.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return p.readMasked(int(file.Fd()))
	}
	return p.readLine()
}

// readMasked turns off the echo while the key is typed.
// The terminal is restored even if the user interrupts the program.
func (p *Prompt) readMasked(fd int) (string, error) {
	state, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("term.GetState: %w", err)
	}
	defer term.Restore(fd, state)

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	defer func() {
		signal.Stop(interrupts)
		close(done)
	}()

	go func() {
		select {
		case <-interrupts:
			_ = term.Restore(fd, state)
			fmt.Fprintln(p.output)
			os.Exit(interrupted_code)
		case <-done:
		}
	}()

	raw, err := term.ReadPassword(fd)
	// the new line typed by the user was not echoed
	fmt.Fprintln(p.output)
	if err != nil {
		return "", fmt.Errorf("term.ReadPassword: %w", err)
	}

	return string(raw), nil
}

func (p *Prompt) readLine() (string, error) {
	line, err := bufio.NewReader(p.input).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read: %w", err)
	}
	if errors.Is(err, io.EOF) && len(line) == 0 {
		return "", fmt.Errorf("no private key in the input")
	}

	return strings.TrimRight(line, "\r\n"), nil
}
