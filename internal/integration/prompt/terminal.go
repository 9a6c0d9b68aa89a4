// Package prompt implements the interactive prompter on a terminal or plain streams.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/defend-your-code/form/internal/application/adapter"
)

// TerminalPrompter reads answers line by line. Secret answers are read
// without echo when the input is a terminal.
type TerminalPrompter struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
	tty    bool
	state  *term.State
}

// NewTerminalPrompter creates a new TerminalPrompter.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	p := &TerminalPrompter{
		reader: bufio.NewReader(in),
		out:    out,
		fd:     -1,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.tty = true
		if state, err := term.GetState(p.fd); err == nil {
			p.state = state
		}
	}
	return p
}

// Ask prints the question and reads one answer.
func (p *TerminalPrompter) Ask(ctx context.Context, question adapter.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	prompt := question.Message
	if question.Default != "" {
		prompt += fmt.Sprintf(" [%s]", question.Default)
	}
	if _, err := fmt.Fprint(p.out, prompt+" "); err != nil {
		return "", fmt.Errorf("failed to print question: %w", err)
	}

	// Typed-ahead bytes already sit in the reader and would be skipped by a
	// raw read on the descriptor.
	if question.Secret && p.tty && p.reader.Buffered() == 0 {
		return p.readSecret()
	}
	return p.readLine()
}

// Reject prints the rejection reason.
func (p *TerminalPrompter) Reject(ctx context.Context, reason string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.out, reason); err != nil {
		return fmt.Errorf("failed to print rejection: %w", err)
	}
	return nil
}

// Restore puts the terminal back into the mode it had when the prompter was
// created, in case the process stops while a secret is being read.
func (p *TerminalPrompter) Restore() {
	if p.state != nil {
		_ = term.Restore(p.fd, p.state)
	}
}

func (p *TerminalPrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func (p *TerminalPrompter) readSecret() (string, error) {
	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return string(secret), nil
}

func trimEOL(s string) string {
	return strings.TrimRight(s, "\r\n")
}

var _ adapter.Prompter = (*TerminalPrompter)(nil)
