package mock

import (
	"context"
	"io"
	"sync"

	"github.com/defend-your-code/form/internal/application/adapter"
)

// Prompter replays scripted answers and records what the user was shown.
// Once the script is exhausted Ask returns io.EOF, like a closed stdin.
type Prompter struct {
	mu        sync.Mutex
	answers   []string
	questions []adapter.Question
	rejects   []string
}

func NewPrompter(answers ...string) *Prompter {
	return &Prompter{answers: answers}
}

func (p *Prompter) Ask(ctx context.Context, question adapter.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *Prompter) Reject(_ context.Context, reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rejects = append(p.rejects, reason)
	return nil
}

func (p *Prompter) Questions() []adapter.Question {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]adapter.Question(nil), p.questions...)
}

func (p *Prompter) Rejections() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.rejects...)
}

func (p *Prompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.answers)
}
