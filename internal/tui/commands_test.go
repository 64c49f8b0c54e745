package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/nvaldez/inquiry/internal/research"
)

type fakeClient struct {
	answer     research.Answer
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeClient) Ask(ctx context.Context, prompt string) (research.Answer, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.answer, f.err
}

func newTestModel(t *testing.T, client research.Client) *model {
	t.Helper()
	teaModel, ok := New(Config{Endpoint: "http://127.0.0.1:8000/api/ask/", Client: client}).(*model)
	if !ok {
		t.Fatalf("expected *model, got %T", teaModel)
	}
	return teaModel
}

func TestAskCmdDeliversAnswer(t *testing.T) {
	fake := &fakeClient{answer: research.Answer{Title: "T", Summary: "S"}}

	msg := askCmd(fake, 7, "black holes")()
	result, ok := msg.(askResultMsg)
	if !ok {
		t.Fatalf("expected askResultMsg, got %T", msg)
	}
	if result.seq != 7 {
		t.Fatalf("seq = %d, want 7", result.seq)
	}
	if result.err != nil {
		t.Fatalf("unexpected error: %v", result.err)
	}
	if result.answer.Title != "T" || result.answer.Summary != "S" {
		t.Fatalf("unexpected answer: %#v", result.answer)
	}
	if fake.lastPrompt != "black holes" {
		t.Fatalf("prompt not forwarded, got %q", fake.lastPrompt)
	}
}

func TestAskCmdDeliversError(t *testing.T) {
	fake := &fakeClient{err: errors.New("model overloaded")}

	msg := askCmd(fake, 3, "anything")()
	result, ok := msg.(askResultMsg)
	if !ok {
		t.Fatalf("expected askResultMsg, got %T", msg)
	}
	if result.seq != 3 {
		t.Fatalf("seq = %d, want 3", result.seq)
	}
	if result.err == nil || result.err.Error() != "model overloaded" {
		t.Fatalf("unexpected error: %v", result.err)
	}
}
