package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fco-hortal/MVP-Finanzas/internal/chat"
	"github.com/fco-hortal/MVP-Finanzas/internal/prompt"
)

// replyModel answers with a fixed reply, or the context error when the
// caller's context is already done.
type replyModel struct {
	reply string
	err   error
}

func (m *replyModel) Generate(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func TestOneShot_PrintsReplyOnSuccess(t *testing.T) {
	logger = zap.NewNop()
	a := chat.NewAssistant(&replyModel{reply: "liquidez sana"}, prompt.PersonaAnalistaFinanciero, nil, time.Second)

	var out bytes.Buffer
	if err := oneShot(context.Background(), a, "¿cómo está la liquidez?", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "liquidez sana") {
		t.Errorf("reply not written: %q", out.String())
	}
}

func TestOneShot_ReturnsModelError(t *testing.T) {
	logger = zap.NewNop()
	boom := errors.New("la API no responde")
	a := chat.NewAssistant(&replyModel{err: boom}, prompt.PersonaAnalistaFinanciero, nil, time.Second)

	var out bytes.Buffer
	err := oneShot(context.Background(), a, "¿hola?", &out)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the model error to propagate, got %v", err)
	}
	// Scripts rely on the non-zero exit; the error text must not pose
	// as a normal reply on stdout.
	if out.Len() != 0 {
		t.Errorf("failed call wrote to stdout: %q", out.String())
	}
}

func TestAnswer_RecoversAfterCanceledQuestion(t *testing.T) {
	logger = zap.NewNop()
	a := chat.NewAssistant(&replyModel{reply: "margen estable"}, prompt.PersonaAnalistaFinanciero, nil, time.Second)

	// An interrupted question cancels only its own call.
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	answer(canceled, a, "¿primera?")

	// The next question arrives with the live root context and succeeds.
	answer(context.Background(), a, "¿segunda?")

	turns := a.Session().History()
	if len(turns) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(turns))
	}
	if !strings.Contains(turns[1].Content, "Error generando respuesta") {
		t.Errorf("canceled question should degrade to an error turn, got %q", turns[1].Content)
	}
	if turns[3].Content != "margen estable" {
		t.Errorf("retry after cancellation failed: %q", turns[3].Content)
	}
}
