package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/fco-hortal/MVP-Finanzas/internal/accounts"
	"github.com/fco-hortal/MVP-Finanzas/internal/knowledge"
	"github.com/fco-hortal/MVP-Finanzas/internal/prompt"
	"github.com/fco-hortal/MVP-Finanzas/internal/workbook"
)

// Model is the outbound LLM boundary. One call per question, request is
// the built prompt, response is free text.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Assistant is the session-scoped context object: it owns the profile,
// the loaded workbook context, the persona and the conversation log, so
// nothing lives in ambient globals. One Assistant per interactive
// session.
type Assistant struct {
	model   Model
	persona string
	catalog *knowledge.Catalog
	timeout time.Duration

	profile accounts.Profile
	context string // flattened workbook text, "" when no file loaded
	session *Session
}

// NewAssistant wires an assistant with the given model, persona and
// knowledge catalog. timeout bounds each model call; zero means 60s.
func NewAssistant(model Model, persona string, catalog *knowledge.Catalog, timeout time.Duration) *Assistant {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Assistant{
		model:   model,
		persona: persona,
		catalog: catalog,
		timeout: timeout,
		profile: accounts.Profile{},
		session: NewSession(),
	}
}

// SetProfile replaces the business profile used in prompts.
func (a *Assistant) SetProfile(p accounts.Profile) {
	a.profile = p.Clone()
}

// Profile returns a copy of the current profile.
func (a *Assistant) Profile() accounts.Profile {
	return a.profile.Clone()
}

// LoadWorkbook flattens wb and keeps the text as the data context for
// every subsequent question. The context is regenerated on every load,
// never cached across files.
func (a *Assistant) LoadWorkbook(wb *workbook.Workbook, mode workbook.Mode) {
	a.context = workbook.Flatten(wb, mode)
}

// HasContext reports whether a workbook is loaded.
func (a *Assistant) HasContext() bool { return a.context != "" }

// Session exposes the conversation log for rendering.
func (a *Assistant) Session() *Session { return a.session }

// ClearHistory empties the conversation log.
func (a *Assistant) ClearHistory() { a.session.Clear() }

// Ask builds the prompt for question, calls the model under the
// configured timeout, and appends both turns to the session. A failed or
// timed-out call never crashes the session: the error text becomes the
// assistant's turn, and the error is also returned so the caller can log
// it. Retrying is always a fresh user action; Ask never retries.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	p := prompt.Build(a.persona, a.catalog, a.profile, a.context, question)

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	a.session.Append(RoleUser, question)

	reply, err := a.model.Generate(callCtx, p)
	if err != nil {
		reply = fmt.Sprintf("Error generando respuesta: %v", err)
		a.session.Append(RoleAssistant, reply)
		return reply, err
	}

	a.session.Append(RoleAssistant, reply)
	return reply, nil
}
