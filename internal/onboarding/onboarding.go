// Package onboarding walks a user through the fixed profile
// questionnaire, one question per step, writing answers into an
// accounts.Profile.
package onboarding

import (
	"fmt"

	"github.com/fco-hortal/MVP-Finanzas/internal/accounts"
)

// Question is one onboarding step: a profile key, the prompt shown to
// the user, and the closed list of selectable answers.
type Question struct {
	Key     string
	Prompt  string
	Options []string
}

// Questions is the fixed ordered questionnaire. Its order and keys match
// accounts.ProfileKeys.
var Questions = []Question{
	{
		Key:    "industria",
		Prompt: "¿En qué industria opera tu negocio?",
		Options: []string{
			"Agricultura", "Retail", "Manufactura",
			"Servicios", "Tecnología", "Construcción",
		},
	},
	{
		Key:    "estado_industria",
		Prompt: "¿Cómo describirías el momento actual de tu industria?",
		Options: []string{
			"En crecimiento", "Estable", "En contracción", "No lo sé",
		},
	},
	{
		Key:    "tipo_negocio",
		Prompt: "¿Qué tipo de negocio tienes?",
		Options: []string{
			"Persona natural con giro", "Pyme",
			"Empresa mediana", "Empresa grande",
		},
	},
	{
		Key:    "rol",
		Prompt: "¿Cuál es tu rol en el negocio?",
		Options: []string{
			"Dueño/a", "Administrador/a", "Contador/a", "Asesor/a",
		},
	},
	{
		Key:    "objetivo_principal",
		Prompt: "¿Cuál es tu objetivo principal hoy?",
		Options: []string{
			"Aumentar ventas", "Reducir costos",
			"Ordenar las finanzas", "Conseguir financiamiento",
		},
	},
	{
		Key:    "dolor_principal",
		Prompt: "¿Cuál es tu mayor dolor financiero?",
		Options: []string{
			"Flujo de caja", "Margen bajo", "Deudas",
			"Falta de visibilidad de los números",
		},
	},
}

// ErrCompleted is returned by Answer once the questionnaire is done.
var ErrCompleted = fmt.Errorf("el cuestionario ya está completo")

// Machine is the questionnaire state: current step, completion flag, and
// the profile being filled in. Re-running onboarding over an existing
// profile overwrites keys one at a time as steps advance; keys not yet
// reached keep their prior value.
type Machine struct {
	step    int
	done    bool
	profile accounts.Profile
}

// New starts at step 0 over a copy of existing (may be nil or empty).
func New(existing accounts.Profile) *Machine {
	return &Machine{profile: existing.Clone()}
}

// Step returns the zero-based index of the current question.
func (m *Machine) Step() int { return m.step }

// Done reports whether every question has been answered.
func (m *Machine) Done() bool { return m.done }

// Current returns the question for the current step. Only valid while
// Done() is false.
func (m *Machine) Current() Question {
	return Questions[m.step]
}

// Profile returns a copy of the answers collected so far.
func (m *Machine) Profile() accounts.Profile {
	return m.profile.Clone()
}

// Answer records the selection for the current question and advances.
// The selection must be one of the question's options. Answering after
// completion returns ErrCompleted; it never indexes past the last step.
func (m *Machine) Answer(selection string) error {
	if m.done {
		return ErrCompleted
	}

	q := Questions[m.step]
	valid := false
	for _, opt := range q.Options {
		if opt == selection {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%q no es una opción válida para %s", selection, q.Key)
	}

	m.profile[q.Key] = selection
	if m.step+1 < len(Questions) {
		m.step++
	} else {
		m.done = true
	}
	return nil
}
