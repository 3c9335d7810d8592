// Package prompt renders the single text prompt sent to the model. The
// prompt is the only channel of information to the model, so the builder
// is strict about never omitting the data-context section: either the
// flattened workbook goes in, or an explicit "no file" sentence does.
package prompt

import (
	"fmt"
	"strings"

	"github.com/fco-hortal/MVP-Finanzas/internal/accounts"
	"github.com/fco-hortal/MVP-Finanzas/internal/knowledge"
)

// PersonaAnalistaFinanciero is the generic financial-analyst instruction
// block used by the assistant by default.
const PersonaAnalistaFinanciero = `Eres un asistente financiero experto para pequeñas y medianas empresas.
Proporciona respuestas detalladas y profesionales basadas en los datos disponibles.
Si la pregunta no se puede responder con los datos proporcionados, indica qué
información adicional sería necesaria. Responde en español de manera clara y concisa.`

// PersonaSmartBrevity is the branded communication-style persona. Its
// structural rules are part of the constant and go to the model verbatim.
const PersonaSmartBrevity = `Eres un asesor financiero que comunica en estilo Smart Brevity.
Reglas estructurales obligatorias:
1. Abre con UNA frase que resuma lo más importante (el "axiom").
2. Sigue con "Por qué importa:" y máximo dos frases.
3. Usa viñetas cortas para los detalles; nada de párrafos largos.
4. Cierra con "Siguiente paso:" y una acción concreta.
Responde siempre en español. Sin relleno, sin jerga innecesaria.`

// NoFilePlaceholder is the sentence emitted when no workbook is loaded,
// so the model never assumes data exists when it does not.
const NoFilePlaceholder = "No hay ningún archivo de datos financieros cargado en esta sesión."

const contextLabel = "Datos del archivo cargado:"

// Build renders the prompt: persona, industry knowledge, profile lines,
// data context (or the no-file placeholder), and the question last.
// Pure and deterministic for identical inputs; profile lines follow the
// fixed accounts.ProfileKeys order, never map iteration order.
func Build(persona string, catalog *knowledge.Catalog, profile accounts.Profile, context, question string) string {
	var b strings.Builder

	b.WriteString(persona)
	b.WriteString("\n\n")

	if catalog != nil {
		if text := catalog.Lookup(profile["industria"]); text != "" {
			b.WriteString("Contexto de la industria:\n")
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	}

	if len(profile) > 0 {
		b.WriteString("Perfil del negocio:\n")
		for _, key := range accounts.ProfileKeys {
			if value, ok := profile[key]; ok {
				fmt.Fprintf(&b, "- %s: %s\n", key, value)
			}
		}
		b.WriteString("\n")
	}

	if context != "" {
		b.WriteString(contextLabel)
		b.WriteString("\n")
		b.WriteString(context)
		if !strings.HasSuffix(context, "\n") {
			b.WriteString("\n")
		}
	} else {
		b.WriteString(NoFilePlaceholder)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("Pregunta del usuario: ")
	b.WriteString(question)

	return b.String()
}
