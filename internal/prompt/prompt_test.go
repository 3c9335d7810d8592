package prompt

import (
	"strings"
	"testing"

	"github.com/fco-hortal/MVP-Finanzas/internal/accounts"
	"github.com/fco-hortal/MVP-Finanzas/internal/knowledge"
)

func TestBuild_AgriculturaExample(t *testing.T) {
	profile := accounts.Profile{"industria": "Agricultura"}
	question := "¿Cómo va mi margen?"

	out := Build(PersonaAnalistaFinanciero, knowledge.Default(), profile, "", question)

	if !strings.Contains(out, knowledge.Default().Lookup("Agricultura")) {
		t.Error("missing Agricultura knowledge snippet")
	}
	if !strings.Contains(out, "- industria: Agricultura") {
		t.Error("missing profile line")
	}
	if !strings.Contains(out, NoFilePlaceholder) {
		t.Error("missing no-file placeholder")
	}
	if !strings.HasSuffix(out, question) {
		t.Error("question must come last")
	}
}

func TestBuild_AlwaysHasContextOrPlaceholder(t *testing.T) {
	withContext := Build(PersonaAnalistaFinanciero, nil, nil, "Hoja: Balance\n", "¿y?")
	if !strings.Contains(withContext, "Hoja: Balance") {
		t.Error("context not included")
	}
	if strings.Contains(withContext, NoFilePlaceholder) {
		t.Error("placeholder must not appear when context exists")
	}

	without := Build(PersonaAnalistaFinanciero, nil, nil, "", "¿y?")
	if !strings.Contains(without, NoFilePlaceholder) {
		t.Error("placeholder must appear when context is empty")
	}
}

func TestBuild_ProfileLinesInCanonicalOrder(t *testing.T) {
	profile := accounts.Profile{
		"dolor_principal": "Deudas",
		"industria":       "Retail",
		"rol":             "Dueño/a",
	}

	out := Build(PersonaSmartBrevity, nil, profile, "", "pregunta")

	iIndustria := strings.Index(out, "- industria:")
	iRol := strings.Index(out, "- rol:")
	iDolor := strings.Index(out, "- dolor_principal:")
	if iIndustria < 0 || iRol < 0 || iDolor < 0 {
		t.Fatalf("missing profile lines:\n%s", out)
	}
	if !(iIndustria < iRol && iRol < iDolor) {
		t.Error("profile lines must follow the fixed key order")
	}
}

func TestBuild_EmptyProfileOmitsProfileSection(t *testing.T) {
	out := Build(PersonaAnalistaFinanciero, knowledge.Default(), nil, "", "pregunta")
	if strings.Contains(out, "Perfil del negocio:") {
		t.Error("empty profile must not render a profile section")
	}
	// Unknown industry resolves to the fallback snippet.
	if !strings.Contains(out, knowledge.Default().Lookup("")) {
		t.Error("fallback knowledge missing for empty profile")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	profile := accounts.Profile{"industria": "Servicios", "rol": "Contador/a"}
	a := Build(PersonaSmartBrevity, knowledge.Default(), profile, "ctx", "q")
	b := Build(PersonaSmartBrevity, knowledge.Default(), profile, "ctx", "q")
	if a != b {
		t.Error("prompt must be deterministic for identical inputs")
	}
}

func TestBuild_PersonaVerbatim(t *testing.T) {
	out := Build(PersonaSmartBrevity, nil, nil, "", "q")
	if !strings.HasPrefix(out, PersonaSmartBrevity) {
		t.Error("persona block must open the prompt verbatim")
	}
}
