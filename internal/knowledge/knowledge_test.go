package knowledge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_CoversOnboardingIndustries(t *testing.T) {
	c := Default()
	for _, industry := range []string{
		"Agricultura", "Retail", "Manufactura",
		"Servicios", "Tecnología", "Construcción",
	} {
		if c.Lookup(industry) == "" {
			t.Errorf("no snippet for %s", industry)
		}
	}
}

func TestLookup_FallsBackForUnknownOrMissingIndustry(t *testing.T) {
	c := Default()
	fallback := c.Lookup("")

	if fallback == "" {
		t.Fatal("fallback snippet must exist")
	}
	if got := c.Lookup("Industria Inexistente"); got != fallback {
		t.Errorf("unknown industry should get the fallback, got %q", got)
	}
	if got := c.Lookup("Agricultura"); got == fallback {
		t.Error("known industry must not get the fallback")
	}
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogo.yaml")
	content := "Agricultura: Texto propio para agro.\nPesca: La pesca depende de cuotas.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := c.Lookup("Agricultura"); got != "Texto propio para agro." {
		t.Errorf("override not applied: %q", got)
	}
	if got := c.Lookup("Pesca"); got != "La pesca depende de cuotas." {
		t.Errorf("new entry not loaded: %q", got)
	}
	// Entries the file does not name keep their defaults.
	if got := c.Lookup("Retail"); !strings.Contains(got, "rotación de inventario") {
		t.Errorf("default Retail entry lost: %q", got)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "no-existe.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "malo.yaml")
	if err := os.WriteFile(bad, []byte(":\n\t- {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
