// Package knowledge holds the industry-specific context snippets that
// get interpolated into prompts. The catalog is injectable so it can be
// extended or externalized without touching the prompt builder.
package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FallbackKey is the catalog entry used when the user's industry is
// missing or unrecognized.
const FallbackKey = "general"

// Catalog maps an industry name to its knowledge snippet.
type Catalog struct {
	entries map[string]string
}

// New builds a catalog from entries. The fallback entry should be
// present under FallbackKey; Lookup returns "" if it is not.
func New(entries map[string]string) *Catalog {
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &Catalog{entries: copied}
}

// Lookup returns the snippet for industry, falling back to the
// FallbackKey entry when the industry is empty or unknown.
func (c *Catalog) Lookup(industry string) string {
	if text, ok := c.entries[industry]; ok && industry != "" {
		return text
	}
	return c.entries[FallbackKey]
}

// LoadFile reads a catalog from a YAML file mapping industry names to
// snippet text. Entries merge over the built-in defaults, so a partial
// file only overrides what it names.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leyendo el catálogo de conocimiento: %w", err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("catálogo de conocimiento inválido: %w", err)
	}

	c := Default()
	for k, v := range entries {
		c.entries[k] = v
	}
	return c, nil
}

// Default returns the built-in catalog covering the onboarding industry
// options plus the fallback entry.
func Default() *Catalog {
	return New(map[string]string{
		"Agricultura": "La agricultura es estacional: los ingresos se concentran " +
			"en las cosechas mientras los costos corren todo el año. Vigila el " +
			"capital de trabajo entre temporadas, el costo de insumos (fertilizantes, " +
			"combustible) y la exposición al clima y al precio de los commodities.",
		"Retail": "En retail el margen unitario es bajo y el volumen manda. Los " +
			"indicadores críticos son la rotación de inventario, el margen bruto por " +
			"categoría y el quiebre de stock. El flujo de caja sufre cuando el " +
			"inventario crece más rápido que las ventas.",
		"Manufactura": "En manufactura los costos fijos pesan: la utilización de la " +
			"capacidad instalada define la rentabilidad. Separa costos directos de " +
			"indirectos, controla mermas y revisa el ciclo de conversión de caja " +
			"(inventario + cuentas por cobrar - cuentas por pagar).",
		"Servicios": "En servicios el costo principal son las personas. Los márgenes " +
			"dependen de la tarifa efectiva por hora y de la utilización del equipo. " +
			"Cuida la concentración de clientes y los plazos de pago, que suelen " +
			"estirar el flujo de caja.",
		"Tecnología": "En tecnología importan el ingreso recurrente (MRR), el costo " +
			"de adquisición de clientes versus su valor de vida (CAC/LTV) y la tasa " +
			"de cancelación. El burn rate y la pista de caja (runway) son vitales " +
			"mientras el negocio no sea rentable.",
		"Construcción": "La construcción vive de proyectos: cada obra tiene su propio " +
			"presupuesto, avance y estado de pago. Los riesgos típicos son los " +
			"sobrecostos, los anticipos mal calzados y los plazos de pago de " +
			"mandantes que superan los compromisos con proveedores.",
		FallbackKey: "Aplica principios financieros generales: separa ingresos y " +
			"gastos operacionales, vigila el flujo de caja mensual, y compara " +
			"márgenes contra períodos anteriores antes de sacar conclusiones.",
	})
}
