// internal/validation/schema.go
package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "aqueron-credit/internal/common/errors"
	"aqueron-credit/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// wireSchema is the JSON Schema of the backend wire contract. It guards the
// shape the backend's fixed-width columns expect: numeric money fields,
// integer enum codes, and single-character S/N state flags.
const wireSchema = `{
  "type": "object",
  "required": [
    "nit", "valor_solicitado", "plazo", "tasa", "linea", "valor_cobros",
    "pagaduria", "codeudor1", "codeudor2", "valor_cuota", "completo",
    "aprobado", "detalle", "devengado", "deducido", "fecha", "impreso",
    "fecha_primer_pago", "forma_pago", "frecuencia", "usuario", "terminal",
    "cod_clase_garantia", "valor", "descripcion_garantia",
    "encargado_evaluar_garantia", "tipo_sistema_amortizacion",
    "cod_destino_credito", "modalidad_cuota", "numero_poliza",
    "tasa_seguro", "cuota_administracion"
  ],
  "properties": {
    "nit":                        {"type": "integer", "minimum": 0},
    "valor_solicitado":           {"type": "number"},
    "plazo":                      {"type": "integer"},
    "tasa":                       {"type": "number"},
    "linea":                      {"type": "string", "maxLength": 3},
    "valor_cobros":               {"type": "number"},
    "pagaduria":                  {"type": "integer"},
    "codeudor1":                  {"type": "integer"},
    "codeudor2":                  {"type": "integer"},
    "valor_cuota":                {"type": "number"},
    "completo":                   {"type": "string", "enum": ["S", "N"]},
    "aprobado":                   {"type": "string", "enum": ["S", "N"]},
    "detalle":                    {"type": "string", "maxLength": 254},
    "devengado":                  {"type": "number"},
    "deducido":                   {"type": "number"},
    "fecha":                      {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}T\\d{2}:\\d{2}:\\d{2}$"},
    "impreso":                    {"type": "string", "enum": ["S", "N"]},
    "fecha_primer_pago":          {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}T\\d{2}:\\d{2}:\\d{2}$"},
    "forma_pago":                 {"type": "integer", "minimum": 1, "maximum": 3},
    "frecuencia":                 {"type": "integer", "minimum": 1, "maximum": 3},
    "usuario":                    {"type": "string", "maxLength": 10},
    "terminal":                   {"type": "string", "maxLength": 15},
    "cod_clase_garantia":         {"type": "integer", "minimum": 1, "maximum": 4},
    "valor":                      {"type": "number"},
    "descripcion_garantia":       {"type": "string", "maxLength": 254},
    "encargado_evaluar_garantia": {"type": "string", "maxLength": 20},
    "tipo_sistema_amortizacion":  {"type": "integer", "minimum": 1, "maximum": 3},
    "cod_destino_credito":        {"type": "integer"},
    "modalidad_cuota":            {"type": "string", "maxLength": 20},
    "numero_poliza":              {"type": "string", "maxLength": 50},
    "tasa_seguro":                {"type": "number"},
    "cuota_administracion":       {"type": "number"}
  }
}`

var wireSchemaLoader = gojsonschema.NewStringLoader(wireSchema)

// CheckWireSchema validates the marshalled payload against the wire
// contract. It complements Validate (business rules); a schema violation
// here means the mapper produced something the backend's columns cannot
// hold.
func CheckWireSchema(req *models.CreditApplicationRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	result, err := gojsonschema.Validate(wireSchemaLoader, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		descriptions := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			descriptions = append(descriptions, desc.String())
		}
		return apperrors.NewSchemaViolationError(strings.Join(descriptions, "; "))
	}

	return nil
}
