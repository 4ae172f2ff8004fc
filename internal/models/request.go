// internal/models/request.go
package models

// CreditApplicationRequest is the flat wire-shaped record the
// loan-origination backend expects. Monetary and count fields are numeric,
// yes/no semantics are single-character "S"/"N" flags, and enumerations are
// small positive integer codes.
//
// Fixed-width column limits (enforced by the mapper):
// linea char(3), detalle char(254), usuario char(10), terminal char(15),
// descripcion_garantia char(254), encargado_evaluar_garantia char(20),
// modalidad_cuota char(20), numero_poliza char(50).
type CreditApplicationRequest struct {
	Nit             int64   `json:"nit"`
	ValorSolicitado float64 `json:"valor_solicitado"`
	Plazo           int     `json:"plazo"`
	Tasa            float64 `json:"tasa"`
	Linea           string  `json:"linea"`
	ValorCobros     float64 `json:"valor_cobros"`
	Pagaduria       int     `json:"pagaduria"`
	Codeudor1       int64   `json:"codeudor1"`
	Codeudor2       int64   `json:"codeudor2"`
	ValorCuota      float64 `json:"valor_cuota"`
	Completo        string  `json:"completo"`
	Aprobado        string  `json:"aprobado"`
	Detalle         string  `json:"detalle"`
	Devengado       float64 `json:"devengado"`
	Deducido        float64 `json:"deducido"`
	Fecha           string  `json:"fecha"`
	Impreso         string  `json:"impreso"`
	FechaPrimerPago string  `json:"fecha_primer_pago"`
	FormaPago       int     `json:"forma_pago"`
	Frecuencia      int     `json:"frecuencia"`
	Usuario         string  `json:"usuario"`
	Terminal        string  `json:"terminal"`

	CodClaseGarantia         int     `json:"cod_clase_garantia"`
	Valor                    float64 `json:"valor"`
	DescripcionGarantia      string  `json:"descripcion_garantia"`
	EncargadoEvaluarGarantia string  `json:"encargado_evaluar_garantia"`

	TipoSistemaAmortizacion int     `json:"tipo_sistema_amortizacion"`
	CodDestinoCredito       int     `json:"cod_destino_credito"`
	ModalidadCuota          string  `json:"modalidad_cuota"`
	NumeroPoliza            string  `json:"numero_poliza"`
	TasaSeguro              float64 `json:"tasa_seguro"`
	CuotaAdministracion     float64 `json:"cuota_administracion"`
}
