package entity

import "time"

// Tipos de acción registrables en el log de actividad.
const (
	ActionTypePRODUCTION      = "PRODUCTION"
	ActionTypeSALE            = "SALE"
	ActionTypeSTOCKADJUSTMENT = "STOCK_ADJUSTMENT"
)

// Actor identifica al usuario autenticado que ejecuta una operación.
// Nil en los punteros del log significa acción del sistema.
type Actor struct {
	ID       string // UUID del usuario
	Username string // nombre para mostrar
}

// ActivityDetails contiene los resúmenes estructurados de una mutación.
// Cada línea de ImpactSummary tiene el formato "nombre: antes -> después".
type ActivityDetails struct {
	TransactionID     string   `json:"transaction_id,omitempty"`
	SaleSummary       []string `json:"sale_summary,omitempty"`
	ProductionSummary []string `json:"production_summary,omitempty"`
	ImpactSummary     []string `json:"impact_summary,omitempty"`
}

// ActivityLog es una entrada append-only del log de auditoría.
// Se escribe exactamente una vez por mutación completada y nunca se
// actualiza ni se borra desde el core.
type ActivityLog struct {
	ID          int64
	CreatedAt   time.Time
	ActionType  string // PRODUCTION | SALE | STOCK_ADJUSTMENT
	Description string // resumen legible por humanos
	UserID      *string
	Username    *string
	Details     ActivityDetails
}
