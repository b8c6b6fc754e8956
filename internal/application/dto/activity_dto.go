package dto

import "time"

// ActivityLogDTO entrada del log de actividad para la UI y el notificador.
type ActivityLogDTO struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	ActionType  string    `json:"action_type"`
	Description string    `json:"description"`
	Username    *string   `json:"username,omitempty"`

	SaleSummary       []string `json:"sale_summary,omitempty"`
	ProductionSummary []string `json:"production_summary,omitempty"`
	ImpactSummary     []string `json:"impact_summary,omitempty"`
}
