package dto

// ProduceRequest cuerpo de POST /api/ledger/production (y su preview).
type ProduceRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// SaleItemRequest una línea del carrito de venta.
type SaleItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// SellRequest cuerpo de POST /api/ledger/sales (y su preview).
type SellRequest struct {
	Items []SaleItemRequest `json:"items"`
}

// AdjustStockRequest cuerpo de POST /api/ledger/adjustments.
// Direction: "add" o "subtract"; Amount siempre positivo.
type AdjustStockRequest struct {
	ComponentID int64  `json:"component_id"`
	Direction   string `json:"direction"`
	Amount      int64  `json:"amount"`
}

// ProductionResponse resultado de una producción aplicada o previsualizada.
type ProductionResponse struct {
	Message           string   `json:"message,omitempty"`
	ProductionSummary []string `json:"production_summary"`
	ImpactSummary     []string `json:"impact_summary"`
}

// SaleResponse resultado de una venta aplicada o previsualizada.
type SaleResponse struct {
	Message       string   `json:"message,omitempty"`
	SaleSummary   []string `json:"sale_summary"`
	ImpactSummary []string `json:"impact_summary"`
}

// AdjustStockResponse resultado de un ajuste manual.
type AdjustStockResponse struct {
	Message  string `json:"message"`
	NewStock int64  `json:"new_stock"`
}
