package dto

// ProductDTO fila del catálogo de productos terminados.
type ProductDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Stock        int64  `json:"stock"`
	CategoryID   *int64 `json:"category_id,omitempty"`
	SortOrder    int    `json:"sort_order"`
	WarningLimit *int64 `json:"warning_limit,omitempty"`
}

// ComponentDTO fila del catálogo de materias primas.
type ComponentDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Stock        int64  `json:"stock"`
	Unit         string `json:"unit"`
	WarningLimit *int64 `json:"warning_limit,omitempty"`
}
