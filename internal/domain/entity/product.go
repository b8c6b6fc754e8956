package entity

// Product representa un producto terminado vendible.
// Stock siempre es un entero >= 0 y solo muta vía el motor de ledger.
type Product struct {
	ID           int64
	Name         string
	SKU          string // código estable y único del producto
	Stock        int64
	CategoryID   *int64 // agrupación opcional
	SortOrder    int    // orden de despliegue en las tablas de la UI
	WarningLimit *int64 // umbral de stock crítico; nil = umbral por defecto
}
