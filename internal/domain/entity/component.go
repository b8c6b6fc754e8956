package entity

// Component representa una materia prima o insumo de empaque.
// Stock siempre es un entero >= 0; la única vía de mutación es el motor
// de ledger o el ajuste manual (ambos pasan por el mismo contrato de repositorio).
type Component struct {
	ID           int64
	Name         string // clave humana, única
	Stock        int64
	Unit         string // unidad para mostrar: pcs, roll, m, etc.
	WarningLimit *int64 // umbral de stock crítico; nil = umbral por defecto
}
