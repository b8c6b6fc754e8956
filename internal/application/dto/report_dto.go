package dto

// CriticalStockItemDTO item cuyo stock llegó a su umbral de alerta.
type CriticalStockItemDTO struct {
	Name         string `json:"name"`
	Stock        int64  `json:"stock"`
	WarningLimit int64  `json:"warning_limit"`
}

// DailyReportDTO resumen de actividad de un día: ventas, producción y
// stock crítico. Lo consumen GET /api/reports/daily y el mailer de recordatorio.
type DailyReportDTO struct {
	Date               string                 `json:"date"` // YYYY-MM-DD en la zona configurada
	TotalItemsSold     int64                  `json:"total_items_sold"`
	SoldItems          []string               `json:"sold_items"`
	TotalItemsProduced int64                  `json:"total_items_produced"`
	ProducedItems      []string               `json:"produced_items"`
	CriticalStock      []CriticalStockItemDTO `json:"critical_stock"`
}
