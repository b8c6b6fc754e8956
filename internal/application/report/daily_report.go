package report

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dendyelo/nooda-inventory/internal/application/dto"
	"github.com/dendyelo/nooda-inventory/internal/domain/entity"
	"github.com/dendyelo/nooda-inventory/internal/domain/repository"
)

// DefaultWarningLimit umbral de stock crítico cuando el item no define uno.
const DefaultWarningLimit = 20

// UseCase compone el reporte diario: ventas y producciones del día según el
// log de actividad, más los items con stock crítico. Es un consumidor de solo
// lectura; nunca muta stock ni log.
type UseCase struct {
	logs       repository.ActivityLogRepository
	components repository.ComponentRepository
	products   repository.ProductRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	logs repository.ActivityLogRepository,
	components repository.ComponentRepository,
	products repository.ProductRepository,
) *UseCase {
	return &UseCase{logs: logs, components: components, products: products}
}

// DailyReport arma el reporte del día que contiene a ref en la zona loc.
func (uc *UseCase) DailyReport(ctx context.Context, ref time.Time, loc *time.Location) (*dto.DailyReportDTO, error) {
	day := ref.In(loc)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24*time.Hour - time.Nanosecond)

	saleLogs, err := uc.logs.ListByTypeBetween(ctx, entity.ActionTypeSALE, start, end)
	if err != nil {
		return nil, err
	}
	soldItems := make([]string, 0)
	var totalSold int64
	for _, l := range saleLogs {
		for _, line := range l.Details.SaleSummary {
			soldItems = append(soldItems, line)
			totalSold += quantityPrefix(line)
		}
	}

	prodLogs, err := uc.logs.ListByTypeBetween(ctx, entity.ActionTypePRODUCTION, start, end)
	if err != nil {
		return nil, err
	}
	producedItems := make([]string, 0)
	var totalProduced int64
	for _, l := range prodLogs {
		for _, line := range l.Details.ProductionSummary {
			producedItems = append(producedItems, line)
			totalProduced += quantityPrefix(line)
		}
	}

	critical, err := uc.criticalStock(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DailyReportDTO{
		Date:               start.Format("2006-01-02"),
		TotalItemsSold:     totalSold,
		SoldItems:          soldItems,
		TotalItemsProduced: totalProduced,
		ProducedItems:      producedItems,
		CriticalStock:      critical,
	}, nil
}

// criticalStock junta componentes y productos en o bajo su umbral de alerta.
func (uc *UseCase) criticalStock(ctx context.Context) ([]dto.CriticalStockItemDTO, error) {
	items := make([]dto.CriticalStockItemDTO, 0)

	components, err := uc.components.ListCritical(ctx, DefaultWarningLimit)
	if err != nil {
		return nil, err
	}
	for _, c := range components {
		items = append(items, dto.CriticalStockItemDTO{
			Name:         c.Name,
			Stock:        c.Stock,
			WarningLimit: warningLimit(c.WarningLimit),
		})
	}

	products, err := uc.products.ListCritical(ctx, DefaultWarningLimit)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		items = append(items, dto.CriticalStockItemDTO{
			Name:         p.Name,
			Stock:        p.Stock,
			WarningLimit: warningLimit(p.WarningLimit),
		})
	}
	return items, nil
}

func warningLimit(limit *int64) int64 {
	if limit != nil {
		return *limit
	}
	return DefaultWarningLimit
}

// quantityPrefix extrae la cantidad de una línea de resumen "5x Nombre".
// Líneas sin el prefijo esperado cuentan como 1 (entradas de versiones viejas).
func quantityPrefix(line string) int64 {
	idx := strings.Index(line, "x")
	if idx <= 0 {
		return 1
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line[:idx]), 10, 64)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}
