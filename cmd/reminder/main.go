package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dendyelo/nooda-inventory/internal/application/dto"
	"github.com/dendyelo/nooda-inventory/internal/application/report"
	"github.com/dendyelo/nooda-inventory/internal/infrastructure/mailer"
	"github.com/dendyelo/nooda-inventory/internal/infrastructure/postgres"
	"github.com/dendyelo/nooda-inventory/pkg/config"
	"github.com/dendyelo/nooda-inventory/pkg/logger"
)

// Recordatorio diario: arma el reporte del día y lo envía por correo.
// Pensado para correrse una vez al día vía cron o scheduler externo.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name + "-reminder",
	})

	if cfg.Report.Recipient == "" {
		log.Fatal().Msg("REPORT_RECIPIENT es requerido")
	}

	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Report.Timezone).Msg("zona horaria inválida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	componentRepo := postgres.NewComponentRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	reportUC := report.NewUseCase(activityRepo, componentRepo, productRepo)

	result, err := reportUC.DailyReport(ctx, time.Now(), loc)
	if err != nil {
		log.Fatal().Err(err).Msg("armar reporte diario")
	}

	subject := fmt.Sprintf("Resumen diario de inventario - %s", result.Date)
	body := composeDigest(result, cfg.Report.AppURL)

	if err := mailer.New(cfg.SMTP).Send(cfg.Report.Recipient, subject, body); err != nil {
		log.Fatal().Err(err).Str("recipient", cfg.Report.Recipient).Msg("enviar recordatorio")
	}

	log.Info().
		Str("date", result.Date).
		Int64("items_sold", result.TotalItemsSold).
		Int64("items_produced", result.TotalItemsProduced).
		Int("critical_items", len(result.CriticalStock)).
		Msg("recordatorio diario enviado")
}

// composeDigest arma el cuerpo de texto plano del correo.
func composeDigest(r *dto.DailyReportDTO, appURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Resumen del día %s\n\n", r.Date)

	fmt.Fprintf(&b, "Ventas: %d items\n", r.TotalItemsSold)
	for _, line := range r.SoldItems {
		fmt.Fprintf(&b, "  - %s\n", line)
	}
	if len(r.SoldItems) == 0 {
		b.WriteString("  (sin ventas registradas)\n")
	}

	fmt.Fprintf(&b, "\nProducción: %d items\n", r.TotalItemsProduced)
	for _, line := range r.ProducedItems {
		fmt.Fprintf(&b, "  - %s\n", line)
	}
	if len(r.ProducedItems) == 0 {
		b.WriteString("  (sin producciones registradas)\n")
	}

	b.WriteString("\nStock crítico:\n")
	for _, item := range r.CriticalStock {
		fmt.Fprintf(&b, "  - %s: %d (umbral %d)\n", item.Name, item.Stock, item.WarningLimit)
	}
	if len(r.CriticalStock) == 0 {
		b.WriteString("  (sin items bajo el umbral)\n")
	}

	if appURL != "" {
		fmt.Fprintf(&b, "\nVer detalle: %s\n", appURL)
	}

	return b.String()
}
