package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/svfproducts/sales-insights-bot/internal/scheduler"
	"github.com/svfproducts/sales-insights-bot/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDailyReport = "daily-report"
)

// CronJobServices contém os agendadores que podem ser disparados manualmente
type CronJobServices struct {
	DailyReportService *scheduler.DailyReportService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDailyReport:
			if services.DailyReportService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do relatório diário não disponível", nil)
				return
			}
			services.DailyReportService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: daily-report", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.DailyReportService != nil {
			status["daily_report"] = services.DailyReportService.GetStatus()
		}

		json.NewEncoder(w).Encode(status)
	}
}
