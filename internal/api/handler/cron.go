package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/buyclientuz-pixel/targetbot-sub002/internal/scheduler"
	"github.com/buyclientuz-pixel/targetbot-sub002/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReports   = "reports"
	CronJobTypeRetention = "retention"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ReportDispatchService *scheduler.ReportDispatchService
	RetentionService      *scheduler.RetentionService
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
		case CronJobTypeReports:
			if services.ReportDispatchService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de despacho de relatórios não disponível", nil)
				return
			}
			services.ReportDispatchService.TriggerManualSync()

		case CronJobTypeRetention:
			if services.RetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção não disponível", nil)
				return
			}
			services.RetentionService.TriggerManualSweep()

		case CronJobTypeAll:
			if services.ReportDispatchService != nil {
				services.ReportDispatchService.TriggerManualSync()
			}
			if services.RetentionService != nil {
				services.RetentionService.TriggerManualSweep()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: reports, retention, all", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.ReportDispatchService != nil {
			status["reports"] = services.ReportDispatchService.GetStatus()
		}
		if services.RetentionService != nil {
			status["retention"] = services.RetentionService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
