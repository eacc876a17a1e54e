package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/scheduler"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
)

const (
	CronJobTypeAutoContact = "auto-contact"
	CronJobTypeAll         = "all"
)

// CronJobServices contém os agendadores que podem ser disparados manualmente
type CronJobServices struct {
	AutoContactSyncService *scheduler.AutoContactSyncService
}

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeAutoContact, CronJobTypeAll:
			if services.AutoContactSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Auto contact scheduler is not available", nil)
				return
			}
			if err := services.AutoContactSyncService.TriggerManualSync(); err != nil {
				if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
					apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Auto contact is already running", nil)
					return
				}
				writeServiceError(w, err, "Error starting cron job")
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: auto-contact, all", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.AutoContactSyncService != nil {
			status[CronJobTypeAutoContact] = services.AutoContactSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
