package http

import (
	"net/http"

	"github.com/MKhiriev/fretboard-keeper/internal/app"
	"github.com/MKhiriev/fretboard-keeper/internal/utils"
	"github.com/MKhiriev/fretboard-keeper/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  app.StatusRunning,
		Message: app.MsgAPIRunning,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  app.StatusHealthy,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
