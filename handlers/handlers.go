package handlers

import (
	"context"
	"fmt"
	"net/http"

	"ytbrief/config"
	"ytbrief/errors"
	"ytbrief/middleware"
	"ytbrief/models"
	"ytbrief/services/video"
	"ytbrief/utils"
)

type Handler struct {
	service video.Service
	config  *config.Config
}

func New(service video.Service, cfg *config.Config) *Handler {
	return &Handler{service: service, config: cfg}
}

// Summarize runs the full pipeline for one pasted URL. Form fields:
// url, language, length, api_key (optional, overrides the configured
// credential).
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	if r.Method != http.MethodPost {
		utils.RespondWithJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	rawURL := r.FormValue("url")
	opts := models.SummaryOptions{
		Language: models.ParseLanguage(r.FormValue("language")),
		Length:   models.ParseLength(r.FormValue("length")),
	}
	apiKey := h.resolveAPIKey(r)

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	brief, err := h.service.Brief(ctx, rawURL, opts, apiKey)
	if err != nil {
		// A fetched transcript survives a failed summarization so the
		// user can still read and download it.
		if brief != nil && brief.Transcript != nil {
			logger.WithError(err).Warn("Returning partial result")
			resp := models.NewBriefResponse(brief)
			resp.Error = userMessage(err)
			resp.ErrorKind = string(errors.KindOf(err))
			utils.RespondWithJSON(w, http.StatusOK, resp)
			return
		}
		utils.RespondWithError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.NewBriefResponse(brief))
}

// Transcript fetches and returns the transcript only.
func (h *Handler) Transcript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondWithJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	fetched, err := h.service.Transcript(ctx, r.FormValue("url"))
	if err != nil {
		utils.RespondWithError(w, err)
		return
	}

	brief := &models.Brief{VideoID: fetched.VideoID, Transcript: fetched}
	utils.RespondWithJSON(w, http.StatusOK, models.NewBriefResponse(brief))
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.config.Version,
	})
}

func (h *Handler) resolveAPIKey(r *http.Request) string {
	if key := r.FormValue("api_key"); key != "" {
		return key
	}
	return h.config.Summary.APIKey
}

// userMessage extracts the user-facing message from a pipeline error.
func userMessage(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr.Message
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}
