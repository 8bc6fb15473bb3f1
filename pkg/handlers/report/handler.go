package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/adapters"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/export/markdown"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/api"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/domain"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/metrics"
	reportsvc "github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/report"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/session"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/supplement"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const maxAttachmentSize = 10 << 20 // 10 MiB

type Handler struct {
	sessions *session.Store
	composer *reportsvc.Composer
	renderer *markdown.Renderer
}

func NewHandler(sessions *session.Store, composer *reportsvc.Composer) *Handler {
	return &Handler{
		sessions: sessions,
		composer: composer,
		renderer: markdown.NewRenderer(),
	}
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	id := h.sessions.Create()
	inputs, err := h.sessions.Get(id)
	if err != nil {
		respondError(w, logger, http.StatusInternalServerError, err)
		return
	}

	respondJSON(w, logger, http.StatusCreated, api.Session{
		ID:     id,
		Inputs: adapters.MapReportInputsDomainToApi(inputs),
	})
}

func (h *Handler) GetInputs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	inputs, err := h.sessions.Get(chi.URLParam(r, "session"))
	if err != nil {
		respondError(w, logger, statusFor(err), err)
		return
	}

	respondJSON(w, logger, http.StatusOK, adapters.MapReportInputsDomainToApi(inputs))
}

func (h *Handler) SaveInputs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var payload api.ReportInputs
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, logger, http.StatusBadRequest, fmt.Errorf("invalid inputs payload: %w", err))
		return
	}

	inputs := adapters.MapReportInputsApiToDomain(payload)
	if err := h.sessions.Save(chi.URLParam(r, "session"), inputs); err != nil {
		respondError(w, logger, statusFor(err), err)
		return
	}

	respondJSON(w, logger, http.StatusOK, adapters.MapReportInputsDomainToApi(inputs))
}

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	inputs, err := h.sessions.Get(chi.URLParam(r, "session"))
	if err != nil {
		respondError(w, logger, statusFor(err), err)
		return
	}

	respondJSON(w, logger, http.StatusOK, adapters.MapDerivedMetricsDomainToApi(metrics.Compute(inputs)))
}

func (h *Handler) GetScenarios(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	inputs, err := h.sessions.Get(chi.URLParam(r, "session"))
	if err != nil {
		respondError(w, logger, statusFor(err), err)
		return
	}

	respondJSON(w, logger, http.StatusOK, adapters.MapScenarioRowsDomainToApi(metrics.BuildScenarios(inputs)))
}

func (h *Handler) GetCharts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	inputs, err := h.sessions.Get(chi.URLParam(r, "session"))
	if err != nil {
		respondError(w, logger, statusFor(err), err)
		return
	}

	respondJSON(w, logger, http.StatusOK, adapters.MapChartsDomainToApi(inputs, metrics.BuildScenarios(inputs)))
}

// UploadAttachment accepts one multipart file for a category. A file that
// fails to parse is stored as a failure result and reported back; it is
// not an HTTP error, and generation keeps working.
func (h *Handler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	category, title, ok := attachmentCategory(chi.URLParam(r, "category"))
	if !ok {
		respondError(w, logger, http.StatusNotFound,
			fmt.Errorf("unknown attachment category %q", chi.URLParam(r, "category")))
		return
	}

	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		respondError(w, logger, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, logger, http.StatusBadRequest, errors.New("file is required"))
		return
	}
	defer file.Close()

	result := supplement.Load(file, header.Filename, title)
	if err := h.sessions.Attach(chi.URLParam(r, "session"), category, result); err != nil {
		respondError(w, logger, statusFor(err), err)
		return
	}

	respondJSON(w, logger, http.StatusOK, adapters.MapLoadResultToAttachmentStatus(category, result))
}

// GenerateReport validates the session inputs, composes the document and
// returns the rendered artifact. Invalid inputs refuse generation with a
// warning instead of producing a malformed document; any composition
// failure surfaces as a single error with no partial file.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "session")

	inputs, err := h.sessions.Get(id)
	if err != nil {
		respondError(w, logger, statusFor(err), err)
		return
	}
	if err := inputs.Validate(); err != nil {
		respondError(w, logger, http.StatusUnprocessableEntity, err)
		return
	}

	shortSupply, err := h.sessions.Attachment(id, domain.AttachmentShortSupply)
	if err != nil {
		respondError(w, logger, statusFor(err), err)
		return
	}
	marketReturns, err := h.sessions.Attachment(id, domain.AttachmentMarketReturns)
	if err != nil {
		respondError(w, logger, statusFor(err), err)
		return
	}

	composed := h.composer.Compose(
		inputs,
		metrics.Compute(inputs),
		metrics.BuildScenarios(inputs),
		shortSupply,
		marketReturns,
	)

	body, err := h.renderer.Render(composed)
	if err != nil {
		respondError(w, logger, http.StatusInternalServerError, fmt.Errorf("failed to render report: %w", err))
		return
	}

	filename := reportsvc.Filename(inputs.WeekNumber, composed.GeneratedAt)
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(body); err != nil {
		logger.Error().Err(err).Str("session", id).Msg("failed to write report body")
	}
}

func attachmentCategory(raw string) (domain.AttachmentCategory, string, bool) {
	switch domain.AttachmentCategory(raw) {
	case domain.AttachmentShortSupply:
		return domain.AttachmentShortSupply, reportsvc.TitleShortSupply, true
	case domain.AttachmentMarketReturns:
		return domain.AttachmentMarketReturns, reportsvc.TitleMarketReturns, true
	default:
		return "", "", false
	}
}

func statusFor(err error) int {
	if errors.Is(err, session.ErrSessionNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func respondJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, logger *zerolog.Logger, status int, err error) {
	logger.Error().Err(err).Int("status", status).Msg("request failed")
	respondJSON(w, logger, status, map[string]string{"error": err.Error()})
}
