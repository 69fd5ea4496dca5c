package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"rankcraft/internal/app"
	"rankcraft/internal/flows"
	"rankcraft/internal/llm"
	"rankcraft/internal/youtube"
)

// Handler holds the per-feature request handlers.
type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Ideas(w http.ResponseWriter, r *http.Request) {
	var req flows.IdeasRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := h.svc.Generator.GenerateIdeas(r.Context(), req)
	respond(w, result, err)
}

func (h *Handler) CompetitorAnalysis(w http.ResponseWriter, r *http.Request) {
	var req flows.CompetitorRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := h.svc.Generator.AnalyzeCompetitor(r.Context(), req)
	respond(w, result, err)
}

func (h *Handler) Keywords(w http.ResponseWriter, r *http.Request) {
	var req flows.KeywordsRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := h.svc.Generator.ResearchKeywords(r.Context(), req)
	respond(w, map[string]any{"keywords": result}, err)
}

func (h *Handler) Captions(w http.ResponseWriter, r *http.Request) {
	var req flows.CaptionsRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := h.svc.Generator.GenerateCaptions(r.Context(), req)
	respond(w, map[string]any{"captions": result}, err)
}

func (h *Handler) Ranks(w http.ResponseWriter, r *http.Request) {
	var req flows.RanksRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := h.svc.Generator.TrackRanks(r.Context(), req)
	respond(w, map[string]any{"rankedKeywords": result}, err)
}

func (h *Handler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	var req flows.ThumbnailRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := h.svc.Generator.CritiqueThumbnail(r.Context(), req)
	respond(w, result, err)
}

func (h *Handler) Repurpose(w http.ResponseWriter, r *http.Request) {
	var req flows.RepurposeRequest
	if !decode(w, r, &req) {
		return
	}
	result, err := h.svc.Generator.RepurposeVideo(r.Context(), req)
	respond(w, map[string]any{"shortScripts": result}, err)
}

func (h *Handler) Reports(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Exporter.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reports": names})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", nil)
		return false
	}
	return true
}

// respond maps the flow error taxonomy onto HTTP statuses: validation
// failures are the client's fault, resolution failures mean the referenced
// channel or video is unusable, and everything else is an upstream failure.
func respond(w http.ResponseWriter, result any, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, result)
		return
	}

	var verr *flows.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, "validation failed", verr.Violations)
		return
	}

	var rerr *youtube.ResolutionError
	if errors.As(err, &rerr) {
		writeError(w, http.StatusUnprocessableEntity, rerr.Error(), nil)
		return
	}

	var serr *llm.SchemaError
	if errors.As(err, &serr) {
		slog.Error("Model returned an unusable response", "error", err)
		writeError(w, http.StatusBadGateway, "the model returned an unusable response", nil)
		return
	}

	slog.Error("Generation failed", "error", err)
	writeError(w, http.StatusBadGateway, "generation failed", nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, violations []flows.FieldViolation) {
	body := map[string]any{"error": message}
	if len(violations) > 0 {
		body["violations"] = violations
	}
	writeJSON(w, status, body)
}
