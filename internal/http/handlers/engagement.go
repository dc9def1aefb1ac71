package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "github.com/pribylovaa/go-reels-service/internal/errors"
	"github.com/pribylovaa/go-reels-service/internal/http/middleware"
	"github.com/pribylovaa/go-reels-service/internal/models"
	"github.com/pribylovaa/go-reels-service/internal/service"
)

type appendEventRequest struct {
	Kind         string  `json:"kind"`
	WatchSeconds float64 `json:"watch_seconds,omitempty"`
}

// AppendEvent принимает событие вовлечённости от фронта.
//
// POST /reels/{id}/events
//
// Сессия просмотра приходит в заголовке X-Session-Id; если фронт его
// не прислал, генерируем серверный uuid, чтобы событие не потерялось.
func (h *Handlers) AppendEvent(w http.ResponseWriter, r *http.Request) {
	reelID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	var req appendEventRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	kind, ok := models.ParseEngagementKind(req.Kind)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	sessionID := r.Header.Get("X-Session-Id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	in := service.AppendEventInput{
		ReelID:       reelID,
		Kind:         kind,
		WatchSeconds: req.WatchSeconds,
		SessionID:    sessionID,
		ViewerID:     middleware.ViewerID(r.Context()),
	}

	if err := h.svc.AppendEvent(r.Context(), in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleLike переключает лайк ролика. Требует аутентификации.
//
// POST /reels/{id}/like
func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	reelID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	liked, err := h.svc.ToggleLike(r.Context(), reelID, middleware.ViewerID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

// ToggleSave переключает сохранение ролика в закладки. Требует аутентификации.
//
// POST /reels/{id}/save
func (h *Handlers) ToggleSave(w http.ResponseWriter, r *http.Request) {
	reelID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	saved, err := h.svc.ToggleSave(r.Context(), reelID, middleware.ViewerID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"saved": saved})
}

// ToggleFollow переключает подписку на автора. Требует аутентификации.
//
// POST /creators/{id}/follow
func (h *Handlers) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	creatorID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	following, err := h.svc.ToggleFollow(r.Context(), middleware.ViewerID(r.Context()), creatorID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"following": following})
}
