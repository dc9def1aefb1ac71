package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "github.com/pribylovaa/go-reels-service/internal/errors"
	"github.com/pribylovaa/go-reels-service/internal/http/middleware"
	"github.com/pribylovaa/go-reels-service/internal/models"
	"github.com/pribylovaa/go-reels-service/internal/service"
)

type createCommentRequest struct {
	ParentID string `json:"parent_id,omitempty"`
	Username string `json:"username,omitempty"`
	Content  string `json:"content"`
}

// CreateComment создаёт комментарий к ролику (или ответ на комментарий).
//
// POST /reels/{id}/comments
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	reelID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	var req createCommentRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	in := service.CreateCommentInput{
		ReelID:   reelID,
		ParentID: req.ParentID,
		UserID:   middleware.ViewerID(r.Context()),
		Username: req.Username,
		Content:  req.Content,
	}

	comment, err := h.svc.CreateComment(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentToView(comment))
}

// ListRootComments отдаёт страницу корневых комментариев ролика.
//
// GET /reels/{id}/comments?page_size=20&page_token=...
func (h *Handlers) ListRootComments(w http.ResponseWriter, r *http.Request) {
	reelID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	params, err := listParamsFromQuery(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.svc.ListRootComments(r.Context(), reelID, params)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentPageToView(page))
}

// ListReplies отдаёт страницу ответов на комментарий.
//
// GET /comments/{id}/replies?page_size=20&page_token=...
func (h *Handlers) ListReplies(w http.ResponseWriter, r *http.Request) {
	parentID := chi.URLParam(r, "id")
	if parentID == "" {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	params, err := listParamsFromQuery(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.svc.ListReplies(r.Context(), parentID, params)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentPageToView(page))
}

func listParamsFromQuery(r *http.Request) (models.ListParams, error) {
	var params models.ListParams

	if v := r.URL.Query().Get("page_size"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			return params, service.ErrInvalidArgument
		}
		params.PageSize = int32(n)
	}

	params.PageToken = r.URL.Query().Get("page_token")
	return params, nil
}
