package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/pribylovaa/go-reels-service/internal/errors"
	"github.com/pribylovaa/go-reels-service/internal/http/middleware"
	"github.com/pribylovaa/go-reels-service/internal/models"
	"github.com/pribylovaa/go-reels-service/internal/service"
)

// Feed отдаёт страницу ленты.
//
// GET /reels?mode=for_you|following|trending&offset=0&limit=10
//
// Анонимный запрос допустим: лента возвращается без viewer-флагов,
// режим following для анонима — пустая страница.
func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	opts := models.FeedOptions{
		Mode:     models.FeedForYou,
		ViewerID: middleware.ViewerID(r.Context()),
	}

	if v := r.URL.Query().Get("mode"); v != "" {
		mode, ok := models.ParseFeedMode(v)
		if !ok {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.Mode = mode
	}

	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.Offset = n
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.Limit = int32(n)
	}

	page, err := h.svc.FeedPage(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, feedPageToView(page))
}
