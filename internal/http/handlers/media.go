package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-reels-service/internal/errors"
	"github.com/pribylovaa/go-reels-service/internal/http/middleware"
	"github.com/pribylovaa/go-reels-service/internal/service"
)

type mediaPresignRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

type mediaConfirmRequest struct {
	Key string `json:"key"`
}

// MediaPresign выдаёт presigned PUT URL для прямой загрузки видео в хранилище.
// Требует аутентификации: ключ объекта привязывается к владельцу.
//
// POST /media/presign
func (h *Handlers) MediaPresign(w http.ResponseWriter, r *http.Request) {
	var req mediaPresignRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	info, err := h.svc.MediaUploadURL(r.Context(), middleware.ViewerID(r.Context()), req.ContentType, req.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadInfoToView(info))
}

// MediaConfirm подтверждает завершение загрузки и возвращает публичный URL.
//
// POST /media/confirm
func (h *Handlers) MediaConfirm(w http.ResponseWriter, r *http.Request) {
	var req mediaConfirmRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	url, err := h.svc.ConfirmMediaUpload(r.Context(), middleware.ViewerID(r.Context()), req.Key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"media_url": url})
}
