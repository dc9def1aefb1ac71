package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-reels-service/internal/storage"

	"github.com/pribylovaa/go-reels-service/internal/pkg/log"
)

// MediaUploadURL генерирует presigned PUT URL для загрузки медиафайла ролика.
//
// Ошибки:
//   - ErrUnauthenticated — анонимный зритель;
//   - ErrInvalidArgument — недопустимый content-type или размер.
func (s *Service) MediaUploadURL(ctx context.Context, ownerID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service.media.MediaUploadURL"

	lg := log.From(ctx)

	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	info, err := s.media.MediaUploadURL(ctx, ownerID, contentType, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		lg.Error("media_upload_url_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("media_upload_url_ok",
		slog.String("op", op),
		slog.String("key", info.MediaKey),
	)

	return info, nil
}

// ConfirmMediaUpload подтверждает факт загрузки и возвращает публичный URL.
//
// Ошибки:
//   - ErrNotFound — объект по ключу не найден;
//   - ErrInvalidArgument — чужой ключ либо нарушение ограничений.
func (s *Service) ConfirmMediaUpload(ctx context.Context, ownerID uuid.UUID, key string) (string, error) {
	const op = "service.media.ConfirmMediaUpload"

	lg := log.From(ctx)

	if ownerID == uuid.Nil {
		return "", fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if key == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	publicURL, err := s.media.CheckMediaUpload(ctx, ownerID, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundObject):
			return "", fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidArgument):
			return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		lg.Error("confirm_media_upload_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return "", fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("confirm_media_upload_ok",
		slog.String("op", op),
		slog.String("key", key),
	)

	return publicURL, nil
}
