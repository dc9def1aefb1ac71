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

// ToggleLike переключает лайк зрителя: insert-or-delete, второй вызов для
// той же пары отменяет первый. Возвращает итоговое состояние liked.
//
// Ошибки:
//   - ErrUnauthenticated — анонимный зритель;
//   - ErrNotFound — ролик отсутствует или деактивирован.
func (s *Service) ToggleLike(ctx context.Context, reelID, viewerID uuid.UUID) (bool, error) {
	const op = "service.reactions.ToggleLike"

	return s.toggle(ctx, op, reelID, viewerID, s.storage.ToggleLike)
}

// ToggleSave переключает сохранение, симметрично ToggleLike.
func (s *Service) ToggleSave(ctx context.Context, reelID, viewerID uuid.UUID) (bool, error) {
	const op = "service.reactions.ToggleSave"

	return s.toggle(ctx, op, reelID, viewerID, s.storage.ToggleSave)
}

// toggle — общая валидация и маппинг ошибок переключателей реакций.
func (s *Service) toggle(ctx context.Context, op string, reelID, viewerID uuid.UUID, f func(context.Context, uuid.UUID, uuid.UUID) (bool, error)) (bool, error) {
	lg := log.From(ctx)

	if viewerID == uuid.Nil {
		return false, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if reelID == uuid.Nil {
		return false, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	// Существование ролика проверяется до переключения, чтобы не плодить
	// реакции на деактивированные ролики.
	if _, err := s.storage.ReelByID(ctx, reelID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("toggle_reel_lookup_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return false, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	state, err := f(ctx, reelID, viewerID)
	if err != nil {
		lg.Error("toggle_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return false, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("toggle_ok",
		slog.String("op", op),
		slog.Bool("state", state),
	)

	return state, nil
}

// ToggleFollow переключает подписку зрителя на автора.
// Возвращает итоговое состояние (true = подписан).
func (s *Service) ToggleFollow(ctx context.Context, viewerID, creatorID uuid.UUID) (bool, error) {
	const op = "service.reactions.ToggleFollow"

	lg := log.From(ctx)

	if viewerID == uuid.Nil {
		return false, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if creatorID == uuid.Nil || creatorID == viewerID {
		return false, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	state, err := s.storage.ToggleFollow(ctx, viewerID, creatorID)
	if err != nil {
		lg.Error("toggle_follow_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return false, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("toggle_follow_ok",
		slog.String("op", op),
		slog.Bool("state", state),
	)

	return state, nil
}
