package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-reels-service/internal/models"
	"github.com/pribylovaa/go-reels-service/internal/storage"

	"github.com/pribylovaa/go-reels-service/internal/pkg/log"
)

// CreateCommentInput — входные данные создания комментария.
type CreateCommentInput struct {
	ReelID   uuid.UUID
	ParentID string
	UserID   uuid.UUID
	Username string
	Content  string
}

// CreateComment создаёт корневой комментарий или ответ первого уровня.
//
// Правила:
//   - зритель обязан быть залогинен;
//   - content нормализуется TrimSpace и ограничивается по длине;
//   - для ответа reel_id наследуется от родителя (инвариант одной ветки);
//   - ответ на ответ — ErrInvalidArgument (маппинг storage.ErrMaxDepthExceeded);
//   - отсутствующий родитель — ErrNotFound.
func (s *Service) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	const op = "service.comments.CreateComment"

	lg := log.From(ctx)

	if in.UserID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	in.Content = strings.TrimSpace(in.Content)
	if in.ReelID == uuid.Nil || in.Content == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if max := s.cfg.Limits.MaxCommentLength; max > 0 && utf8.RuneCountInString(in.Content) > int(max) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	// Ролик обязан существовать и быть активным.
	if _, err := s.storage.ReelByID(ctx, in.ReelID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("create_comment_reel_lookup_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	comm, err := s.comments.CreateComment(ctx, models.Comment{
		ReelID:   in.ReelID,
		ParentID: in.ParentID,
		UserID:   in.UserID,
		Username: in.Username,
		Content:  in.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrParentNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrMaxDepthExceeded):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		lg.Error("create_comment_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("create_comment_ok",
		slog.String("op", op),
		slog.String("comment_id", comm.ID),
		slog.Bool("is_reply", comm.ParentID != ""),
	)

	return comm, nil
}

// ListRootComments возвращает страницу корневых комментариев ролика:
// закреплённые первыми, далее по убыванию времени создания.
func (s *Service) ListRootComments(ctx context.Context, reelID uuid.UUID, params models.ListParams) (*models.CommentPage, error) {
	const op = "service.comments.ListRootComments"

	if reelID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	page, err := s.comments.ListRootComments(ctx, reelID, params)
	if err != nil {
		return nil, s.mapListErr(ctx, op, err)
	}

	return page, nil
}

// ListReplies возвращает страницу ответов одной ветки, created_at ASC.
func (s *Service) ListReplies(ctx context.Context, parentID string, params models.ListParams) (*models.CommentPage, error) {
	const op = "service.comments.ListReplies"

	if strings.TrimSpace(parentID) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	page, err := s.comments.ListReplies(ctx, parentID, params)
	if err != nil {
		return nil, s.mapListErr(ctx, op, err)
	}

	return page, nil
}

// mapListErr — общий маппинг ошибок листинга комментариев.
func (s *Service) mapListErr(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrInvalidCursor):
		return fmt.Errorf("%s: %w", op, ErrInvalidCursor)
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	log.From(ctx).Error("list_comments_storage_error",
		slog.String("op", op),
		slog.String("err", err.Error()),
	)

	return fmt.Errorf("%s: %w", op, ErrInternal)
}
