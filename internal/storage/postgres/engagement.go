package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-reels-service/internal/models"
)

// AppendEvent добавляет одно событие вовлечённости в append-only журнал.
// ViewerID == uuid.Nil пишется как NULL (анонимное событие).
func (s *Storage) AppendEvent(ctx context.Context, ev models.EngagementEvent) error {
	const op = "storage/postgres/AppendEvent"

	var viewer *uuid.UUID
	if ev.ViewerID != uuid.Nil {
		viewer = &ev.ViewerID
	}

	createdAt := ev.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.Exec(ctx, `
	INSERT INTO engagement_events (reel_id, kind, watch_seconds, session_id, viewer_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`, ev.ReelID, ev.Kind.String(), ev.WatchSeconds, ev.SessionID, viewer, createdAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ToggleLike — insert-or-delete для пары (reel, viewer) с корректировкой
// счётчика в одной транзакции. Счётчик не уходит ниже нуля.
func (s *Storage) ToggleLike(ctx context.Context, reelID, viewerID uuid.UUID) (bool, error) {
	const op = "storage/postgres/ToggleLike"

	liked, err := s.toggleReaction(ctx, reelID, viewerID, "reel_likes", "likes_count")
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return liked, nil
}

// ToggleSave — insert-or-delete для сохранений, симметрично ToggleLike.
func (s *Storage) ToggleSave(ctx context.Context, reelID, viewerID uuid.UUID) (bool, error) {
	const op = "storage/postgres/ToggleSave"

	saved, err := s.toggleReaction(ctx, reelID, viewerID, "reel_saves", "saves_count")
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// toggleReaction — общая механика переключателя реакции:
// сперва пытаемся удалить существующую строку; если удалять нечего — вставляем.
// Возвращает итоговое состояние (true = реакция установлена).
func (s *Storage) toggleReaction(ctx context.Context, reelID, viewerID uuid.UUID, table, counter string) (bool, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`DELETE FROM `+table+` WHERE reel_id = $1 AND user_id = $2`,
		reelID, viewerID)
	if err != nil {
		return false, err
	}

	if tag.RowsAffected() > 0 {
		// Повторный вызов отменяет предыдущий.
		_, err = tx.Exec(ctx,
			`UPDATE reels SET `+counter+` = GREATEST(0, `+counter+` - 1), updated_at = now() WHERE id = $1`,
			reelID)
		if err != nil {
			return false, err
		}

		return false, tx.Commit(ctx)
	}

	ins, err := tx.Exec(ctx,
		`INSERT INTO `+table+` (reel_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		reelID, viewerID)
	if err != nil {
		// Конкурентная вставка той же пары — считаем состояние установленным.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return true, tx.Commit(ctx)
		}

		return false, err
	}

	if ins.RowsAffected() > 0 {
		_, err = tx.Exec(ctx,
			`UPDATE reels SET `+counter+` = `+counter+` + 1, updated_at = now() WHERE id = $1`,
			reelID)
		if err != nil {
			return false, err
		}
	}

	return true, tx.Commit(ctx)
}

// IncrementViews увеличивает счётчик просмотров ролика.
func (s *Storage) IncrementViews(ctx context.Context, reelID uuid.UUID) error {
	const op = "storage/postgres/IncrementViews"

	_, err := s.db.Exec(ctx,
		`UPDATE reels SET views_count = views_count + 1 WHERE id = $1`,
		reelID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
