package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// FolloweeIDs возвращает авторов, на которых подписан зритель.
// Пустой список — легитимный результат, не ошибка.
func (s *Storage) FolloweeIDs(ctx context.Context, viewerID uuid.UUID) ([]uuid.UUID, error) {
	const op = "storage/postgres/FolloweeIDs"

	rows, err := s.db.Query(ctx,
		`SELECT creator_id FROM follows WHERE follower_id = $1`,
		viewerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}
		ids = append(ids, id)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return ids, nil
}

// ToggleFollow — insert-or-delete подписки зрителя на автора.
// Возвращает итоговое состояние (true = подписан).
func (s *Storage) ToggleFollow(ctx context.Context, viewerID, creatorID uuid.UUID) (bool, error) {
	const op = "storage/postgres/ToggleFollow"

	tag, err := s.db.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND creator_id = $2`,
		viewerID, creatorID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO follows (follower_id, creator_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		viewerID, creatorID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return true, nil
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}
