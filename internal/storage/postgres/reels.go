package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-reels-service/internal/models"
	"github.com/pribylovaa/go-reels-service/internal/storage"
)

const reelColumns = `id, author_id, media_url, thumbnail_url, title, description, tagged_item_id,
	views_count, likes_count, comments_count, shares_count, saves_count,
	trending_score, is_active, created_at, updated_at`

// scanReel читает одну строку выборки по reelColumns.
func scanReel(row pgx.Row) (models.Reel, error) {
	var r models.Reel
	err := row.Scan(
		&r.ID,
		&r.AuthorID,
		&r.MediaURL,
		&r.ThumbnailURL,
		&r.Title,
		&r.Description,
		&r.TaggedItemID,
		&r.ViewsCount,
		&r.LikesCount,
		&r.CommentsCount,
		&r.SharesCount,
		&r.SavesCount,
		&r.TrendingScore,
		&r.IsActive,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return models.Reel{}, err
	}

	// Нормализация в UTC.
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()

	return r, nil
}

// FeedPage возвращает базовую страницу активных роликов.
//
// Сортировка фиксирована:
//   - trending: trending_score DESC, id DESC;
//   - остальные режимы: created_at DESC, id DESC.
//
// Режим following фильтрует по множеству авторов; пустое множество сюда
// не попадает — short-circuit выполняется сервисным слоем до запроса.
func (s *Storage) FeedPage(ctx context.Context, opts models.FeedOptions, followeeIDs []uuid.UUID) ([]models.Reel, error) {
	const op = "storage/postgres/FeedPage"

	limit := opts.Limit
	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	var rows pgx.Rows
	var err error

	switch opts.Mode {
	case models.FeedTrending:
		rows, err = s.db.Query(ctx, `
		SELECT `+reelColumns+`
		FROM reels
		WHERE is_active
		ORDER BY trending_score DESC, id DESC
		LIMIT $1 OFFSET $2
		`, limit, offset)
	case models.FeedFollowing:
		rows, err = s.db.Query(ctx, `
		SELECT `+reelColumns+`
		FROM reels
		WHERE is_active AND author_id = ANY($1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
		`, followeeIDs, limit, offset)
	default:
		rows, err = s.db.Query(ctx, `
		SELECT `+reelColumns+`
		FROM reels
		WHERE is_active
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
		`, limit, offset)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []models.Reel
	for rows.Next() {
		r, scanErr := scanReel(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}
		list = append(list, r)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return list, nil
}

// ReelByID возвращает активный ролик по идентификатору.
func (s *Storage) ReelByID(ctx context.Context, id uuid.UUID) (*models.Reel, error) {
	const op = "storage/postgres/ReelByID"

	row := s.db.QueryRow(ctx, `
	SELECT `+reelColumns+`
	FROM reels
	WHERE id = $1 AND is_active
	`, id)

	r, err := scanReel(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &r, nil
}

// ProfilesByIDs возвращает публичные профили авторов одним батч-запросом.
// Отсутствующие id просто не попадают в результат — это не ошибка.
func (s *Storage) ProfilesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.ProfileSummary, error) {
	const op = "storage/postgres/ProfilesByIDs"

	result := make(map[uuid.UUID]models.ProfileSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := s.db.Query(ctx, `
	SELECT user_id, username, display_name, avatar_url, is_verified
	FROM profiles
	WHERE user_id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.ProfileSummary
		if scanErr := rows.Scan(&p.UserID, &p.Username, &p.DisplayName, &p.AvatarURL, &p.IsVerified); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}
		result[p.UserID] = p
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return result, nil
}

// ItemsByIDs возвращает карточки привязанных товаров одним батч-запросом.
func (s *Storage) ItemsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.ItemSummary, error) {
	const op = "storage/postgres/ItemsByIDs"

	result := make(map[uuid.UUID]models.ItemSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := s.db.Query(ctx, `
	SELECT id, title, image_url, price_cents, currency, available
	FROM items
	WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var it models.ItemSummary
		if scanErr := rows.Scan(&it.ID, &it.Title, &it.ImageURL, &it.PriceCents, &it.Currency, &it.Available); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}
		result[it.ID] = it
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return result, nil
}

// ViewerFlagsFor возвращает like/save-оверлей зрителя для набора роликов.
// Оба множества собираются двумя запросами по ANY($1) — без per-id циклов.
func (s *Storage) ViewerFlagsFor(ctx context.Context, reelIDs []uuid.UUID, viewerID uuid.UUID) (*storage.ViewerFlags, error) {
	const op = "storage/postgres/ViewerFlagsFor"

	flags := &storage.ViewerFlags{
		Liked: make(map[uuid.UUID]struct{}),
		Saved: make(map[uuid.UUID]struct{}),
	}
	if len(reelIDs) == 0 || viewerID == uuid.Nil {
		return flags, nil
	}

	collect := func(query string, dst map[uuid.UUID]struct{}) error {
		rows, err := s.db.Query(ctx, query, reelIDs, viewerID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var id uuid.UUID
			if scanErr := rows.Scan(&id); scanErr != nil {
				return scanErr
			}
			dst[id] = struct{}{}
		}

		return rows.Err()
	}

	if err := collect(`SELECT reel_id FROM reel_likes WHERE reel_id = ANY($1) AND user_id = $2`, flags.Liked); err != nil {
		return nil, fmt.Errorf("%s: likes: %w", op, err)
	}
	if err := collect(`SELECT reel_id FROM reel_saves WHERE reel_id = ANY($1) AND user_id = $2`, flags.Saved); err != nil {
		return nil, fmt.Errorf("%s: saves: %w", op, err)
	}

	return flags, nil
}
