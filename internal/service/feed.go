package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/go-reels-service/internal/metrics"
	"github.com/pribylovaa/go-reels-service/internal/models"
	"github.com/pribylovaa/go-reels-service/internal/storage"

	"github.com/pribylovaa/go-reels-service/internal/pkg/log"
)

// FeedPage возвращает обогащённую страницу ленты.
//
// Конвейер фиксирован: сперва базовая страница (stage 1), затем параллельные
// батч-джойны профилей авторов, привязанных товаров и оверлея зрителя (stage 2).
// Ошибка любой стадии отбрасывает страницу целиком — частичное состояние
// наружу не отдаётся.
//
// Правила:
//   - limit нормализуется по конфигу;
//   - following при пустых подписках (или анонимном зрителе) отдаёт пустую
//     страницу с HasMore=false, не выполняя базовый запрос;
//   - HasMore=true, пока страница возвращается полной;
//   - базовые страницы trending читаются через кэш с коротким TTL.
func (s *Service) FeedPage(ctx context.Context, opts models.FeedOptions) (*models.FeedPage, error) {
	const op = "service.feed.FeedPage"

	lg := log.From(ctx)
	lg.Info("feed_page_request",
		slog.String("op", op),
		slog.String("mode", opts.Mode.String()),
		slog.Int64("offset", opts.Offset),
		slog.Int("limit", int(opts.Limit)),
		slog.Bool("authenticated", opts.ViewerID != uuid.Nil),
	)

	metrics.FeedRequests.WithLabelValues(opts.Mode.String()).Inc()

	opts.Limit = s.normalizeLimit(opts.Limit)
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	var followees []uuid.UUID
	if opts.Mode == models.FeedFollowing {
		if opts.ViewerID == uuid.Nil {
			// Аноним не может иметь подписок — пустая страница без запроса.
			return &models.FeedPage{HasMore: false}, nil
		}

		var err error
		followees, err = s.storage.FolloweeIDs(ctx, opts.ViewerID)
		if err != nil {
			lg.Error("feed_page_followees_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		if len(followees) == 0 {
			// Ключевой short-circuit: при нуле подписок базовый запрос
			// не выполняется, иначе выдача выродилась бы в "все ролики".
			lg.Info("feed_page_no_followees", slog.String("op", op))

			return &models.FeedPage{HasMore: false}, nil
		}
	}

	items, err := s.basePage(ctx, opts, followees)
	if err != nil {
		lg.Error("feed_page_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if err := s.enrich(ctx, items, opts.ViewerID); err != nil {
		lg.Error("feed_page_enrich_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	page := &models.FeedPage{
		Items:   items,
		HasMore: int32(len(items)) == opts.Limit,
	}

	lg.Info("feed_page_ok",
		slog.String("op", op),
		slog.Int("items", len(page.Items)),
		slog.Bool("has_more", page.HasMore),
	)

	return page, nil
}

// basePage читает базовую страницу, для trending — через кэш.
func (s *Service) basePage(ctx context.Context, opts models.FeedOptions, followees []uuid.UUID) ([]models.Reel, error) {
	if opts.Mode != models.FeedTrending {
		return s.storage.FeedPage(ctx, opts, followees)
	}

	if cached, ok, err := s.feed.GetPage(ctx, opts.Offset, opts.Limit); err == nil && ok {
		metrics.FeedCacheHits.Inc()
		return cached, nil
	}
	// Ошибки кэша не фатальны: идём в базу.

	items, err := s.storage.FeedPage(ctx, opts, followees)
	if err != nil {
		return nil, err
	}

	if err := s.feed.SetPage(ctx, opts.Offset, opts.Limit, items); err != nil {
		log.From(ctx).Warn("feed_cache_set_failed", slog.String("err", err.Error()))
	}

	return items, nil
}

// enrich подмешивает к странице профили авторов, привязанные товары и
// like/save-оверлей зрителя. Три джойна выполняются параллельно, каждый —
// одним батч-запросом по множеству distinct id.
func (s *Service) enrich(ctx context.Context, items []models.Reel, viewerID uuid.UUID) error {
	if len(items) == 0 {
		return nil
	}

	authorSet := make(map[uuid.UUID]struct{}, len(items))
	itemSet := make(map[uuid.UUID]struct{})
	reelIDs := make([]uuid.UUID, 0, len(items))

	for i := range items {
		authorSet[items[i].AuthorID] = struct{}{}
		if items[i].TaggedItemID != nil {
			itemSet[*items[i].TaggedItemID] = struct{}{}
		}
		reelIDs = append(reelIDs, items[i].ID)
	}

	var (
		profiles map[uuid.UUID]models.ProfileSummary
		goods    map[uuid.UUID]models.ItemSummary
		flags    *storage.ViewerFlags
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		profiles, err = s.storage.ProfilesByIDs(gctx, keys(authorSet))
		return err
	})

	if len(itemSet) > 0 {
		g.Go(func() error {
			var err error
			goods, err = s.storage.ItemsByIDs(gctx, keys(itemSet))
			return err
		})
	}

	if viewerID != uuid.Nil {
		g.Go(func() error {
			var err error
			flags, err = s.storage.ViewerFlagsFor(gctx, reelIDs, viewerID)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i := range items {
		if p, ok := profiles[items[i].AuthorID]; ok {
			cp := p
			items[i].Author = &cp
		}
		if items[i].TaggedItemID != nil {
			if it, ok := goods[*items[i].TaggedItemID]; ok {
				ci := it
				items[i].TaggedItem = &ci
			}
		}
		if flags != nil {
			_, items[i].IsLiked = flags.Liked[items[i].ID]
			_, items[i].IsSaved = flags.Saved[items[i].ID]
		}
	}

	return nil
}

// keys материализует ключи множества в срез.
func keys(set map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
