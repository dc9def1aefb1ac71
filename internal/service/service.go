// service содержит бизнес-логику reels-сервиса.
package service

import (
	"errors"

	"github.com/pribylovaa/go-reels-service/internal/cache"
	"github.com/pribylovaa/go-reels-service/internal/config"
	"github.com/pribylovaa/go-reels-service/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidCursor — битый/чужой page_token.
	// Транспорт: 400.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrUnauthenticated — операция требует залогиненного зрителя.
	// Транспорт: 401.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInternal — прочие ошибки нижних слоёв.
	// Транспорт: 500.
	ErrInternal = errors.New("internal error")
)

// Service — описывает бизнес-логику reels-service.
type Service struct {
	storage  storage.Storage
	comments storage.CommentsStorage
	media    storage.MediaStorage
	feed     cache.FeedCache
	cfg      config.Config
}

// New создает новый экземпляр Service.
// feed может быть cache.NewNoop() при отключённом Redis.
func New(st storage.Storage, comments storage.CommentsStorage, media storage.MediaStorage, feed cache.FeedCache, cfg config.Config) *Service {
	if feed == nil {
		feed = cache.NewNoop()
	}

	return &Service{
		storage:  st,
		comments: comments,
		media:    media,
		feed:     feed,
		cfg:      cfg,
	}
}

// normalizeLimit приводит запрошенный лимит к серверным границам.
func (s *Service) normalizeLimit(limit int32) int32 {
	if limit <= 0 {
		limit = s.cfg.Limits.Default
	}

	if s.cfg.Limits.Max > 0 && limit > s.cfg.Limits.Max {
		limit = s.cfg.Limits.Max
	}

	return limit
}
