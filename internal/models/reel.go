// models содержит доменные сущности reels-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedMode — режим ленты, задающий политику ранжирования и набор источников.
type FeedMode int32

const (
	// FeedForYou — общая лента, сортировка по времени публикации.
	FeedForYou FeedMode = iota
	// FeedFollowing — лента подписок: только авторы, на которых подписан зритель.
	FeedFollowing
	// FeedTrending — лента трендов, сортировка по trending_score.
	FeedTrending
)

// String возвращает каноническое строковое имя режима (для логов и транспорта).
func (m FeedMode) String() string {
	switch m {
	case FeedForYou:
		return "for_you"
	case FeedFollowing:
		return "following"
	case FeedTrending:
		return "trending"
	default:
		return "unknown"
	}
}

// ParseFeedMode парсит строковый режим ленты из транспорта.
// Пустая строка трактуется как for_you.
func ParseFeedMode(s string) (FeedMode, bool) {
	switch s {
	case "", "for_you":
		return FeedForYou, true
	case "following":
		return FeedFollowing, true
	case "trending":
		return FeedTrending, true
	default:
		return FeedForYou, false
	}
}

// Reel — доменная сущность короткого вертикального видео.
//
// Особенности:
//   - ID — UUIDv4;
//   - счётчики авторитетны на стороне сервера и меняются только через
//     события вовлечённости;
//   - TrendingScore — непрозрачное значение, вычисляемое на сервере;
//   - IsActive — мягкая деактивация, жёсткого удаления нет;
//   - IsLiked/IsSaved — оверлей конкретного зрителя, подмешивается при выдаче
//     и не является частью самой сущности;
//   - временные метки — в UTC.
type Reel struct {
	ID           uuid.UUID
	AuthorID     uuid.UUID
	MediaURL     string
	ThumbnailURL string
	Title        string
	Description  string
	TaggedItemID *uuid.UUID

	ViewsCount    int64
	LikesCount    int64
	CommentsCount int64
	SharesCount   int64
	SavesCount    int64

	TrendingScore float64
	IsActive      bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Оверлей зрителя (join при выдаче, в БД не хранится).
	Author     *ProfileSummary
	TaggedItem *ItemSummary
	IsLiked    bool
	IsSaved    bool
}

// FeedOptions — параметры выборки страницы ленты.
//
// Особенности:
//   - при Limit <= 0 применяется серверный default (config.LimitsConfig.Default);
//   - ViewerID == uuid.Nil означает анонимного зрителя (без оверлея).
type FeedOptions struct {
	Mode     FeedMode
	Offset   int64
	Limit    int32
	ViewerID uuid.UUID
}

// FeedPage — страница ленты.
// HasMore == true, пока страница возвращается полной: укороченная страница
// означает конец выдачи.
type FeedPage struct {
	Items   []Reel
	HasMore bool
}
