// storage определяет контракты доступа к хранилищам reels-сервиса.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-reels-service/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой page_token (курсор пагинации комментариев).
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrParentNotFound — родительский комментарий не найден.
	ErrParentNotFound = errors.New("parent comment not found")
	// ErrMaxDepthExceeded — превышена допустимая глубина ветки комментариев.
	ErrMaxDepthExceeded = errors.New("max depth exceeded")
	// ErrInvalidArgument — некорректные входные данные (ключ, content-type, размер).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFoundObject — объект не найден в S3 при подтверждении загрузки.
	ErrNotFoundObject = errors.New("object not found")
)

// ViewerFlags — множества идентификаторов роликов, лайкнутых/сохранённых зрителем.
type ViewerFlags struct {
	Liked map[uuid.UUID]struct{}
	Saved map[uuid.UUID]struct{}
}

// ReelsStorage описывает операции над сущностью models.Reel и её оверлеями.
type ReelsStorage interface {
	// FeedPage возвращает базовую (необогащённую) страницу активных роликов.
	// trending — сортировка по trending_score DESC, id DESC;
	// остальные режимы — created_at DESC, id DESC.
	// followeeIDs используется только в режиме following и не должен быть пустым:
	// short-circuit пустых подписок — ответственность сервисного слоя.
	FeedPage(ctx context.Context, opts models.FeedOptions, followeeIDs []uuid.UUID) ([]models.Reel, error)
	// ReelByID возвращает активный ролик по идентификатору. Иначе — ErrNotFound.
	ReelByID(ctx context.Context, id uuid.UUID) (*models.Reel, error)
	// ProfilesByIDs возвращает публичные профили по множеству distinct id.
	ProfilesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.ProfileSummary, error)
	// ItemsByIDs возвращает карточки товаров по множеству distinct id.
	ItemsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.ItemSummary, error)
	// ViewerFlagsFor возвращает like/save-оверлей зрителя для набора роликов.
	ViewerFlagsFor(ctx context.Context, reelIDs []uuid.UUID, viewerID uuid.UUID) (*ViewerFlags, error)
}

// EngagementStorage описывает append-only журнал событий и переключатели реакций.
type EngagementStorage interface {
	// AppendEvent добавляет одно событие вовлечённости. События никогда
	// не обновляются и не удаляются этим слоем.
	AppendEvent(ctx context.Context, ev models.EngagementEvent) error
	// ToggleLike — insert-or-delete: повторный вызов для той же пары
	// отменяет предыдущий. Возвращает итоговое состояние liked.
	ToggleLike(ctx context.Context, reelID, viewerID uuid.UUID) (bool, error)
	// ToggleSave — insert-or-delete, итоговое состояние saved.
	ToggleSave(ctx context.Context, reelID, viewerID uuid.UUID) (bool, error)
	// IncrementViews увеличивает счётчик просмотров ролика.
	IncrementViews(ctx context.Context, reelID uuid.UUID) error
}

// FollowsStorage описывает подписки зрителя на авторов.
type FollowsStorage interface {
	// FolloweeIDs возвращает список авторов, на которых подписан зритель.
	FolloweeIDs(ctx context.Context, viewerID uuid.UUID) ([]uuid.UUID, error)
	// ToggleFollow — insert-or-delete подписки. Возвращает итоговое состояние.
	ToggleFollow(ctx context.Context, viewerID, creatorID uuid.UUID) (bool, error)
}

// CommentsStorage описывает операции над ветками комментариев.
type CommentsStorage interface {
	// CreateComment создаёт корневой комментарий или ответ первого уровня.
	// ReelID ответа наследуется от родителя; превышение глубины — ErrMaxDepthExceeded.
	CreateComment(ctx context.Context, comm models.Comment) (*models.Comment, error)
	// ListRootComments возвращает корневые комментарии ролика:
	// закреплённые первыми, далее created_at DESC.
	ListRootComments(ctx context.Context, reelID uuid.UUID, params models.ListParams) (*models.CommentPage, error)
	// ListReplies возвращает ответы на комментарий, created_at ASC.
	ListReplies(ctx context.Context, parentID string, params models.ListParams) (*models.CommentPage, error)
}

// UploadInfo — presigned-данные для загрузки медиа напрямую в объектное хранилище.
type UploadInfo struct {
	UploadURL      string
	MediaKey       string
	Expires        time.Duration
	RequiredHeader map[string]string
}

// MediaStorage описывает объектное хранилище медиафайлов роликов.
type MediaStorage interface {
	// MediaUploadURL генерирует presigned PUT URL для загрузки файла.
	MediaUploadURL(ctx context.Context, ownerID uuid.UUID, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckMediaUpload подтверждает факт загрузки по ключу и возвращает публичный URL.
	CheckMediaUpload(ctx context.Context, ownerID uuid.UUID, key string) (string, error)
}

// Storage агрегирует контракты реляционного хранилища (PostgreSQL).
type Storage interface {
	ReelsStorage
	EngagementStorage
	FollowsStorage
	Close()
}
