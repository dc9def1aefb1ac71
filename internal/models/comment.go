// Комментарии к роликам хранятся в MongoDB.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment — внутренняя доменная модель комментария.
// Важно:
//   - ID — ObjectID MongoDB, наружу конвертируется в string;
//   - ReelID/UserID — UUID из смежных таблиц;
//   - ParentID — ObjectID родителя; допускается ровно один уровень вложенности
//     (ответ на ответ запрещён);
//   - инвариант: ReelID ответа всегда наследуется от родителя;
//   - RepliesCount — количество прямых детей (для UI);
//   - Pinned — закреплённые комментарии отдаются первыми в корневой выдаче;
//   - CreatedAt/UpdatedAt — в UTC.
type Comment struct {
	ID           string
	ReelID       uuid.UUID
	ParentID     string
	UserID       uuid.UUID
	Username     string
	Content      string
	LikesCount   int64
	RepliesCount int32
	Pinned       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ListParams — базовые параметры постраничной выдачи комментариев.
type ListParams struct {
	PageSize  int32
	PageToken string
}

// CommentPage — результат постраничной выдачи.
type CommentPage struct {
	Items         []Comment
	NextPageToken string
}
