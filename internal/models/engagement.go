package models

import (
	"time"

	"github.com/google/uuid"
)

// EngagementKind — закрытое перечисление видов событий вовлечённости.
// Сырые строки из транспорта конвертируются через ParseEngagementKind,
// так что невалидный вид отбрасывается на границе.
type EngagementKind int32

const (
	KindImpression EngagementKind = iota
	KindViewStart
	KindView3s
	KindView10s
	KindViewComplete
	KindLike
	KindComment
	KindShare
	KindSave
	KindFollowCreator
)

var kindNames = map[EngagementKind]string{
	KindImpression:    "impression",
	KindViewStart:     "view_start",
	KindView3s:        "view_3s",
	KindView10s:       "view_10s",
	KindViewComplete:  "view_complete",
	KindLike:          "like",
	KindComment:       "comment",
	KindShare:         "share",
	KindSave:          "save",
	KindFollowCreator: "follow_creator",
}

// String возвращает каноническое имя вида события (хранится в БД как текст).
func (k EngagementKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "unknown"
}

// Valid сообщает, входит ли значение в перечисление.
func (k EngagementKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// IsMilestone — виды-вехи просмотра, записываемые не более одного раза
// на пару (reel, session).
func (k EngagementKind) IsMilestone() bool {
	switch k {
	case KindView3s, KindView10s, KindViewComplete:
		return true
	default:
		return false
	}
}

// ParseEngagementKind парсит строковый вид события из транспорта.
func ParseEngagementKind(s string) (EngagementKind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}

	return KindImpression, false
}

// EngagementEvent — append-only факт взаимодействия зрителя с роликом.
// Этот слой никогда не обновляет и не удаляет события.
type EngagementEvent struct {
	ID           uuid.UUID
	ReelID       uuid.UUID
	Kind         EngagementKind
	WatchSeconds float64
	SessionID    string
	ViewerID     uuid.UUID // uuid.Nil для анонимных событий.
	CreatedAt    time.Time
}
