package feedview

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-reels-service/internal/models"

	"github.com/pribylovaa/go-reels-service/internal/pkg/log"
)

// EventSink — получатель событий вовлечённости (обычно HTTP-клиент
// reels-service либо сам сервисный слой).
type EventSink interface {
	AppendEvent(ctx context.Context, reelID uuid.UUID, kind models.EngagementKind, watchSeconds float64, sessionID string) error
}

// milestoneKey — ключ дедупликации вех: пара (ролик, вид).
type milestoneKey struct {
	reelID uuid.UUID
	kind   models.EngagementKind
}

// Tracker — сессионный регистратор событий вовлечённости.
//
// Вехи просмотра (view_3s/view_10s/view_complete) записываются не более
// одного раза на пару (ролик, сессия): повторный вызов — тихий no-op.
// Все остальные виды не дедуплицируются — каждый вызов даёт новое событие.
//
// Дедупликация best-effort: множество живёт в памяти процесса и не
// переживает перезагрузку; авторитетная очистка — на стороне сервера.
// Ошибки записи логируются и проглатываются: трекинг никогда не должен
// прерывать воспроизведение или взаимодействие.
type Tracker struct {
	mu      sync.Mutex
	sink    EventSink
	session *Session
	seen    map[milestoneKey]struct{}
}

// NewTracker создаёт трекер для сессии просмотра.
func NewTracker(sink EventSink, session *Session) *Tracker {
	return &Tracker{
		sink:    sink,
		session: session,
		seen:    make(map[milestoneKey]struct{}),
	}
}

// Track записывает одно событие. Для вех — не более одного раза на ролик
// в рамках сессии.
func (t *Tracker) Track(ctx context.Context, reelID uuid.UUID, kind models.EngagementKind, watchSeconds float64) {
	if !kind.Valid() || reelID == uuid.Nil {
		return
	}

	if kind.IsMilestone() {
		key := milestoneKey{reelID: reelID, kind: kind}

		t.mu.Lock()
		if _, dup := t.seen[key]; dup {
			t.mu.Unlock()
			return
		}
		t.seen[key] = struct{}{}
		t.mu.Unlock()
	}

	if err := t.sink.AppendEvent(ctx, reelID, kind, watchSeconds, t.session.ID); err != nil {
		log.From(ctx).Warn("track_event_failed",
			slog.String("kind", kind.String()),
			slog.String("err", err.Error()),
		)
	}
}

// Reset очищает вехи ролика — вызывается, когда ролик возвращается в окно
// ленты после вытеснения, чтобы повторный просмотр снова дал вехи.
func (t *Tracker) Reset(reelID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key := range t.seen {
		if key.reelID == reelID {
			delete(t.seen, key)
		}
	}
}
