package feedview

// Тесты трекера вовлечённости (pkg/feedview/tracker.go).
//
// Проверяем:
//  - вехи пишутся не более одного раза на пару (ролик, вид);
//  - неограниченные виды (like и т.п.) пишутся каждый раз;
//  - дедупликация ведётся по паре, а не по ролику: разные вехи одного
//    ролика независимы;
//  - ошибка sink проглатывается и не мешает последующим событиям;
//  - Reset возвращает ролику возможность снова дать вехи.

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-reels-service/internal/models"
)

// recordingSink копит отправленные события.
type recordingSink struct {
	events []models.EngagementKind
	err    error
}

func (s *recordingSink) AppendEvent(_ context.Context, _ uuid.UUID, kind models.EngagementKind, _ float64, sessionID string) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}
	s.events = append(s.events, kind)
	return s.err
}

func TestTracker_Milestone_Once(t *testing.T) {
	sink := &recordingSink{}
	tr := NewTracker(sink, NewSession())
	reelID := uuid.New()

	tr.Track(context.Background(), reelID, models.KindView3s, 3.1)
	tr.Track(context.Background(), reelID, models.KindView3s, 3.4)
	tr.Track(context.Background(), reelID, models.KindView10s, 10.2)

	require.Equal(t, []models.EngagementKind{models.KindView3s, models.KindView10s}, sink.events)
}

func TestTracker_NonMilestone_EveryTime(t *testing.T) {
	sink := &recordingSink{}
	tr := NewTracker(sink, NewSession())
	reelID := uuid.New()

	tr.Track(context.Background(), reelID, models.KindLike, 0)
	tr.Track(context.Background(), reelID, models.KindLike, 0)

	require.Len(t, sink.events, 2, "like/unlike-циклы дают по событию на каждый вызов")
}

func TestTracker_MilestonesPerReel(t *testing.T) {
	sink := &recordingSink{}
	tr := NewTracker(sink, NewSession())

	a := uuid.New()
	b := uuid.New()

	tr.Track(context.Background(), a, models.KindViewComplete, 30)
	tr.Track(context.Background(), b, models.KindViewComplete, 12)

	require.Len(t, sink.events, 2, "вехи дедуплицируются по паре (ролик, вид)")
}

func TestTracker_InvalidInput_Ignored(t *testing.T) {
	sink := &recordingSink{}
	tr := NewTracker(sink, NewSession())

	tr.Track(context.Background(), uuid.Nil, models.KindImpression, 0)
	tr.Track(context.Background(), uuid.New(), models.EngagementKind(255), 0)

	require.Empty(t, sink.events)
}

func TestTracker_SinkError_Swallowed(t *testing.T) {
	sink := &recordingSink{err: errors.New("boom")}
	tr := NewTracker(sink, NewSession())
	reelID := uuid.New()

	// Паники/ошибки наружу нет; веха при этом считается использованной —
	// авторитетная запись на сервере, клиент не ретраит.
	tr.Track(context.Background(), reelID, models.KindView3s, 3)
	tr.Track(context.Background(), reelID, models.KindView3s, 3)

	require.Len(t, sink.events, 1)
}

func TestTracker_Reset(t *testing.T) {
	sink := &recordingSink{}
	tr := NewTracker(sink, NewSession())
	reelID := uuid.New()

	tr.Track(context.Background(), reelID, models.KindView3s, 3)
	tr.Reset(reelID)
	tr.Track(context.Background(), reelID, models.KindView3s, 3)

	require.Len(t, sink.events, 2, "после Reset ролик снова даёт вехи")
}
