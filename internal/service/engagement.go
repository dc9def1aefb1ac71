package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-reels-service/internal/metrics"
	"github.com/pribylovaa/go-reels-service/internal/models"

	"github.com/pribylovaa/go-reels-service/internal/pkg/log"
)

// AppendEventInput — входные данные одного события вовлечённости.
type AppendEventInput struct {
	ReelID       uuid.UUID
	Kind         models.EngagementKind
	WatchSeconds float64
	SessionID    string
	ViewerID     uuid.UUID
}

// AppendEvent добавляет событие в append-only журнал.
//
// Правила:
//   - вид события обязан входить в закрытое перечисление;
//   - session_id обязателен (по нему коррелируются анонимные события);
//   - view_start дополнительно увеличивает счётчик просмотров ролика —
//     счётчики меняются только через события;
//   - дедупликация вех (view_3s/view_10s/view_complete) — best-effort
//     на клиенте (pkg/feedview); сервер пишет всё, что до него дошло.
func (s *Service) AppendEvent(ctx context.Context, in AppendEventInput) error {
	const op = "service.engagement.AppendEvent"

	lg := log.From(ctx)

	if in.ReelID == uuid.Nil || !in.Kind.Valid() || strings.TrimSpace(in.SessionID) == "" {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.WatchSeconds < 0 {
		in.WatchSeconds = 0
	}

	ev := models.EngagementEvent{
		ReelID:       in.ReelID,
		Kind:         in.Kind,
		WatchSeconds: in.WatchSeconds,
		SessionID:    in.SessionID,
		ViewerID:     in.ViewerID,
	}

	if err := s.storage.AppendEvent(ctx, ev); err != nil {
		lg.Error("append_event_storage_error",
			slog.String("op", op),
			slog.String("kind", in.Kind.String()),
			slog.String("err", err.Error()),
		)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	metrics.EngagementEvents.WithLabelValues(in.Kind.String()).Inc()

	if in.Kind == models.KindViewStart {
		if err := s.storage.IncrementViews(ctx, in.ReelID); err != nil {
			// Счётчик догонит следующий просмотр: событие уже записано.
			lg.Warn("append_event_views_increment_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	lg.Info("append_event_ok",
		slog.String("op", op),
		slog.String("kind", in.Kind.String()),
	)

	return nil
}
