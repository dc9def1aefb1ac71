package feedview

// Тесты машины воспроизведения (pkg/feedview/player.go).
//
// Проверяем:
//  - автоплей при активации и паузу с перемоткой при деактивации;
//  - событие просмотра ровно один раз на цикл активация-деактивация;
//  - транзитный оверлей 500мс при ручном переключении;
//  - сессионный (а не покарточный) mute;
//  - Progress как чистую проекцию с зажимом в [0, 100].

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPlayer_ActivateDeactivateCycle(t *testing.T) {
	p := NewPlayer(NewSession())

	require.Equal(t, StatePaused, p.State(), "карточка создаётся в паузе")

	require.True(t, p.Activate(), "первая активация цикла даёт событие просмотра")
	require.Equal(t, StatePlaying, p.State())

	require.False(t, p.Activate(), "повторная активация события не даёт")

	p.UpdatePosition(12.5)
	p.Deactivate()
	require.Equal(t, StatePaused, p.State())
	require.Zero(t, p.Position(), "деактивация перематывает в начало")

	// Новый цикл — новое событие просмотра.
	require.True(t, p.Activate())
}

func TestPlayer_ToggleOverlay(t *testing.T) {
	p := NewPlayer(NewSession())
	at := time.Unix(100, 0)

	require.Equal(t, StatePlaying, p.Toggle(at))
	require.True(t, p.OverlayVisible(at.Add(300*time.Millisecond)))
	require.False(t, p.OverlayVisible(at.Add(600*time.Millisecond)), "оверлей гаснет через 500мс")

	require.Equal(t, StatePaused, p.Toggle(at.Add(time.Second)))
}

// view-событие не зависит от ручного Toggle: пауза руками не завершает цикл.
func TestPlayer_ViewNotRefiredOnToggle(t *testing.T) {
	p := NewPlayer(NewSession())
	at := time.Unix(200, 0)

	require.True(t, p.Activate())
	p.Toggle(at)                  // пауза
	p.Toggle(at.Add(time.Second)) // снова играет
	require.False(t, p.Activate(), "цикл не завершался — события нет")
}

func TestPlayer_SessionMute(t *testing.T) {
	session := NewSession()
	a := NewPlayer(session)
	b := NewPlayer(session)

	require.True(t, a.Muted(), "по умолчанию звук выключен")
	require.True(t, b.Muted())

	// Mute общий на сессию: включение звука на одной карточке видно всем.
	a.SetMuted(false)
	require.False(t, b.Muted())
}

func TestProgress(t *testing.T) {
	require.Zero(t, Progress(0, 30))
	require.Zero(t, Progress(10, 0), "неизвестная длительность — нулевой прогресс")
	require.Zero(t, Progress(-5, 30))
	require.InDelta(t, 50, Progress(15, 30), 1e-9)
	require.Equal(t, float64(100), Progress(45, 30), "прогресс зажат сверху")
}
