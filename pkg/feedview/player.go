package feedview

import (
	"sync"
	"time"
)

// PlayerState — состояние воспроизведения карточки.
type PlayerState int32

const (
	StatePaused PlayerState = iota
	StatePlaying
)

// overlayDuration — время показа транзитного оверлея play/pause.
const overlayDuration = 500 * time.Millisecond

// Player — машина воспроизведения одной карточки ленты.
//
// Карточка начинает играть автоматически при активации и ставится на паузу
// с перемоткой в начало при деактивации. Ручное переключение показывает
// транзитный оверлей на 500мс. Звук — общий на сессию (Session.Muted),
// не на карточку.
type Player struct {
	mu sync.Mutex

	session *Session

	state        PlayerState
	overlayUntil time.Time
	positionSec  float64

	// viewFired взводится при первой активации за время монтирования
	// карточки: событие просмотра уходит ровно один раз на цикл
	// активация-деактивация.
	viewFired bool
}

// NewPlayer создаёт карточку в паузе.
func NewPlayer(session *Session) *Player {
	return &Player{session: session}
}

// Activate переводит карточку в воспроизведение.
// Возвращает true, если это первая активация цикла — вызывающая сторона
// обязана отправить событие view_start ровно в этом случае.
func (p *Player) Activate() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = StatePlaying

	if p.viewFired {
		return false
	}
	p.viewFired = true
	return true
}

// Deactivate ставит карточку на паузу и перематывает в начало.
// Следующая активация снова даст событие просмотра.
func (p *Player) Deactivate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = StatePaused
	p.positionSec = 0
	p.viewFired = false
}

// Toggle — ручное переключение play/pause; показывает оверлей на 500мс.
func (p *Player) Toggle(at time.Time) PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StatePlaying {
		p.state = StatePaused
	} else {
		p.state = StatePlaying
	}
	p.overlayUntil = at.Add(overlayDuration)

	return p.state
}

// State — текущее состояние воспроизведения.
func (p *Player) State() PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// OverlayVisible сообщает, виден ли транзитный оверлей в момент at.
func (p *Player) OverlayVisible(at time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return at.Before(p.overlayUntil)
}

// Muted — сессионное состояние звука.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.session.Muted
}

// SetMuted меняет сессионное состояние звука (для всех карточек сессии).
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.session.Muted = muted
}

// UpdatePosition принимает очередной сэмпл позиции воспроизведения.
func (p *Player) UpdatePosition(seconds float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seconds < 0 {
		seconds = 0
	}
	p.positionSec = seconds
}

// Position — последний сэмпл позиции.
func (p *Player) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.positionSec
}

// Progress — чистая проекция позиции в проценты [0, 100].
// Отдельного состояния прогресса нет: только отношение position/duration.
func Progress(positionSec, durationSec float64) float64 {
	if durationSec <= 0 || positionSec <= 0 {
		return 0
	}

	pct := positionSec / durationSec * 100
	if pct > 100 {
		return 100
	}
	return pct
}
