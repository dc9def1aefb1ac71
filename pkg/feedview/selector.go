package feedview

import (
	"sync"
	"time"
)

// Outcome — результат интерпретации жеста.
type Outcome int32

const (
	// OutcomeNone — жест проигнорирован (cooldown, нулевая дельта, край списка).
	OutcomeNone Outcome = iota
	// OutcomeNavigated — активный индекс сдвинулся ровно на один.
	OutcomeNavigated
	// OutcomeTap — одиночный тап: переключить play/pause активной карточки.
	OutcomeTap
	// OutcomeDoubleTap — двойной тап в окне 300мс: жест «лайк».
	OutcomeDoubleTap
)

// SelectorConfig — пороги распознавания жестов.
type SelectorConfig struct {
	// ActivateRatio — доля видимости, при пересечении которой элемент
	// становится активным.
	ActivateRatio float64
	// MinDistance — минимальная дистанция свайпа (px), чтобы он считался
	// навигацией, а не тапом.
	MinDistance float64
	// MinVelocity — альтернативный порог по скорости (px/ms): быстрый
	// короткий свайп тоже навигация.
	MinVelocity float64
	// Cooldown — окно после навигации, в котором жесты игнорируются:
	// один быстрый скролл не должен перелистывать несколько карточек.
	Cooldown time.Duration
	// DoubleTapWindow — окно распознавания двойного тапа.
	DoubleTapWindow time.Duration
	// TailThreshold — за сколько элементов до конца списка сигналить
	// о необходимости дозагрузки.
	TailThreshold int
}

// DefaultSelectorConfig — пороги вертикальной ленты по умолчанию.
func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		ActivateRatio:   0.5,
		MinDistance:     60,
		MinVelocity:     0.5,
		Cooldown:        500 * time.Millisecond,
		DoubleTapWindow: 300 * time.Millisecond,
		TailThreshold:   3,
	}
}

// Selector выбирает единственный активный элемент ленты из двух источников
// входа: отчётов видимости (viewport intersection) и явных жестов
// (свайп/колесо/стрелки). Активен ровно один элемент.
type Selector struct {
	mu sync.Mutex

	cfg    SelectorConfig
	length int
	active int

	lastNav time.Time
	lastTap time.Time
}

// NewSelector создаёт селектор с порогами cfg.
func NewSelector(cfg SelectorConfig) *Selector {
	if cfg.ActivateRatio <= 0 {
		cfg.ActivateRatio = 0.5
	}
	if cfg.TailThreshold <= 0 {
		cfg.TailThreshold = 3
	}

	return &Selector{cfg: cfg}
}

// SetLength сообщает селектору текущую длину списка (после дозагрузки или
// сброса). Активный индекс зажимается в новые границы.
func (s *Selector) SetLength(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 0 {
		n = 0
	}
	s.length = n

	if s.active >= n {
		s.active = n - 1
	}
	if s.active < 0 {
		s.active = 0
	}
}

// Active — индекс активного элемента.
func (s *Selector) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

// ReportVisibility — вход от viewport-наблюдателя: элемент index видим на
// долю ratio. Пересечение порога делает элемент активным; побеждает самое
// последнее пересечение. Возвращает true, если активный элемент сменился.
func (s *Selector) ReportVisibility(index int, ratio float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= s.length || ratio < s.cfg.ActivateRatio {
		return false
	}

	if s.active == index {
		return false
	}

	s.active = index
	return true
}

// Swipe интерпретирует вертикальный жест: direction +1 — к следующему
// элементу, -1 — к предыдущему; distance — в px, velocity — в px/ms.
//
// Дожатый до порога жест двигает активный индекс ровно на ±1 с зажимом
// в границы списка; в пределах cooldown после навигации жест игнорируется.
// Жест ниже обоих порогов трактуется как тап (см. Tap).
func (s *Selector) Swipe(direction int, distance, velocity float64, at time.Time) Outcome {
	if distance < 0 {
		distance = -distance
	}
	if velocity < 0 {
		velocity = -velocity
	}

	if distance < s.cfg.MinDistance && velocity < s.cfg.MinVelocity {
		return s.Tap(at)
	}

	return s.navigate(direction, at)
}

// Navigate — прямой навигационный вход (клавиши/колесо): delta нормируется
// до ±1.
func (s *Selector) Navigate(delta int, at time.Time) Outcome {
	switch {
	case delta > 0:
		return s.navigate(1, at)
	case delta < 0:
		return s.navigate(-1, at)
	default:
		return OutcomeNone
	}
}

func (s *Selector) navigate(direction int, at time.Time) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.Cooldown > 0 && !s.lastNav.IsZero() && at.Sub(s.lastNav) < s.cfg.Cooldown {
		return OutcomeNone
	}

	next := s.active
	if direction > 0 {
		next++
	} else {
		next--
	}

	// Зажим в границы: с краёв списка уйти нельзя.
	if next < 0 || next >= s.length {
		return OutcomeNone
	}

	s.active = next
	s.lastNav = at
	return OutcomeNavigated
}

// Tap различает одиночный и двойной тап по активной карточке.
func (s *Selector) Tap(at time.Time) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lastTap.IsZero() && at.Sub(s.lastTap) <= s.cfg.DoubleTapWindow {
		// Сбрасываем, чтобы тройной тап не дал второй «лайк».
		s.lastTap = time.Time{}
		return OutcomeDoubleTap
	}

	s.lastTap = at
	return OutcomeTap
}

// NearTail сообщает, что активный индекс подошёл к хвосту загруженного
// списка ближе, чем на TailThreshold — пора дозагружать следующую страницу
// (если Feed.HasMore).
func (s *Selector) NearTail() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length > 0 && s.active >= s.length-s.cfg.TailThreshold
}
