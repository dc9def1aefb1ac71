// feedview — клиентская машина состояний вертикальной ленты роликов.
//
// Пакет не выполняет сетевых вызовов сам: он оркестрирует абстрактные
// PageFetcher/EventSink/Warmer и хранит состояние просмотра —
// накопленный список ленты, активный элемент, дедупликацию вех просмотра,
// прогрев следующих элементов и машину воспроизведения карточки.
//
// Всё время входит в пакет через параметры событий (time.Time), поэтому
// машины детерминированы и тестируются без подмены часов.
package feedview

import "github.com/google/uuid"

// Session — явное состояние сессии просмотра: идентификатор для корреляции
// анонимных событий и общая на сессию настройка звука.
// Создаётся при первом использовании и живёт до конца сессии браузера;
// авторизацией не является.
type Session struct {
	// ID — случайный токен сессии.
	ID string
	// Muted — общий для всех карточек флаг звука. По умолчанию звук выключен.
	Muted bool
}

// NewSession создаёт сессию с новым случайным идентификатором.
func NewSession() *Session {
	return &Session{
		ID:    uuid.NewString(),
		Muted: true,
	}
}
