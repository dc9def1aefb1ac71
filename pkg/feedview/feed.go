package feedview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-reels-service/internal/models"
)

// ErrStale — ответ принадлежит устаревшему поколению ленты (режим был
// переключён, пока запрос был в полёте) и отброшен без применения.
var ErrStale = errors.New("stale feed response")

// PageFetcher — источник страниц ленты (обычно HTTP-клиент reels-service).
type PageFetcher interface {
	FetchPage(ctx context.Context, mode models.FeedMode, offset int64, limit int32) (*models.FeedPage, error)
}

// Feed — накопитель ленты с монотонной дозагрузкой.
//
// Гарантии:
//   - один и тот же ролик не появляется в списке дважды, даже если сервер
//     вернул пересекающиеся страницы;
//   - HasMore остаётся true, пока страницы приходят полными;
//   - переключение режима сбрасывает список и смещение и поднимает номер
//     поколения: ответы с устаревшим поколением отбрасываются, так что
//     гонка «старый ответ пришёл после нового запроса» исключена;
//   - ошибка загрузки не меняет накопленное состояние (и HasMore).
type Feed struct {
	mu sync.Mutex

	fetcher PageFetcher
	limit   int32

	mode    models.FeedMode
	gen     uint64
	items   []models.Reel
	seen    map[uuid.UUID]struct{}
	offset  int64
	hasMore bool
}

// NewFeed создаёт накопитель для заданного режима.
func NewFeed(fetcher PageFetcher, mode models.FeedMode, limit int32) *Feed {
	return &Feed{
		fetcher: fetcher,
		limit:   limit,
		mode:    mode,
		seen:    make(map[uuid.UUID]struct{}),
		hasMore: true,
	}
}

// SwitchMode сбрасывает список и смещение и начинает новое поколение.
// Ответы запросов, запущенных до переключения, будут отброшены.
func (f *Feed) SwitchMode(mode models.FeedMode) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.mode = mode
	f.gen++
	f.items = nil
	f.seen = make(map[uuid.UUID]struct{})
	f.offset = 0
	f.hasMore = true
}

// LoadMore догружает следующую страницу и дописывает её в конец списка.
// Возвращает ErrStale, если за время запроса лента была переключена.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if !f.hasMore {
		f.mu.Unlock()
		return nil
	}
	gen := f.gen
	mode := f.mode
	offset := f.offset
	limit := f.limit
	f.mu.Unlock()

	// Сетевая часть — вне лока: запросы могут быть долгими.
	page, err := f.fetcher.FetchPage(ctx, mode, offset, limit)
	if err != nil {
		return fmt.Errorf("feedview: load more: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.gen {
		// Пока запрос был в полёте, лента была сброшена.
		return ErrStale
	}

	for _, item := range page.Items {
		if _, dup := f.seen[item.ID]; dup {
			continue
		}
		f.seen[item.ID] = struct{}{}
		f.items = append(f.items, item)
	}

	// Смещение двигается на размер сырой страницы, включая дубликаты:
	// сервер считает строки, а не уникальные элементы.
	f.offset += int64(len(page.Items))
	f.hasMore = page.HasMore

	return nil
}

// Items возвращает копию накопленного списка.
func (f *Feed) Items() []models.Reel {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Reel, len(f.items))
	copy(out, f.items)
	return out
}

// Len — текущая длина списка.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.items)
}

// HasMore сообщает, могут ли существовать следующие страницы.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.hasMore
}

// Mode — текущий режим ленты.
func (f *Feed) Mode() models.FeedMode {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.mode
}

// At возвращает элемент по индексу и признак его существования.
func (f *Feed) At(i int) (models.Reel, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i < 0 || i >= len(f.items) {
		return models.Reel{}, false
	}
	return f.items[i], true
}

// SetLiked применяет подтверждённое сервером состояние лайка к элементу
// списка (reconcile после toggle, в том числе откат неудавшегося
// оптимистичного обновления).
func (f *Feed) SetLiked(reelID uuid.UUID, liked bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == reelID {
			f.items[i].IsLiked = liked
			return
		}
	}
}

// GestureLike обрабатывает жест «двойной тап» по карточке: уже лайкнутая
// карточка не перелайкивается (в unlike двойной тап не превращается — это
// умеет только явная кнопка). При необходимости выставляет оптимистичный
// IsLiked и возвращает true — вызывающая сторона обязана выполнить toggle
// и применить подтверждённый результат через SetLiked.
func (f *Feed) GestureLike(reelID uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID != reelID {
			continue
		}
		if f.items[i].IsLiked {
			return false
		}
		f.items[i].IsLiked = true
		return true
	}

	return false
}

// SetSaved применяет подтверждённое состояние сохранения, симметрично SetLiked.
func (f *Feed) SetSaved(reelID uuid.UUID, saved bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == reelID {
			f.items[i].IsSaved = saved
			return
		}
	}
}
