package feedview

import (
	"sync"

	"github.com/pribylovaa/go-reels-service/internal/models"
)

// Warmer прогревает сеть/кэш для одного URL (например, HEAD-запросом или
// постановкой в очередь загрузчика плеера).
type Warmer interface {
	Warm(url string)
}

// Prefetcher опережающе прогревает медиа следующих элементов ленты.
//
// Каждый URL прогревается не более одного раза за время жизни ленты
// (warmed-set по URL). Прогрев fire-and-forget: без отмены и без
// наблюдаемого пути ошибки.
type Prefetcher struct {
	mu     sync.Mutex
	warmer Warmer
	ahead  int
	warmed map[string]struct{}
}

// NewPrefetcher создаёт префетчер, прогревающий ahead следующих элементов
// (ahead <= 0 трактуется как 2).
func NewPrefetcher(warmer Warmer, ahead int) *Prefetcher {
	if ahead <= 0 {
		ahead = 2
	}

	return &Prefetcher{
		warmer: warmer,
		ahead:  ahead,
		warmed: make(map[string]struct{}),
	}
}

// Touch вызывается при каждой смене активного элемента: прогревает медиа
// и превью следующих ahead элементов списка.
func (p *Prefetcher) Touch(items []models.Reel, active int) {
	for i := active + 1; i <= active+p.ahead && i < len(items); i++ {
		p.warmOnce(items[i].MediaURL)
		if items[i].ThumbnailURL != "" {
			p.warmOnce(items[i].ThumbnailURL)
		}
	}
}

// Reset очищает warmed-set — вызывается при сбросе ленты (смена режима).
func (p *Prefetcher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.warmed = make(map[string]struct{})
}

func (p *Prefetcher) warmOnce(url string) {
	if url == "" {
		return
	}

	p.mu.Lock()
	if _, done := p.warmed[url]; done {
		p.mu.Unlock()
		return
	}
	p.warmed[url] = struct{}{}
	p.mu.Unlock()

	go p.warmer.Warm(url)
}
