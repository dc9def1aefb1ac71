package feedview

// Тесты префетчера медиа (pkg/feedview/prefetch.go).
//
// Проверяем:
//  - прогрев ровно ahead следующих элементов (активный не прогревается);
//  - повторный Touch не прогревает уже прогретые URL;
//  - прогрев превью вместе с медиа;
//  - Reset очищает warmed-set.

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-reels-service/internal/models"
)

// countingWarmer потокобезопасно считает прогревы по URL.
type countingWarmer struct {
	mu    sync.Mutex
	calls map[string]int
}

func newCountingWarmer() *countingWarmer {
	return &countingWarmer{calls: make(map[string]int)}
}

func (w *countingWarmer) Warm(url string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls[url]++
}

func (w *countingWarmer) total() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, c := range w.calls {
		n += c
	}
	return n
}

func (w *countingWarmer) count(url string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calls[url]
}

func feedItems(n int) []models.Reel {
	items := reels(n)
	for i := range items {
		items[i].MediaURL = items[i].ID.String() + ".mp4"
		items[i].ThumbnailURL = items[i].ID.String() + ".jpg"
	}
	return items
}

// waitTotal дожидается суммарного числа прогревов (Warm вызывается в горутинах).
func waitTotal(t *testing.T, w *countingWarmer, want int) {
	t.Helper()
	require.Eventually(t, func() bool { return w.total() == want },
		time.Second, 5*time.Millisecond)
}

func TestPrefetcher_Touch_WarmsAhead(t *testing.T) {
	w := newCountingWarmer()
	p := NewPrefetcher(w, 2)
	items := feedItems(5)

	p.Touch(items, 0)
	// Следующие два элемента: медиа + превью у каждого.
	waitTotal(t, w, 4)

	require.Zero(t, w.count(items[0].MediaURL), "активный элемент не прогревается")
	require.Equal(t, 1, w.count(items[1].MediaURL))
	require.Equal(t, 1, w.count(items[1].ThumbnailURL))
	require.Equal(t, 1, w.count(items[2].MediaURL))
	require.Zero(t, w.count(items[3].MediaURL))
}

func TestPrefetcher_Touch_AtMostOncePerURL(t *testing.T) {
	w := newCountingWarmer()
	p := NewPrefetcher(w, 2)
	items := feedItems(5)

	p.Touch(items, 0)
	waitTotal(t, w, 4)

	// Шаг вперёд: пересекающееся окно прогревает только новое.
	p.Touch(items, 1)
	waitTotal(t, w, 6)
	require.Equal(t, 1, w.count(items[2].MediaURL))
	require.Equal(t, 1, w.count(items[3].MediaURL))

	// Шаг назад: всё окно уже прогрето.
	p.Touch(items, 0)
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, 6, w.total())
}

func TestPrefetcher_TailShorterThanAhead(t *testing.T) {
	w := newCountingWarmer()
	p := NewPrefetcher(w, 2)
	items := feedItems(2)

	// За последним элементом списка ничего нет — прогревается только хвост.
	p.Touch(items, 0)
	waitTotal(t, w, 2)

	p.Touch(items, 1)
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, 2, w.total())
}

func TestPrefetcher_Reset(t *testing.T) {
	w := newCountingWarmer()
	p := NewPrefetcher(w, 1)
	items := feedItems(2)

	p.Touch(items, 0)
	waitTotal(t, w, 2)

	p.Reset()
	p.Touch(items, 0)
	waitTotal(t, w, 4)
	require.Equal(t, 2, w.count(items[1].MediaURL), "после Reset прогрев повторяется")
}
