package postgres

// Интеграционные тесты реляционного хранилища (internal/storage/postgres):
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют:
//    FeedPage: трендовую сортировку (trending_score DESC, id DESC),
//      хронологию по умолчанию, фильтр is_active, пагинацию offset/limit,
//      фильтр по авторам в режиме following;
//    ReelByID: успешный сценарий, ErrNotFound для отсутствующих и
//      деактивированных роликов;
//    ToggleLike/ToggleSave: симметрию переключателя и согласованность счётчика;
//    ViewerFlagsFor: оверлей лайков/сохранений после «перезагрузки» ленты;
//    ToggleFollow/FolloweeIDs: переключение подписки;
//    AppendEvent/IncrementViews: журнал событий и счётчик просмотров.

// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-reels-service/internal/models"
	"github.com/pribylovaa/go-reels-service/internal/storage"
)

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL через testcontainers-go, применяет
// миграции и возвращает хранилище, пул для сидинга и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, *pgxpool.Pool, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, readMigration(t, "1_init_reels.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		pool.Close()
		_ = c.Terminate(context.Background())
	}
	return st, pool, cleanup
}

// seedReel — вставляет ролик с заданными параметрами напрямую.
func seedReel(t *testing.T, pool *pgxpool.Pool, author uuid.UUID, score float64, createdAt time.Time, active bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(context.Background(), `
	INSERT INTO reels (id, author_id, media_url, trending_score, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $6)
	`, id, author, "https://cdn.example.org/"+id.String()+".mp4", score, active, createdAt)
	require.NoError(t, err)
	return id
}

func TestIntegration_FeedPage_Trending_Order(t *testing.T) {
	st, pool, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()
	author := uuid.New()

	for _, score := range []float64{5, 1, 9, 3} {
		seedReel(t, pool, author, score, now, true)
	}
	// Неактивный ролик с максимальным скором не должен попасть в выдачу.
	seedReel(t, pool, author, 100, now, false)

	items, err := st.FeedPage(ctx, models.FeedOptions{Mode: models.FeedTrending, Limit: 10}, nil)
	require.NoError(t, err)
	require.Len(t, items, 4)

	scores := make([]float64, 0, len(items))
	for _, it := range items {
		scores = append(scores, it.TrendingScore)
	}
	require.Equal(t, []float64{9, 5, 3, 1}, scores)
}

func TestIntegration_FeedPage_Chronology_And_Paging(t *testing.T) {
	st, pool, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)
	author := uuid.New()

	ids := make([]uuid.UUID, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, seedReel(t, pool, author, 0, base.Add(time.Duration(i)*time.Minute), true))
	}

	// Первая страница: свежайшие два.
	page1, err := st.FeedPage(ctx, models.FeedOptions{Mode: models.FeedForYou, Limit: 2}, nil)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.Equal(t, ids[4], page1[0].ID)
	require.Equal(t, ids[3], page1[1].ID)

	// Вторая страница продолжает без пропусков.
	page2, err := st.FeedPage(ctx, models.FeedOptions{Mode: models.FeedForYou, Limit: 2, Offset: 2}, nil)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	require.Equal(t, ids[2], page2[0].ID)
	require.Equal(t, ids[1], page2[1].ID)

	// Хвост короче limit.
	tail, err := st.FeedPage(ctx, models.FeedOptions{Mode: models.FeedForYou, Limit: 2, Offset: 4}, nil)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	require.Equal(t, ids[0], tail[0].ID)
}

func TestIntegration_FeedPage_Following_FiltersByAuthors(t *testing.T) {
	st, pool, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()
	followed := uuid.New()
	other := uuid.New()

	want := seedReel(t, pool, followed, 0, now, true)
	seedReel(t, pool, other, 0, now, true)

	items, err := st.FeedPage(ctx, models.FeedOptions{Mode: models.FeedFollowing, Limit: 10}, []uuid.UUID{followed})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, want, items[0].ID)
}

func TestIntegration_ReelByID(t *testing.T) {
	st, pool, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	active := seedReel(t, pool, uuid.New(), 0, now, true)
	inactive := seedReel(t, pool, uuid.New(), 0, now, false)

	got, err := st.ReelByID(ctx, active)
	require.NoError(t, err)
	require.Equal(t, active, got.ID)

	_, err = st.ReelByID(ctx, inactive)
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.ReelByID(ctx, uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ProfilesAndItemsByIDs(t *testing.T) {
	st, pool, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	author := uuid.New()
	item := uuid.New()

	_, err := pool.Exec(ctx, `
	INSERT INTO profiles (user_id, username, display_name, avatar_url, is_verified)
	VALUES ($1, 'collector_ann', 'Ann', 'https://cdn.example.org/ann.png', TRUE)
	`, author)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
	INSERT INTO items (id, title, image_url, price_cents, currency, available)
	VALUES ($1, 'Vintage pin', 'https://cdn.example.org/pin.png', 2500, 'USD', TRUE)
	`, item)
	require.NoError(t, err)

	profiles, err := st.ProfilesByIDs(ctx, []uuid.UUID{author, uuid.New()})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	require.Equal(t, "collector_ann", profiles[author].Username)
	require.True(t, profiles[author].IsVerified)

	items, err := st.ItemsByIDs(ctx, []uuid.UUID{item})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Vintage pin", items[item].Title)
	require.EqualValues(t, 2500, items[item].PriceCents)
}

func TestIntegration_ToggleLike_Symmetry_And_Counter(t *testing.T) {
	st, pool, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	reelID := seedReel(t, pool, uuid.New(), 0, time.Now().UTC(), true)
	viewer := uuid.New()

	liked, err := st.ToggleLike(ctx, reelID, viewer)
	require.NoError(t, err)
	require.True(t, liked)

	got, err := st.ReelByID(ctx, reelID)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.LikesCount)

	// Повторный вызов отменяет лайк, счётчик возвращается к нулю.
	liked, err = st.ToggleLike(ctx, reelID, viewer)
	require.NoError(t, err)
	require.False(t, liked)

	got, err = st.ReelByID(ctx, reelID)
	require.NoError(t, err)
	require.Zero(t, got.LikesCount)
}

func TestIntegration_ViewerFlagsFor(t *testing.T) {
	st, pool, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()
	viewer := uuid.New()

	likedReel := seedReel(t, pool, uuid.New(), 0, now, true)
	savedReel := seedReel(t, pool, uuid.New(), 0, now, true)
	plainReel := seedReel(t, pool, uuid.New(), 0, now, true)

	_, err := st.ToggleLike(ctx, likedReel, viewer)
	require.NoError(t, err)
	_, err = st.ToggleSave(ctx, savedReel, viewer)
	require.NoError(t, err)

	flags, err := st.ViewerFlagsFor(ctx, []uuid.UUID{likedReel, savedReel, plainReel}, viewer)
	require.NoError(t, err)

	require.Contains(t, flags.Liked, likedReel)
	require.NotContains(t, flags.Liked, savedReel)
	require.Contains(t, flags.Saved, savedReel)
	require.NotContains(t, flags.Saved, plainReel)

	// Чужой зритель флагов не видит.
	flags, err = st.ViewerFlagsFor(ctx, []uuid.UUID{likedReel}, uuid.New())
	require.NoError(t, err)
	require.Empty(t, flags.Liked)
}

func TestIntegration_ToggleFollow_And_FolloweeIDs(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	viewer := uuid.New()
	creator := uuid.New()

	following, err := st.ToggleFollow(ctx, viewer, creator)
	require.NoError(t, err)
	require.True(t, following)

	ids, err := st.FolloweeIDs(ctx, viewer)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{creator}, ids)

	following, err = st.ToggleFollow(ctx, viewer, creator)
	require.NoError(t, err)
	require.False(t, following)

	ids, err = st.FolloweeIDs(ctx, viewer)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestIntegration_AppendEvent_And_IncrementViews(t *testing.T) {
	st, pool, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	reelID := seedReel(t, pool, uuid.New(), 0, time.Now().UTC(), true)

	// Анонимное событие: viewer_id пишется как NULL.
	err := st.AppendEvent(ctx, models.EngagementEvent{
		ReelID:    reelID,
		Kind:      models.KindViewStart,
		SessionID: "sess-1",
	})
	require.NoError(t, err)

	err = st.AppendEvent(ctx, models.EngagementEvent{
		ReelID:       reelID,
		Kind:         models.KindView3s,
		WatchSeconds: 3.4,
		SessionID:    "sess-1",
		ViewerID:     uuid.New(),
	})
	require.NoError(t, err)

	var total, anonymous int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*), count(*) FILTER (WHERE viewer_id IS NULL) FROM engagement_events WHERE reel_id = $1`,
		reelID).Scan(&total, &anonymous))
	require.Equal(t, 2, total)
	require.Equal(t, 1, anonymous)

	require.NoError(t, st.IncrementViews(ctx, reelID))
	got, err := st.ReelByID(ctx, reelID)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.ViewsCount)
}
