// mongo предоставляет реализацию storage.CommentsStorage на базе MongoDB.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pribylovaa/go-reels-service/internal/config"
	"github.com/pribylovaa/go-reels-service/internal/storage"
)

// Проверка выполнения контракта верхнего уровня.
var _ storage.CommentsStorage = (*Mongo)(nil)

// Mongo — тонкий адаптер для подключения и коллекции комментариев.
type Mongo struct {
	cfg      *config.Config
	client   *mongodriver.Client
	comments *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение и обеспечивает индексацию.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("mongo: empty cfg.Mongo.URI")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	m := &Mongo{
		cfg:      cfg,
		client:   cli,
		comments: cli.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы, необходимые для выдачи комментариев:
//   - корневая выдача: reel_id + parent_id + pinned(desc) + created_at(desc);
//   - ответы в ветке: parent_id + created_at(asc).
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	idx := []mongodriver.IndexModel{
		{
			Keys: bson.D{
				{Key: "reel_id", Value: 1},
				{Key: "parent_id", Value: 1},
				{Key: "pinned", Value: -1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("reel_parent_pinned_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "parent_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("parent_created_asc"),
		},
	}

	_, err := m.comments.Indexes().CreateMany(ctx, idx)
	if err != nil {
		return fmt.Errorf("mongo ensure indexes: %w", err)
	}
	return nil
}
