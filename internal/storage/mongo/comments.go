package mongo

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/go-reels-service/internal/config"
	"github.com/pribylovaa/go-reels-service/internal/models"
	"github.com/pribylovaa/go-reels-service/internal/storage"
)

// commentDoc — документ коллекции comments. Отдельный тип с bson-тегами,
// чтобы схема документа не зависела от доменной модели.
type commentDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ReelID       string             `bson:"reel_id"`
	ParentID     string             `bson:"parent_id"`
	UserID       string             `bson:"user_id"`
	Username     string             `bson:"username"`
	Content      string             `bson:"content"`
	LikesCount   int64              `bson:"likes_count"`
	RepliesCount int32              `bson:"replies_count"`
	Pinned       bool               `bson:"pinned"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d commentDoc) toModel() models.Comment {
	reelID, _ := uuid.Parse(d.ReelID)
	userID, _ := uuid.Parse(d.UserID)

	return models.Comment{
		ID:           d.ID.Hex(),
		ReelID:       reelID,
		ParentID:     d.ParentID,
		UserID:       userID,
		Username:     d.Username,
		Content:      d.Content,
		LikesCount:   d.LikesCount,
		RepliesCount: d.RepliesCount,
		Pinned:       d.Pinned,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

// encodeCursor кодирует тройку (pinned, created_at, _id) в непрозрачный токен.
// Для корневой выдачи pinned участвует в сортировке, поэтому входит в курсор.
func encodeCursor(pinned bool, t time.Time, id primitive.ObjectID) string {
	p := "0"
	if pinned {
		p = "1"
	}
	raw := fmt.Sprintf("%s|%d|%s", p, t.UTC().UnixNano(), id.Hex())

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeCursor декодирует токен обратно в тройку ключей.
func decodeCursor(token string) (bool, time.Time, primitive.ObjectID, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return false, time.Time{}, primitive.NilObjectID, err
	}

	parts := strings.SplitN(string(res), "|", 3)
	if len(parts) != 3 {
		return false, time.Time{}, primitive.NilObjectID, fmt.Errorf("bad parts")
	}

	if parts[0] != "0" && parts[0] != "1" {
		return false, time.Time{}, primitive.NilObjectID, fmt.Errorf("bad pinned flag")
	}

	nanos, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return false, time.Time{}, primitive.NilObjectID, err
	}

	oid, err := primitive.ObjectIDFromHex(parts[2])
	if err != nil {
		return false, time.Time{}, primitive.NilObjectID, err
	}

	return parts[0] == "1", time.Unix(0, nanos).UTC(), oid, nil
}

// limitOrDefault приводит запрошенный размер страницы к [Default, Max].
func limitOrDefault(cfg *config.Config, pageSize int32) int64 {
	lim := pageSize
	if lim <= 0 {
		lim = cfg.Limits.Default
	}

	if lim > cfg.Limits.Max {
		lim = cfg.Limits.Max
	}

	return int64(lim)
}

// CreateComment создаёт комментарий (корневой или ответ первого уровня).
//   - Для ответа подтягивает ReelID из родителя (инвариант: ответ принадлежит
//     тому же ролику, что и родитель).
//   - Ответ на ответ запрещён — ErrMaxDepthExceeded.
//   - На родителе инкрементируется replies_count.
func (m *Mongo) CreateComment(ctx context.Context, comm models.Comment) (*models.Comment, error) {
	const op = "storage/mongo/CreateComment"

	// MongoDB DateTime хранит миллисекунды.
	toMS := func(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }
	now := toMS(time.Now())

	doc := commentDoc{
		ReelID:    comm.ReelID.String(),
		ParentID:  strings.TrimSpace(comm.ParentID),
		UserID:    comm.UserID.String(),
		Username:  comm.Username,
		Content:   comm.Content,
		Pinned:    comm.Pinned,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if doc.ParentID != "" {
		// Ответ: необходимо найти родителя и перенять часть полей/ограничений.
		parentOID, err := primitive.ObjectIDFromHex(doc.ParentID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrParentNotFound)
		}

		var parent commentDoc
		if err := m.comments.FindOne(ctx, bson.D{{Key: "_id", Value: parentOID}}).Decode(&parent); err != nil {
			if errors.Is(err, mongodriver.ErrNoDocuments) {
				return nil, fmt.Errorf("%s: %w", op, storage.ErrParentNotFound)
			}

			return nil, fmt.Errorf("%s: find parent: %w", op, err)
		}

		// Допускается один уровень вложенности: родитель обязан быть корнем.
		if parent.ParentID != "" {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrMaxDepthExceeded)
		}

		// Если reel_id не совпадает — принудительно выставим как у родителя
		// (защита от рассинхрона).
		doc.ReelID = parent.ReelID
		doc.ParentID = parentOID.Hex()

		// Инкремент счётчика у родителя по факту успешной вставки.
		defer func() {
			_, _ = m.comments.UpdateByID(ctx, parentOID, bson.D{
				{Key: "$inc", Value: bson.D{{Key: "replies_count", Value: 1}}},
				{Key: "$set", Value: bson.D{{Key: "updated_at", Value: toMS(time.Now())}}},
			})
		}()
	}

	res, err := m.comments.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		// Mongo всегда возвращает ObjectID.
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid
	out := doc.toModel()
	return &out, nil
}

// ListRootComments возвращает страницу корневых комментариев ролика
// (parent_id == ""). Сортировка: pinned DESC, created_at DESC, _id DESC —
// закреплённые первыми. При некорректном page_token — storage.ErrInvalidCursor.
func (m *Mongo) ListRootComments(ctx context.Context, reelID uuid.UUID, params models.ListParams) (*models.CommentPage, error) {
	const op = "storage/mongo/ListRootComments"

	limit := limitOrDefault(m.cfg, params.PageSize)

	filter := bson.D{
		{Key: "reel_id", Value: reelID.String()},
		{Key: "parent_id", Value: ""},
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "pinned", Value: -1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	// Курсор "меньше" для DESC сортировки с учётом поля pinned.
	if strings.TrimSpace(params.PageToken) != "" {
		pinned, t, oid, decErr := decodeCursor(params.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "pinned", Value: bson.D{{Key: "$lt", Value: pinned}}}},
			bson.D{
				{Key: "pinned", Value: pinned},
				{Key: "created_at", Value: bson.D{{Key: "$lt", Value: t}}},
			},
			bson.D{
				{Key: "pinned", Value: pinned},
				{Key: "created_at", Value: t},
				{Key: "_id", Value: bson.D{{Key: "$lt", Value: oid}}},
			},
		}})
	}

	return m.listPage(ctx, op, filter, findOpts, true)
}

// ListReplies возвращает страницу ответов одной ветки.
// Сортировка: created_at ASC, _id ASC — удобно для постепенной подзагрузки.
// При некорректном page_token — storage.ErrInvalidCursor.
func (m *Mongo) ListReplies(ctx context.Context, parentID string, params models.ListParams) (*models.CommentPage, error) {
	const op = "storage/mongo/ListReplies"

	parentOID, err := primitive.ObjectIDFromHex(strings.TrimSpace(parentID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	limit := limitOrDefault(m.cfg, params.PageSize)

	filter := bson.D{
		{Key: "parent_id", Value: parentOID.Hex()},
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(limit)

	// Курсор "больше" для ASC сортировки.
	if strings.TrimSpace(params.PageToken) != "" {
		_, t, oid, decErr := decodeCursor(params.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "created_at", Value: bson.D{{Key: "$gt", Value: t}}}},
			bson.D{
				{Key: "created_at", Value: t},
				{Key: "_id", Value: bson.D{{Key: "$gt", Value: oid}}},
			},
		}})
	}

	return m.listPage(ctx, op, filter, findOpts, false)
}

// listPage — общая выборка страницы с materialize курсора следующей страницы.
func (m *Mongo) listPage(ctx context.Context, op string, filter bson.D, findOpts *options.FindOptions, withPinned bool) (*models.CommentPage, error) {
	cur, err := m.comments.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Comment

	var lastDoc commentDoc
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		lastDoc = doc
		items = append(items, doc.toModel())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	var next string
	if len(items) > 0 {
		pinned := false
		if withPinned {
			pinned = lastDoc.Pinned
		}
		next = encodeCursor(pinned, lastDoc.CreatedAt, lastDoc.ID)
	}

	return &models.CommentPage{
		Items:         items,
		NextPageToken: next,
	}, nil
}
