package handlers

import (
	"time"

	"github.com/pribylovaa/go-reels-service/internal/models"
	"github.com/pribylovaa/go-reels-service/internal/storage"
)

// Вьюхи ответов: плоские JSON-структуры для фронта.
// Доменные модели наружу не отдаём, чтобы формат ответа не менялся
// при рефакторинге внутренних типов.

type profileView struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	IsVerified  bool   `json:"is_verified"`
}

type itemView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ImageURL   string `json:"image_url,omitempty"`
	PriceCents int64  `json:"price_cents"`
	Currency   string `json:"currency"`
	Available  bool   `json:"available"`
}

type reelView struct {
	ID           string `json:"id"`
	AuthorID     string `json:"author_id"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`

	ViewsCount    int64 `json:"views_count"`
	LikesCount    int64 `json:"likes_count"`
	CommentsCount int64 `json:"comments_count"`
	SharesCount   int64 `json:"shares_count"`
	SavesCount    int64 `json:"saves_count"`

	Author     *profileView `json:"author,omitempty"`
	TaggedItem *itemView    `json:"tagged_item,omitempty"`
	IsLiked    bool         `json:"is_liked"`
	IsSaved    bool         `json:"is_saved"`

	CreatedAt time.Time `json:"created_at"`
}

type feedPageView struct {
	Items   []reelView `json:"items"`
	HasMore bool       `json:"has_more"`
}

type commentView struct {
	ID           string    `json:"id"`
	ReelID       string    `json:"reel_id"`
	ParentID     string    `json:"parent_id,omitempty"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username,omitempty"`
	Content      string    `json:"content"`
	LikesCount   int64     `json:"likes_count"`
	RepliesCount int32     `json:"replies_count"`
	Pinned       bool      `json:"pinned"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type commentPageView struct {
	Items         []commentView `json:"items"`
	NextPageToken string        `json:"next_page_token,omitempty"`
}

type uploadInfoView struct {
	UploadURL      string            `json:"upload_url"`
	MediaKey       string            `json:"media_key"`
	ExpiresSec     int64             `json:"expires_sec"`
	RequiredHeader map[string]string `json:"required_header,omitempty"`
}

func reelToView(r *models.Reel) reelView {
	v := reelView{
		ID:            r.ID.String(),
		AuthorID:      r.AuthorID.String(),
		MediaURL:      r.MediaURL,
		ThumbnailURL:  r.ThumbnailURL,
		Title:         r.Title,
		Description:   r.Description,
		ViewsCount:    r.ViewsCount,
		LikesCount:    r.LikesCount,
		CommentsCount: r.CommentsCount,
		SharesCount:   r.SharesCount,
		SavesCount:    r.SavesCount,
		IsLiked:       r.IsLiked,
		IsSaved:       r.IsSaved,
		CreatedAt:     r.CreatedAt,
	}

	if r.Author != nil {
		v.Author = &profileView{
			UserID:      r.Author.UserID.String(),
			Username:    r.Author.Username,
			DisplayName: r.Author.DisplayName,
			AvatarURL:   r.Author.AvatarURL,
			IsVerified:  r.Author.IsVerified,
		}
	}

	if r.TaggedItem != nil {
		v.TaggedItem = &itemView{
			ID:         r.TaggedItem.ID.String(),
			Title:      r.TaggedItem.Title,
			ImageURL:   r.TaggedItem.ImageURL,
			PriceCents: r.TaggedItem.PriceCents,
			Currency:   r.TaggedItem.Currency,
			Available:  r.TaggedItem.Available,
		}
	}

	return v
}

func feedPageToView(p *models.FeedPage) feedPageView {
	v := feedPageView{
		Items:   make([]reelView, 0, len(p.Items)),
		HasMore: p.HasMore,
	}
	for i := range p.Items {
		v.Items = append(v.Items, reelToView(&p.Items[i]))
	}
	return v
}

func commentToView(c *models.Comment) commentView {
	return commentView{
		ID:           c.ID,
		ReelID:       c.ReelID.String(),
		ParentID:     c.ParentID,
		UserID:       c.UserID.String(),
		Username:     c.Username,
		Content:      c.Content,
		LikesCount:   c.LikesCount,
		RepliesCount: c.RepliesCount,
		Pinned:       c.Pinned,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func commentPageToView(p *models.CommentPage) commentPageView {
	v := commentPageView{
		Items:         make([]commentView, 0, len(p.Items)),
		NextPageToken: p.NextPageToken,
	}
	for i := range p.Items {
		v.Items = append(v.Items, commentToView(&p.Items[i]))
	}
	return v
}

func uploadInfoToView(info *storage.UploadInfo) uploadInfoView {
	return uploadInfoView{
		UploadURL:      info.UploadURL,
		MediaKey:       info.MediaKey,
		ExpiresSec:     int64(info.Expires.Seconds()),
		RequiredHeader: info.RequiredHeader,
	}
}
