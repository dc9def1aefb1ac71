package models

import "github.com/google/uuid"

// ProfileSummary — публичная витрина автора ролика.
// Подмешивается к странице ленты батч-запросом по множеству distinct id.
type ProfileSummary struct {
	UserID      uuid.UUID
	Username    string
	DisplayName string
	AvatarURL   string
	IsVerified  bool
}
