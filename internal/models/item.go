package models

import "github.com/google/uuid"

// ItemSummary — карточка товара маркетплейса, привязанного к ролику.
// Цена хранится в минорных единицах валюты (центах).
type ItemSummary struct {
	ID         uuid.UUID
	Title      string
	ImageURL   string
	PriceCents int64
	Currency   string
	Available  bool
}
