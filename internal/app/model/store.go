package model

import "time"

// Store is a shop ("loja") owned by a user.
type Store struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"usuarioId"`
	Name        string    `gorm:"size:100;not null" json:"nome"`
	Description string    `gorm:"type:text" json:"descricao"`
	LogoURL     string    `json:"logo_url"`
	BannerURL   string    `json:"banner_url"`
	StickerURL  string    `json:"sticker_url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Products []Product     `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"produtos,omitempty"`
	Reviews  []StoreReview `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Store) TableName() string {
	return "stores"
}

// StoreRef is the {id, nome} store reference embedded in products.
type StoreRef struct {
	ID   uint   `json:"id"`
	Name string `json:"nome"`
}

func (StoreRef) TableName() string {
	return "stores"
}

// StoreSummary is the store reference embedded in store reviews.
type StoreSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	LogoURL     string `json:"logo_url"`
}

func (StoreSummary) TableName() string {
	return "stores"
}
