package model

import "time"

type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	StoreID     uint      `gorm:"index;not null" json:"lojaId"`
	CategoryID  uint      `gorm:"index;not null" json:"categoriaId"`
	Name        string    `gorm:"size:200;not null" json:"nome"`
	Description string    `gorm:"type:text" json:"descricao"`
	Price       int64     `gorm:"not null" json:"preco"` // centavos
	Stock       int       `gorm:"not null;default:0" json:"estoque"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Store    *StoreRef       `gorm:"foreignKey:StoreID;constraint:-" json:"loja,omitempty"`
	Category *CategoryRef    `gorm:"foreignKey:CategoryID;constraint:-" json:"categoria,omitempty"`
	Images   []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"imagens,omitempty"`
	Reviews  []ProductReview `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ProductSummary is the product reference embedded in product reviews.
type ProductSummary struct {
	ID          uint      `json:"id"`
	StoreID     uint      `json:"-"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao"`
	Price       int64     `json:"preco"`
	Store       *StoreRef `gorm:"foreignKey:StoreID;constraint:-" json:"loja,omitempty"`
}

func (ProductSummary) TableName() string {
	return "products"
}

type ProductImage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"productId"`
	URL       string    `gorm:"not null" json:"url"`
	AltText   string    `gorm:"size:500" json:"alt_text"`
	Position  int       `gorm:"not null;default:0" json:"ordem"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
