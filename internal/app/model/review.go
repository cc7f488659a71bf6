package model

import "time"

// StoreReview is a 1-5 rating of a store with an optional text.
type StoreReview struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"usuarioId"`
	StoreID   uint      `gorm:"index;not null" json:"lojaId"`
	Rating    int       `gorm:"not null;check:chk_store_reviews_rating,rating >= 1 AND rating <= 5" json:"nota"`
	Comment   string    `gorm:"type:text" json:"comentario"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User     *UserSummary    `gorm:"foreignKey:UserID;constraint:-" json:"usuario,omitempty"`
	Store    *StoreSummary   `gorm:"foreignKey:StoreID;constraint:-" json:"loja,omitempty"`
	Comments []ReviewComment `gorm:"foreignKey:StoreReviewID;constraint:OnDelete:CASCADE" json:"comentarios,omitempty"`
}

func (StoreReview) TableName() string {
	return "store_reviews"
}

// ProductReview is a 1-5 rating of a product with an optional text.
type ProductReview struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"usuarioId"`
	ProductID uint      `gorm:"index;not null" json:"produtoId"`
	Rating    int       `gorm:"not null;check:chk_product_reviews_rating,rating >= 1 AND rating <= 5" json:"nota"`
	Comment   string    `gorm:"type:text" json:"comentario"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User     *UserSummary    `gorm:"foreignKey:UserID;constraint:-" json:"usuario,omitempty"`
	Product  *ProductSummary `gorm:"foreignKey:ProductID;constraint:-" json:"produto,omitempty"`
	Comments []ReviewComment `gorm:"foreignKey:ProductReviewID;constraint:OnDelete:CASCADE" json:"comentarios,omitempty"`
}

func (ProductReview) TableName() string {
	return "product_reviews"
}

// ReviewComment is a reply attached to exactly one store review or product review.
type ReviewComment struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"usuarioId"`
	StoreReviewID   *uint     `gorm:"index" json:"avaliacaoId"`
	ProductReviewID *uint     `gorm:"index" json:"avaliacaoProdutoId"`
	Content         string    `gorm:"type:text" json:"conteudo"`
	CreatedAt       time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	User *UserSummary `gorm:"foreignKey:UserID;constraint:-" json:"usuario,omitempty"`
}

func (ReviewComment) TableName() string {
	return "review_comments"
}
