package model

import "time"

// Category groups products. Categories form a tree through ParentID.
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"nome"`
	Slug        string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"descricao"`
	ParentID    *uint     `gorm:"index" json:"categoriaPaiId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Children []Category `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"subcategorias,omitempty"`
	Products []Product  `gorm:"foreignKey:CategoryID" json:"produtos,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryRef is the {id, nome} category reference embedded in products.
type CategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"nome"`
}

func (CategoryRef) TableName() string {
	return "categories"
}
