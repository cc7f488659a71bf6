package model

import (
	"time"
)

type User struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Username        string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Name            string    `gorm:"size:100;not null" json:"nome"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string    `gorm:"not null" json:"-"`
	ProfileImageURL string    `json:"foto_perfil_url"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Stores         []Store         `gorm:"foreignKey:UserID" json:"-"`
	StoreReviews   []StoreReview   `gorm:"foreignKey:UserID" json:"-"`
	ProductReviews []ProductReview `gorm:"foreignKey:UserID" json:"-"`
	Comments       []ReviewComment `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// SafeUser is the account representation returned by the API. It never
// carries the password hash.
type SafeUser struct {
	ID              uint      `json:"id"`
	Username        string    `json:"username"`
	Name            string    `json:"nome"`
	Email           string    `json:"email"`
	ProfileImageURL string    `json:"foto_perfil_url"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (u *User) Safe() *SafeUser {
	return &SafeUser{
		ID:              u.ID,
		Username:        u.Username,
		Name:            u.Name,
		Email:           u.Email,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// UserSummary is the author identity embedded in reviews and comments.
type UserSummary struct {
	ID              uint   `json:"id"`
	Username        string `json:"username"`
	Name            string `json:"nome"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"foto_perfil_url"`
}

func (UserSummary) TableName() string {
	return "users"
}
