// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	FirstName    string     `json:"first_name" gorm:"size:100;not null"`
	LastName     string     `json:"last_name" gorm:"size:100;not null"`
	Username     *string    `json:"username" gorm:"uniqueIndex;size:50"`
	AvatarURL    *string    `json:"avatar_url" gorm:"size:500"`
	IsAdmin      bool       `json:"is_admin" gorm:"default:false"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastLogin    *time.Time `json:"last_login"`

	// Relationships
	Orders        []Order        `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	WishlistItems []WishlistItem `json:"wishlist_items,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
