package models

import "time"

// Gender of a user. The zero value means unset.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// User represents an account of the backend.
type User struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         int64     `json:"userID" gorm:"uniqueIndex;not null"`
	Name           string    `json:"name" gorm:"type:varchar(50);not null"`
	Gender         Gender    `json:"gender,omitempty" gorm:"type:varchar(10)"`
	Email          string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Level          int       `json:"level,omitempty"`
	Password       string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash
	ImageProfile   *string   `json:"imageProfile"`
	FavoriteStores []Store   `json:"favoriteStores,omitempty" gorm:"many2many:user_favorite_stores;joinForeignKey:UserRef;joinReferences:StoreRef"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}
