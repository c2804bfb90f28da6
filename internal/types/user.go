package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Role      string    `gorm:"not null;default:parent;column:role" json:"role"`
	Avatar    string    `gorm:"column:avatar" json:"avatar,omitempty"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
