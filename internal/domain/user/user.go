package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an identity record owned by the identity subsystem. This service
// reads it (membership checks, staff override) but never mutates credentials.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	FirstName string    `gorm:"not null;column:first_name" json:"first_name"`
	LastName  string    `gorm:"not null;column:last_name" json:"last_name"`

	// Staff grants override access to every shopping list regardless of
	// membership. Capability flag, not a separate principal type.
	Staff bool `gorm:"not null;default:false;column:staff" json:"staff"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }
