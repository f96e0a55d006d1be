package shopping

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShoppingItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:100;column:name" json:"name"`
	Purchased bool      `gorm:"not null;column:purchased" json:"purchased"`

	// Exclusive owning reference: an item belongs to exactly one list and is
	// removed when the list is removed.
	ShoppingListID uuid.UUID `gorm:"type:uuid;not null;index;column:shopping_list_id" json:"shopping_list_id"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ShoppingItem) TableName() string { return "shopping_item" }
