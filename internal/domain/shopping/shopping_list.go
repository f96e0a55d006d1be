package shopping

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoplist-app/shoplist-backend/internal/domain/user"
)

// MaxNameLength bounds both list and item names.
const MaxNameLength = 100

type ShoppingList struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name string    `gorm:"not null;size:100;column:name" json:"name"`

	// LastInteraction is bumped by every mutating operation on the list or
	// its items and drives the "most recently used first" listing order.
	LastInteraction time.Time `gorm:"not null;default:now();column:last_interaction" json:"last_interaction"`

	Members []*user.User    `gorm:"many2many:shopping_list_member" json:"members,omitempty"`
	Items   []*ShoppingItem `gorm:"foreignKey:ShoppingListID" json:"-"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ShoppingList) TableName() string { return "shopping_list" }

// IsMember reports whether userID appears in the loaded Members set. The
// Members association must have been preloaded or this is always false.
func (sl *ShoppingList) IsMember(userID uuid.UUID) bool {
	for _, m := range sl.Members {
		if m != nil && m.ID == userID {
			return true
		}
	}
	return false
}

// UnpurchasedPreviewLimit caps the name-only preview embedded in list detail
// views. Full item listings go through the paginated items endpoint.
const UnpurchasedPreviewLimit = 3

// ItemPreview is the name-only projection of an unpurchased item.
type ItemPreview struct {
	Name string `json:"name"`
}
