package services

import (
	"context"

	"github.com/google/uuid"
)

// Activity event names published on mutating list/item operations.
const (
	EventListCreated     = "list.created"
	EventListUpdated     = "list.updated"
	EventListDeleted     = "list.deleted"
	EventItemCreated     = "item.created"
	EventItemUpdated     = "item.updated"
	EventItemDeleted     = "item.deleted"
	EventPurchasedPurged = "item.purchased_purged"
)

type ActivityEvent struct {
	Event   string    `json:"event"`
	ListID  uuid.UUID `json:"list_id"`
	ActorID uuid.UUID `json:"actor_id"`
}

// ActivityPublisher fans list activity out to interested consumers (other
// instances, live UI feeds). Publishing is best-effort: a broker outage must
// never fail the request that triggered the event.
type ActivityPublisher interface {
	Publish(ctx context.Context, event ActivityEvent) error
}
