package pkg

import "time"

const (
	// MenuItemsTopic carries every change applied to the menu store.
	MenuItemsTopic = "menu.items"

	// EventMenuItemAdded identifies an item appended to the menu.
	EventMenuItemAdded = "menu.item.added"
	// EventMenuItemRemoved identifies an item dropped from the menu.
	EventMenuItemRemoved = "menu.item.removed"
)

// MenuItemEvent is the payload published on MenuItemsTopic. TotalItems is the
// size of the menu right after the change was applied.
type MenuItemEvent struct {
	EventType   string    `json:"event_type"`
	ItemID      string    `json:"item_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Course      string    `json:"course"`
	Price       int       `json:"price"`
	TotalItems  int       `json:"total_items"`
	Source      string    `json:"source,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
