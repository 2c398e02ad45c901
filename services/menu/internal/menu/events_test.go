package menu

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/appetiteclub/chefsmenu/pkg"
	"github.com/google/uuid"
)

func TestEventPublisherPublishesChanges(t *testing.T) {
	pub := NewMockPublisher()
	store := NewStore()
	ep := NewEventPublisher(pub, nil)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ep.now = func() time.Time { return fixed }
	ep.Attach(store)

	soup := testItem("Soup", "Starters", 40)
	store.Add(soup)
	store.Remove(uuid.New())
	store.Remove(soup.ID)

	msgs := pub.Messages()
	if len(msgs) != 2 {
		t.Fatalf("published %d messages, want 2", len(msgs))
	}

	tests := []struct {
		name      string
		eventType string
		total     int
	}{
		{name: "added", eventType: pkg.EventMenuItemAdded, total: 1},
		{name: "removed", eventType: pkg.EventMenuItemRemoved, total: 0},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msgs[i].topic != pkg.MenuItemsTopic {
				t.Errorf("topic = %q, want %q", msgs[i].topic, pkg.MenuItemsTopic)
			}

			var event pkg.MenuItemEvent
			if err := json.Unmarshal(msgs[i].data, &event); err != nil {
				t.Fatalf("cannot decode event: %v", err)
			}
			if event.EventType != tt.eventType {
				t.Errorf("EventType = %q, want %q", event.EventType, tt.eventType)
			}
			if event.ItemID != soup.ID.String() {
				t.Errorf("ItemID = %q, want %q", event.ItemID, soup.ID.String())
			}
			if event.Course != "Starters" || event.Price != 40 || event.Name != "Soup" {
				t.Errorf("event = %+v, want Soup/Starters/40", event)
			}
			if event.TotalItems != tt.total {
				t.Errorf("TotalItems = %d, want %d", event.TotalItems, tt.total)
			}
			if !event.OccurredAt.Equal(fixed) {
				t.Errorf("OccurredAt = %v, want %v", event.OccurredAt, fixed)
			}
		})
	}
}

func TestEventPublisherFailureDoesNotAffectStore(t *testing.T) {
	pub := NewMockPublisher()
	pub.PublishFunc = func(ctx context.Context, topic string, msg []byte) error {
		return errors.New("nats unavailable")
	}
	store := NewStore()
	NewEventPublisher(pub, nil).Attach(store)

	store.Add(testItem("Soup", "Starters", 40))

	if store.Len() != 1 {
		t.Errorf("store Len() = %d, want 1", store.Len())
	}
}

func TestEventPublisherNilPublisher(t *testing.T) {
	store := NewStore()
	NewEventPublisher(nil, nil).Attach(store)

	store.Add(testItem("Soup", "Starters", 40))

	if store.Len() != 1 {
		t.Errorf("store Len() = %d, want 1", store.Len())
	}
}
