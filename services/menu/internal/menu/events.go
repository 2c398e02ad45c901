package menu

import (
	"context"
	"encoding/json"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/chefsmenu/pkg"
)

const (
	menuEventSource     = "menu-service"
	publishEventTimeout = 5 * time.Second
)

// EventPublisher forwards store changes to the events bus. Failures are
// logged and never reach the store or its callers.
type EventPublisher struct {
	publisher events.Publisher
	logger    apt.Logger
	now       func() time.Time
}

func NewEventPublisher(publisher events.Publisher, logger apt.Logger) *EventPublisher {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &EventPublisher{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Attach subscribes the publisher to store changes.
func (p *EventPublisher) Attach(store *Store) {
	store.Subscribe(p.handleChange)
}

func (p *EventPublisher) handleChange(change Change) {
	if p.publisher == nil {
		return
	}

	event := pkg.MenuItemEvent{
		EventType:   eventTypeFor(change.Kind),
		ItemID:      change.Item.ID.String(),
		Name:        change.Item.Name,
		Description: change.Item.Description,
		Course:      change.Item.Course,
		Price:       change.Item.Price,
		TotalItems:  change.Total,
		Source:      menuEventSource,
		OccurredAt:  p.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("cannot marshal menu item event", "error", err, "item_id", event.ItemID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishEventTimeout)
	defer cancel()

	if err := p.publisher.Publish(ctx, pkg.MenuItemsTopic, payload); err != nil {
		p.logger.Error("cannot publish menu item event", "error", err, "item_id", event.ItemID, "event_type", event.EventType)
		return
	}
	p.logger.Debug("menu item event published", "item_id", event.ItemID, "event_type", event.EventType)
}

func eventTypeFor(kind ChangeKind) string {
	if kind == ChangeRemoved {
		return pkg.EventMenuItemRemoved
	}
	return pkg.EventMenuItemAdded
}
