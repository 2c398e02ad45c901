package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/chefsmenu/pkg"
)

const watchConsumerName = "menu-watch"

// Watch follows menu change events until ctx is cancelled.
func Watch(ctx context.Context, config *apt.Config, logger apt.Logger, out io.Writer) error {
	natsURL := config.GetStringOrDef("nats.url", "nats://localhost:4222")
	streamEnabled, _ := config.GetString("nats.stream.enabled")

	var sub events.Subscriber
	var closer io.Closer
	if streamEnabled == "true" {
		stream, err := pkg.NewNATSStream(pkg.NATSStreamConfig{
			URL:          natsURL,
			StreamName:   pkg.MenuStreamName,
			Topic:        pkg.MenuItemsTopic,
			ConsumerName: watchConsumerName,
			MaxAge:       pkg.DefaultMenuStreamMaxAge,
		})
		if err != nil {
			return err
		}
		sub, closer = stream, stream
	} else {
		natsSub, err := pkg.NewNATSSubscriber(natsURL, logger)
		if err != nil {
			return err
		}
		sub, closer = natsSub, natsSub
	}
	defer closer.Close()

	w := newEventWriter(out, logger)
	if err := sub.Subscribe(ctx, pkg.MenuItemsTopic, w.handle); err != nil {
		return err
	}

	logger.Info("Watching menu events", "topic", pkg.MenuItemsTopic, "nats", natsURL)
	<-ctx.Done()
	return nil
}

// eventWriter prints one line per event; NATS callbacks may run concurrently
// with the caller so writes are serialized.
type eventWriter struct {
	mu     sync.Mutex
	out    io.Writer
	logger apt.Logger
}

func newEventWriter(out io.Writer, logger apt.Logger) *eventWriter {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &eventWriter{out: out, logger: logger}
}

// handle skips undecodable payloads so a stream consumer does not redeliver
// them forever.
func (w *eventWriter) handle(ctx context.Context, msg []byte) error {
	var event pkg.MenuItemEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		w.logger.Info("invalid menu item event", "error", err)
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintln(w.out, formatEvent(event))
	return err
}

func formatEvent(event pkg.MenuItemEvent) string {
	action := "?"
	switch event.EventType {
	case pkg.EventMenuItemAdded:
		action = "+"
	case pkg.EventMenuItemRemoved:
		action = "-"
	}
	return fmt.Sprintf("%s %s %s (%s, R%d) total=%d",
		event.OccurredAt.Format("15:04:05"), action, event.Name, event.Course, event.Price, event.TotalItems)
}
