package menu

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MockPublisher is a mock implementation of events.Publisher for testing
type MockPublisher struct {
	mu          sync.Mutex
	published   []publishedMessage
	PublishFunc func(ctx context.Context, topic string, msg []byte) error
}

type publishedMessage struct {
	topic string
	data  []byte
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, msg)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, publishedMessage{topic: topic, data: msg})
	return nil
}

func (m *MockPublisher) Messages() []publishedMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]publishedMessage, len(m.published))
	copy(out, m.published)
	return out
}

func testItem(name, courseName string, price int) MenuItem {
	return MenuItem{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " description",
		Course:      courseName,
		Price:       price,
	}
}

func seededStore() *Store {
	return NewStore(
		testItem("Tomato Soup", "Starters", 50),
		testItem("Roast Chicken", "Mains", 100),
		testItem("Cheesecake", "Dessert", 150),
	)
}
