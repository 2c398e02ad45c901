package menu

import (
	"sync"

	"github.com/google/uuid"
)

// ChangeKind tells observers what happened to the store.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
)

// Change describes one applied mutation. Total is the store size after it.
type Change struct {
	Kind  ChangeKind
	Item  MenuItem
	Total int
}

// Observer is notified after every effective store mutation.
type Observer func(Change)

// Store is the in-memory, ordered list of menu items shared by the service.
// Items are only ever appended or filtered out; nothing is updated in place.
// State lives as long as the Store value does.
type Store struct {
	mu        sync.RWMutex
	items     []MenuItem
	observers []Observer
}

// NewStore returns a store holding the given items in order.
func NewStore(items ...MenuItem) *Store {
	s := &Store{}
	s.items = append(s.items, items...)
	return s
}

// Subscribe registers an observer. Observers are called outside the lock.
func (s *Store) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Add appends item to the end of the menu. No validation happens here.
func (s *Store) Add(item MenuItem) {
	s.mu.Lock()
	s.items = append(s.items, item)
	change := Change{Kind: ChangeAdded, Item: item, Total: len(s.items)}
	observers := s.observers
	s.mu.Unlock()

	notify(observers, change)
}

// Remove drops every item whose ID equals id. Unknown ids are ignored.
func (s *Store) Remove(id uuid.UUID) {
	s.mu.Lock()
	kept := make([]MenuItem, 0, len(s.items))
	var removed []MenuItem
	for _, item := range s.items {
		if item.ID == id {
			removed = append(removed, item)
			continue
		}
		kept = append(kept, item)
	}
	if len(removed) == 0 {
		s.mu.Unlock()
		return
	}
	s.items = kept
	total := len(kept)
	observers := s.observers
	s.mu.Unlock()

	for _, item := range removed {
		notify(observers, Change{Kind: ChangeRemoved, Item: item, Total: total})
	}
}

// List returns a copy of the menu in insertion order.
func (s *Store) List() []MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

// ListByCourse returns the items of one course, keeping menu order.
func (s *Store) ListByCourse(courseName string) []MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MenuItem, 0)
	for _, item := range s.items {
		if item.Course == courseName {
			out = append(out, item)
		}
	}
	return out
}

// Get looks an item up by ID.
func (s *Store) Get(id uuid.UUID) (MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// Len returns the number of items on the menu.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func notify(observers []Observer, change Change) {
	for _, o := range observers {
		o(change)
	}
}
