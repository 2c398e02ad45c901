package menu

import (
	"strconv"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/chefsmenu/pkg/enums/course"
	"github.com/google/uuid"
)

// MenuItem is a single dish on the menu. Price is in whole currency units.
type MenuItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Course      string    `json:"course"`
	Price       int       `json:"price"`
}

// NewMenuItem builds an item with a fresh ID. Callers are expected to have
// validated the fields already.
func NewMenuItem(name, description string, c course.Course, price int) MenuItem {
	return MenuItem{
		ID:          apt.GenerateNewID(),
		Name:        name,
		Description: description,
		Course:      c.Code(),
		Price:       price,
	}
}

// GetID returns the item ID for link generation
func (m *MenuItem) GetID() uuid.UUID {
	return m.ID
}

// ResourceType returns the resource type for URL generation
func (m *MenuItem) ResourceType() string {
	return "menu/item"
}

// DisplayPrice renders the price the way it is entered, e.g. "R100".
func (m MenuItem) DisplayPrice() string {
	return PricePrefix + strconv.Itoa(m.Price)
}
