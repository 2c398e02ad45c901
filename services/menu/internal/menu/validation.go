package menu

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/appetiteclub/chefsmenu/pkg/enums/course"
)

// PricePrefix is the currency marker required in front of a price.
const PricePrefix = "R"

var pricePattern = regexp.MustCompile(`^R\d+$`)

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCourse      = "course"
	FieldPrice       = "price"
)

// Draft holds the raw form fields for a new menu item.
type Draft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Course      string `json:"course"`
	Price       string `json:"price"`
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors maps a field name to its message. At most one message is
// kept per field.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// List returns the errors ordered by field name.
func (e ValidationErrors) List() []ValidationError {
	list := make([]ValidationError, 0, len(e))
	for field, msg := range e {
		list = append(list, ValidationError{Field: field, Message: msg})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Field < list[j].Field
	})
	return list
}

// ValidateDraft checks every field and, when all pass, builds the MenuItem.
// The returned errors are nil on success.
func ValidateDraft(d Draft) (MenuItem, ValidationErrors) {
	errs := ValidationErrors{}

	name := strings.TrimSpace(d.Name)
	if name == "" {
		errs[FieldName] = "Dish name is required."
	}

	description := strings.TrimSpace(d.Description)
	if description == "" {
		errs[FieldDescription] = "Description is required."
	}

	c := course.ByName(strings.TrimSpace(d.Course))
	if c == nil {
		errs[FieldCourse] = "Please select a course."
	}

	price, priceMsg := parsePrice(d.Price)
	if priceMsg != "" {
		errs[FieldPrice] = priceMsg
	}

	if len(errs) > 0 {
		return MenuItem{}, errs
	}

	return NewMenuItem(name, description, *c, price), nil
}

// Submit validates d and appends the resulting item to store. Nothing is
// added when validation fails.
func Submit(store *Store, d Draft) (MenuItem, ValidationErrors) {
	item, errs := ValidateDraft(d)
	if errs != nil {
		return MenuItem{}, errs
	}
	store.Add(item)
	return item, nil
}

func parsePrice(raw string) (int, string) {
	if raw == "" {
		return 0, "Price is required."
	}
	if !pricePattern.MatchString(raw) {
		return 0, `Price must be an integer with "R" in front (e.g., R100).`
	}
	price, err := strconv.Atoi(strings.TrimPrefix(raw, PricePrefix))
	if err != nil {
		return 0, "Price is too large."
	}
	return price, ""
}
