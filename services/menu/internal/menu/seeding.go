package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/appetiteclub/apt"
)

const seedFileName = "seed.json"

type bootstrapSeedDocument struct {
	Items []Draft `json:"items"`
}

func loadMenuSeeds(seedFS fs.FS) ([]Draft, error) {
	seedBytes, err := fs.ReadFile(seedFS, seedFileName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", seedFileName, err)
	}

	if len(seedBytes) == 0 {
		return nil, errors.New("menu seed file is empty")
	}

	var doc bootstrapSeedDocument
	if err := json.Unmarshal(seedBytes, &doc); err != nil {
		return nil, fmt.Errorf("decode menu seed file: %w", err)
	}

	if len(doc.Items) == 0 {
		return nil, errors.New("menu seed file does not contain items")
	}

	return doc.Items, nil
}

// ApplyMenuSeeds validates every seed first and only then appends them, so a
// broken seed file leaves the store untouched.
func ApplyMenuSeeds(store *Store, seedFS fs.FS, logger apt.Logger) error {
	if store == nil {
		return errors.New("menu store is required")
	}
	if logger == nil {
		logger = apt.NewNoopLogger()
	}

	drafts, err := loadMenuSeeds(seedFS)
	if err != nil {
		return err
	}

	items := make([]MenuItem, 0, len(drafts))
	for i, d := range drafts {
		item, errs := ValidateDraft(d)
		if errs != nil {
			return fmt.Errorf("seed item %d (%q): %w", i, d.Name, errs)
		}
		items = append(items, item)
	}

	for _, item := range items {
		store.Add(item)
		logger.Info("Seed menu item added", "name", item.Name, "course", item.Course, "id", item.ID.String())
	}
	return nil
}

// SeedingFunc returns an apt lifecycle OnStart-compatible function that loads
// the seed menu before the HTTP server starts taking requests.
func SeedingFunc(store *Store, seedFS fs.FS, logger apt.Logger) func(ctx context.Context) error {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}

	return func(ctx context.Context) error {
		logger.Info("Applying menu seeds")
		if err := ApplyMenuSeeds(store, seedFS, logger); err != nil {
			logger.Errorf("Menu seeds failed: %v", err)
			return err
		}
		logger.Info("Menu seeding completed", "items", store.Len())
		return nil
	}
}
