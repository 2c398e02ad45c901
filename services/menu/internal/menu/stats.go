package menu

import (
	"fmt"
	"sync"

	"github.com/appetiteclub/chefsmenu/pkg/enums/course"
)

// NotAvailable is shown for a course without items.
const NotAvailable = "N/A"

// Stats is the derived summary of the menu. A course without items has no
// entry in AveragePrices.
type Stats struct {
	TotalItems    int               `json:"total_items"`
	AveragePrices map[string]string `json:"average_prices"`
	ItemCounts    map[string]int    `json:"item_counts"`
}

// CourseStats is one row of the per-course summary.
type CourseStats struct {
	Course       string `json:"course"`
	Count        int    `json:"count"`
	AveragePrice string `json:"average_price"`
}

type priceSum struct {
	total int
	count int
}

// ComputeStats does a full pass over items; there is no incremental state.
func ComputeStats(items []MenuItem) Stats {
	sums := make(map[string]*priceSum)
	for _, item := range items {
		sum, ok := sums[item.Course]
		if !ok {
			sum = &priceSum{}
			sums[item.Course] = sum
		}
		sum.total += item.Price
		sum.count++
	}

	averages := make(map[string]string, len(sums))
	counts := make(map[string]int, len(sums))
	for name, sum := range sums {
		averages[name] = formatAverage(sum.total, sum.count)
		counts[name] = sum.count
	}

	return Stats{
		TotalItems:    len(items),
		AveragePrices: averages,
		ItemCounts:    counts,
	}
}

// AveragePrice returns the formatted average for a course or NotAvailable.
func (s Stats) AveragePrice(courseName string) string {
	if avg, ok := s.AveragePrices[courseName]; ok {
		return avg
	}
	return NotAvailable
}

// ByCourse lists every known course in menu order, including empty ones.
func (s Stats) ByCourse() []CourseStats {
	rows := make([]CourseStats, 0, len(course.All))
	for _, c := range course.All {
		rows = append(rows, CourseStats{
			Course:       c.Code(),
			Count:        s.ItemCounts[c.Code()],
			AveragePrice: s.AveragePrice(c.Code()),
		})
	}
	return rows
}

// formatAverage renders total/count with two decimals, rounding halves up.
func formatAverage(total, count int) string {
	cents := (total*200 + count) / (2 * count)
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// StatsView keeps the latest Stats of a store, recomputed on each change.
type StatsView struct {
	mu    sync.RWMutex
	store *Store
	stats Stats
}

// NewStatsView computes the initial stats and subscribes to store changes.
func NewStatsView(store *Store) *StatsView {
	v := &StatsView{store: store}
	v.refresh()
	store.Subscribe(func(Change) {
		v.refresh()
	})
	return v
}

// Stats returns the current snapshot.
func (v *StatsView) Stats() Stats {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.stats
}

// refresh reads the store under the view lock so a later refresh never
// publishes an older snapshot than an earlier one.
func (v *StatsView) refresh() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stats = ComputeStats(v.store.List())
}
