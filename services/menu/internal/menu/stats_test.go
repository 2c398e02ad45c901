package menu

import "testing"

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name      string
		items     []MenuItem
		wantTotal int
		want      map[string]string
	}{
		{
			name:      "empty",
			items:     nil,
			wantTotal: 0,
			want:      map[string]string{},
		},
		{
			name: "twoMains",
			items: []MenuItem{
				testItem("Steak", "Mains", 50),
				testItem("Pasta", "Mains", 100),
			},
			wantTotal: 2,
			want:      map[string]string{"Mains": "75.00"},
		},
		{
			name: "fractionalAverage",
			items: []MenuItem{
				testItem("A", "Dessert", 10),
				testItem("B", "Dessert", 10),
				testItem("C", "Dessert", 11),
			},
			wantTotal: 3,
			want:      map[string]string{"Dessert": "10.33"},
		},
		{
			name: "roundHalfUp",
			items: []MenuItem{
				testItem("A", "Mains", 10),
				testItem("B", "Mains", 10),
				testItem("C", "Mains", 10),
				testItem("D", "Mains", 10),
				testItem("E", "Mains", 10),
				testItem("F", "Mains", 10),
				testItem("G", "Mains", 10),
				testItem("H", "Mains", 11),
			},
			wantTotal: 8,
			want:      map[string]string{"Mains": "10.13"},
		},
		{
			name: "roundHalfUpSmall",
			items: []MenuItem{
				testItem("A", "Starters", 0),
				testItem("B", "Starters", 0),
				testItem("C", "Starters", 0),
				testItem("D", "Starters", 0),
				testItem("E", "Starters", 0),
				testItem("F", "Starters", 0),
				testItem("G", "Starters", 0),
				testItem("H", "Starters", 1),
			},
			wantTotal: 8,
			want:      map[string]string{"Starters": "0.13"},
		},
		{
			name: "zeroPrice",
			items: []MenuItem{
				testItem("Bread", "Starters", 0),
			},
			wantTotal: 1,
			want:      map[string]string{"Starters": "0.00"},
		},
		{
			name: "allCourses",
			items: []MenuItem{
				testItem("Soup", "Starters", 50),
				testItem("Chicken", "Mains", 100),
				testItem("Cake", "Dessert", 150),
			},
			wantTotal: 3,
			want:      map[string]string{"Starters": "50.00", "Mains": "100.00", "Dessert": "150.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeStats(tt.items)

			if stats.TotalItems != tt.wantTotal {
				t.Errorf("TotalItems = %d, want %d", stats.TotalItems, tt.wantTotal)
			}
			if len(stats.AveragePrices) != len(tt.want) {
				t.Errorf("AveragePrices = %v, want %v", stats.AveragePrices, tt.want)
			}
			for c, avg := range tt.want {
				if got := stats.AveragePrices[c]; got != avg {
					t.Errorf("AveragePrices[%s] = %q, want %q", c, got, avg)
				}
			}
		})
	}
}

func TestStatsAveragePriceNotAvailable(t *testing.T) {
	stats := ComputeStats([]MenuItem{testItem("Soup", "Starters", 50)})

	if _, ok := stats.AveragePrices["Mains"]; ok {
		t.Error("AveragePrices should not contain a course without items")
	}
	if got := stats.AveragePrice("Mains"); got != NotAvailable {
		t.Errorf("AveragePrice(Mains) = %q, want %q", got, NotAvailable)
	}
	if got := stats.AveragePrice("Starters"); got != "50.00" {
		t.Errorf("AveragePrice(Starters) = %q, want %q", got, "50.00")
	}
}

func TestStatsByCourse(t *testing.T) {
	stats := ComputeStats([]MenuItem{
		testItem("Soup", "Starters", 50),
		testItem("Bread", "Starters", 30),
		testItem("Cake", "Dessert", 150),
	})

	rows := stats.ByCourse()
	want := []CourseStats{
		{Course: "Starters", Count: 2, AveragePrice: "40.00"},
		{Course: "Mains", Count: 0, AveragePrice: NotAvailable},
		{Course: "Dessert", Count: 1, AveragePrice: "150.00"},
	}

	if len(rows) != len(want) {
		t.Fatalf("ByCourse() len = %d, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("ByCourse()[%d] = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestStatsViewFollowsStore(t *testing.T) {
	store := seededStore()
	view := NewStatsView(store)

	if got := view.Stats().TotalItems; got != 3 {
		t.Fatalf("initial TotalItems = %d, want 3", got)
	}

	bread := testItem("Garlic Bread", "Starters", 30)
	store.Add(bread)

	stats := view.Stats()
	if stats.TotalItems != 4 {
		t.Errorf("TotalItems after add = %d, want 4", stats.TotalItems)
	}
	if got := stats.AveragePrice("Starters"); got != "40.00" {
		t.Errorf("Starters average after add = %q, want %q", got, "40.00")
	}

	for _, item := range store.ListByCourse("Mains") {
		store.Remove(item.ID)
	}

	stats = view.Stats()
	if stats.TotalItems != 3 {
		t.Errorf("TotalItems after remove = %d, want 3", stats.TotalItems)
	}
	if got := stats.AveragePrice("Mains"); got != NotAvailable {
		t.Errorf("Mains average after remove = %q, want %q", got, NotAvailable)
	}
}
