package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/appetiteclub/apt"
)

const defaultMenuURL = "http://localhost:8083"

type menuItemDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Course      string `json:"course"`
	Price       int    `json:"price"`
}

type courseStatsDTO struct {
	Course       string `json:"course"`
	Count        int    `json:"count"`
	AveragePrice string `json:"average_price"`
}

type statsDTO struct {
	TotalItems int              `json:"total_items"`
	Courses    []courseStatsDTO `json:"courses"`
}

// Stats prints the menu statistics reported by the menu service.
func Stats(ctx context.Context, config *apt.Config, logger apt.Logger, out io.Writer) error {
	client := menuClient(config, logger)

	resp, err := client.Request(ctx, "GET", "/menu/stats", nil)
	if err != nil {
		return fmt.Errorf("fetch menu stats: %w", err)
	}
	if resp == nil || resp.Data == nil {
		return fmt.Errorf("menu service returned no stats")
	}

	var stats statsDTO
	if err := rehydrate(resp.Data, &stats); err != nil {
		return fmt.Errorf("decode menu stats: %w", err)
	}

	return writeStats(out, stats)
}

// List prints every item on the menu in menu order.
func List(ctx context.Context, config *apt.Config, logger apt.Logger, out io.Writer) error {
	client := menuClient(config, logger)

	resp, err := client.Request(ctx, "GET", "/menu/items", nil)
	if err != nil {
		return fmt.Errorf("fetch menu items: %w", err)
	}

	var items []menuItemDTO
	if resp != nil && resp.Data != nil {
		if err := rehydrate(resp.Data, &items); err != nil {
			return fmt.Errorf("decode menu items: %w", err)
		}
	}

	return writeItems(out, items)
}

func menuClient(config *apt.Config, logger apt.Logger) *apt.ServiceClient {
	url := config.GetStringOrDef("services.menu.url", defaultMenuURL)
	logger.Debug("using menu service", "url", url)
	return apt.NewServiceClient(url)
}

func writeStats(out io.Writer, stats statsDTO) error {
	if _, err := fmt.Fprintf(out, "Total Menu Items: %d\n", stats.TotalItems); err != nil {
		return err
	}
	for _, c := range stats.Courses {
		if _, err := fmt.Fprintf(out, "%s Avg Price: %s\n", c.Course, displayAverage(c.AveragePrice)); err != nil {
			return err
		}
	}
	return nil
}

func writeItems(out io.Writer, items []menuItemDTO) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(out, "Menu is empty")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\tR%d\t%s\t%s\n", item.Course, item.Name, item.Price, item.Description, item.ID)
	}
	return tw.Flush()
}

// displayAverage prefixes real averages with the currency marker.
func displayAverage(avg string) string {
	if avg == "" || avg == "N/A" {
		return "N/A"
	}
	return "R" + avg
}

func rehydrate(data interface{}, out interface{}) error {
	bytes, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, out)
}
