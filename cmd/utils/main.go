package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/chefsmenu/cmd/utils/internal/commands"
)

const (
	appName    = "chefsmenu-utils"
	appVersion = "0.1.0"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	config, err := apt.LoadConfig("UTILS", os.Args[2:])
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	logLevel, _ := config.GetString("log.level")
	if logLevel == "" {
		logLevel = "info"
	}
	logger := apt.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := os.Args[1]

	switch command {
	case "watch":
		if err := commands.Watch(ctx, config, logger, os.Stdout); err != nil {
			log.Fatalf("Watching menu events failed: %v", err)
		}

	case "stats":
		if err := commands.Stats(ctx, config, logger, os.Stdout); err != nil {
			log.Fatalf("Fetching menu stats failed: %v", err)
		}

	case "list":
		if err := commands.List(ctx, config, logger, os.Stdout); err != nil {
			log.Fatalf("Listing menu items failed: %v", err)
		}

	case "version":
		fmt.Printf("%s version %s\n", appName, appVersion)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - Chef's menu utility commands

Usage:
  %s <command> [options]

Commands:
  watch      Follow menu change events published by the menu service
  stats      Print total items and average price per course
  list       Print every item currently on the menu
  version    Print version information
  help       Show this help message

Environment Variables:
  UTILS_SERVICES_MENU_URL      Menu service URL (default: http://localhost:8083)
  UTILS_NATS_URL               NATS server URL (default: nats://localhost:4222)
  UTILS_NATS_STREAM_ENABLED    Read from the MENU_EVENTS JetStream stream (default: false)
  UTILS_LOG_LEVEL              Log level: debug, info, error (default: info)

Examples:
  %s stats
  UTILS_NATS_URL=nats://nats:4222 %s watch

`, appName, appName, appName, appName)
}
