package main

import (
	"context"
	"embed"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/apt/middleware"

	"github.com/appetiteclub/chefsmenu/pkg"
	"github.com/appetiteclub/chefsmenu/services/menu/internal/menu"
)

//go:embed seed.json
var seedFS embed.FS

const (
	appNamespace = "MENU"
	appName      = "menu"
	appVersion   = "0.1.0"
)

func main() {
	config, err := apt.LoadConfig(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("%s(%s) cannot setup with error: %v", appName, appVersion, err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := apt.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	store := menu.NewStore()
	statsView := menu.NewStatsView(store)

	lifecycle := []interface{}{}

	natsURL := config.GetStringOrDef("nats.url", "nats://localhost:4222")
	streamEnabled, _ := config.GetString("nats.stream.enabled")

	var publisher events.Publisher
	if streamEnabled == "true" {
		stream, err := pkg.NewNATSStream(pkg.NATSStreamConfig{
			URL:        natsURL,
			StreamName: pkg.MenuStreamName,
			Topic:      pkg.MenuItemsTopic,
			MaxAge:     pkg.DefaultMenuStreamMaxAge,
		})
		if err != nil {
			log.Fatalf("%s(%s) cannot create NATS stream: %v", appName, appVersion, err)
		}
		logger.Info("NATS stream initialized for menu events", "stream", pkg.MenuStreamName)
		publisher = stream
		lifecycle = append(lifecycle, apt.LifecycleHooks{
			OnStop: func(context.Context) error {
				return stream.Close()
			},
		})
	} else {
		natsPublisher, err := pkg.NewNATSPublisher(natsURL)
		if err != nil {
			log.Fatalf("%s(%s) cannot connect to NATS publisher: %v", appName, appVersion, err)
		}
		publisher = natsPublisher
		lifecycle = append(lifecycle, apt.LifecycleHooks{
			OnStop: func(context.Context) error {
				return natsPublisher.Close()
			},
		})
	}

	menu.NewEventPublisher(publisher, logger).Attach(store)

	if config.GetStringOrDef("seeding.enabled", "true") != "false" {
		lifecycle = append(lifecycle, apt.LifecycleHooks{
			OnStart: menu.SeedingFunc(store, seedFS, logger),
		})
	}

	hd := menu.HandlerDeps{
		Store: store,
		Stats: statsView,
	}

	handler := menu.NewHandler(hd, config, logger)

	stack := middleware.DefaultStack(middleware.StackOptions{
		Logger:      logger,
		DisableCORS: true,
	})
	stack = append(stack, middleware.InternalOnly())

	options := []apt.Option{
		apt.WithConfig(config),
		apt.WithLogger(logger),
		apt.WithHTTPMiddleware(stack...),
		apt.WithHTTPServerModules("web.port", handler),
		apt.WithLifecycle(lifecycle...),
		apt.WithHealthChecks(appName),
	}

	ms := apt.NewMicro(options...)
	logger.Infof("Starting %s(%s)", appName, appVersion)

	if err := ms.Run(ctx); err != nil {
		log.Fatalf("%s(%s) stopped with error: %v", appName, appVersion, err)
	}

	logger.Infof("%s(%s) stopped", appName, appVersion)
}
