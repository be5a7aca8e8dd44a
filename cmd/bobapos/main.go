package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"bobapos/internal/cache"
	"bobapos/internal/config"
	"bobapos/internal/connections/database"
	"bobapos/internal/connections/rabbitmq"
	"bobapos/internal/handlers"
	"bobapos/internal/httpx"
	"bobapos/internal/logger"
	"bobapos/internal/notify"
	"bobapos/internal/repository"
	"bobapos/internal/service"
)

func main() {
	mode := flag.String("mode", "api", "api | notifier")
	port := flag.Int("port", 0, "http port (api mode), overrides config")
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := *configPath
	if path == "" {
		var err error
		path, err = config.FindConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, "no config file found, pass --config")
			os.Exit(2)
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		lg.Error("config_load_failed", err, map[string]any{"path": path})
		os.Exit(1)
	}

	switch *mode {
	case "api":
		if *port != 0 {
			cfg.Server.Port = *port
		}
		lg.Info("service_started", map[string]any{"service": "api", "port": cfg.Server.Port})
		if err := runAPI(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "notifier":
		lg.Info("service_started", map[string]any{"service": "board-notifier"})
		if err := notify.Run(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode must be one of: api | notifier")
		os.Exit(2)
	}
}

func runAPI(ctx context.Context, cfg *config.Config) error {
	lg := logger.New("api")

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// The broker and the cache are optional collaborators: the POS keeps
	// taking orders when either is down.
	var publisher service.OrderEventPublisher
	mq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		lg.Warn("rabbitmq_unavailable", map[string]any{"error": err.Error()})
	} else {
		defer mq.Close()
		if err := mq.DeclareTopology(); err != nil {
			return fmt.Errorf("declare rabbitmq topology: %w", err)
		}
		publisher = mq
	}

	var menuCache cache.MenuCacheInterface
	redisCache, err := cache.NewRedisMenuCache(cfg.Redis)
	if err != nil {
		lg.Warn("redis_unavailable", map[string]any{"error": err.Error()})
	} else {
		defer redisCache.Close()
		menuCache = redisCache
	}

	repo := repository.New(db)
	svc := service.New(repo, publisher, menuCache, lg)
	h := handlers.New(svc, lg)

	srv := httpx.New(":"+strconv.Itoa(cfg.Server.Port), handlers.NewRouter(h, lg))
	return srv.Run(ctx)
}
