package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	discordrouter "github.com/AkshatTyagi05/potato-league/internal/adapters/discord"
	"github.com/AkshatTyagi05/potato-league/internal/adapters/httpcard"
	"github.com/AkshatTyagi05/potato-league/internal/adapters/tracker"
	"github.com/AkshatTyagi05/potato-league/internal/app/service"
	"github.com/AkshatTyagi05/potato-league/internal/infra/config"
	"github.com/AkshatTyagi05/potato-league/internal/infra/logging"
	"github.com/AkshatTyagi05/potato-league/internal/infra/storage"
	"github.com/AkshatTyagi05/potato-league/internal/render"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err == nil {
		err = cfg.RequireDiscord()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, closeLog := logging.New(cfg.LogLevel, cfg.LogFile)
	defer closeLog.Close()
	logging.RouteDiscordgo(log)

	fatal := func(msg string, err error) {
		log.Error(msg, "error", err)
		_ = closeLog.Close()
		os.Exit(1)
	}

	if cfg.TrackerKey != "" {
		log.Info("tracker api key found", "prefix", cfg.TrackerKey[:min(5, len(cfg.TrackerKey))]+"...")
	} else {
		log.Warn("TRACKER_KEY not set; requests go out without an api key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB
	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		fatal("open db", err)
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		fatal("migrate", err)
	}
	links := storage.NewLinkRepo(db, log)
	if n, err := links.Count(ctx); err == nil {
		log.Info("✅ DB lista y migrada", "dialect", db.Dialect(), "links", n)
	}

	// tracker.gg + renderer
	stats := tracker.New(cfg.TrackerKey,
		tracker.WithBaseURL(cfg.TrackerBaseURL),
		tracker.WithTimeout(cfg.TrackerTimeout),
		tracker.WithLogger(log),
	)
	cards, err := render.Load(cfg.AssetsDir, cfg.LayoutFile, log)
	if err != nil {
		fatal("card layout", err)
	}

	rank := service.NewRankService(stats, cards, links, cfg.Aliases, log)

	// preview opcional
	if cfg.HTTPAddr != "" {
		web := httpcard.New(rank, log)
		go func() {
			if err := web.Start(ctx, cfg.HTTPAddr); err != nil {
				log.Error("card preview stopped", "error", err)
			}
		}()
	}

	// Discord session
	s, err := discordgo.New(cfg.BotAuth())
	if err != nil {
		fatal("discord session", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	if err := s.Open(); err != nil {
		fatal("discord open", err)
	}
	defer s.Close()
	log.Info("✅ Conectado", "user", s.State.User.Username, "id", s.State.User.ID)

	r := discordrouter.NewRouter(s, cfg.DiscordGuild, rank, log)
	if err := r.Register(); err != nil {
		fatal("registrando comandos", err)
	}
	r.Handlers()
	if cfg.DiscordGuild != "" {
		log.Info("✅ comandos registrados", "guild", cfg.DiscordGuild)
	} else {
		log.Info("✅ comandos registrados globalmente")
	}

	// Esperar señal
	<-ctx.Done()
	log.Info("shutting down")
}
