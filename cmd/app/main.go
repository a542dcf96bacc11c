package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/innoquest/hackathon-backend/internal/auth"
	"github.com/innoquest/hackathon-backend/internal/config"
	"github.com/innoquest/hackathon-backend/internal/db"
	"github.com/innoquest/hackathon-backend/internal/handler"
	"github.com/innoquest/hackathon-backend/internal/handler/server"
	"github.com/innoquest/hackathon-backend/internal/logger"
	"github.com/innoquest/hackathon-backend/internal/memstore"
	"github.com/innoquest/hackathon-backend/internal/repository/postgres"
	"github.com/innoquest/hackathon-backend/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	database := db.MustLoad(cfg)
	log.Info("connected to database")
	defer database.Close()

	gate := auth.NewGate(cfg.Admin.Username, cfg.Admin.Password)

	teamRepo := postgres.NewTeamRepository(database)
	coreTeamRepo := postgres.NewCoreTeamRepository(database)
	announcementRepo := postgres.NewAnnouncementRepository(database)
	contactRepo := postgres.NewContactRepository(database)

	timelineStore := memstore.NewTimelineStore()
	countdownStore := memstore.NewCountdownStore()
	organizerStore := memstore.NewOrganizerStore()
	linkStore := memstore.NewRegistrationLinkStore()

	teamService := service.NewTeamService(gate, teamRepo)
	timelineService := service.NewTimelineService(gate, timelineStore)
	countdownService := service.NewCountdownService(gate, countdownStore)
	coreTeamService := service.NewCoreTeamService(gate, coreTeamRepo)
	announcementService := service.NewAnnouncementService(gate, announcementRepo)
	organizerService := service.NewOrganizerService(gate, organizerStore)
	registrationService := service.NewRegistrationLinkService(gate, linkStore)
	contactService := service.NewContactService(gate, contactRepo)

	h := handler.NewHandler(
		log,
		teamService,
		timelineService,
		countdownService,
		coreTeamService,
		announcementService,
		organizerService,
		registrationService,
		contactService,
	)
	srv := server.NewServer(log, h, cfg.HTTPAddr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
}
