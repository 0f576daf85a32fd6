package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	httpctx "github.com/astroline/astroline-server/internal/api/http/context"
	"github.com/astroline/astroline-server/internal/api/http/router"
	httpserver "github.com/astroline/astroline-server/internal/api/http/server"
	"github.com/astroline/astroline-server/internal/config"
	"github.com/astroline/astroline-server/internal/logger"
	"github.com/astroline/astroline-server/internal/model"
	"github.com/astroline/astroline-server/internal/notify"
	"github.com/astroline/astroline-server/internal/repository/memory"
	"github.com/astroline/astroline-server/internal/repository/postgres"
	redisrepo "github.com/astroline/astroline-server/internal/repository/redis"
	"github.com/astroline/astroline-server/internal/scheduler"
	"github.com/astroline/astroline-server/internal/server"
	"github.com/astroline/astroline-server/internal/service"
	"github.com/astroline/astroline-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	var (
		userStore      model.UserStore
		horoscopeStore model.HoroscopeStore
		logStore       model.DeliveryLogStore
		db             *postgres.Connection
	)

	if cfg.Storage.Backend == config.BackendPostgres || cfg.Session.Backend == config.BackendPostgres {
		db, err = postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("failed to initialize storage", "error", err)
		}
		defer db.Close()
	}

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		userStore = postgres.NewUserRepository(db)
		horoscopeStore = postgres.NewHoroscopeRepository(db)
		logStore = postgres.NewDeliveryLogRepository(db)
	case config.BackendMemory:
		store := memory.NewStore()
		userStore = memory.NewUserRepository(store)
		horoscopeStore = memory.NewHoroscopeRepository(store)
		logStore = memory.NewDeliveryLogRepository(store)
	}

	var sessionStore model.SessionStore
	switch cfg.Session.Backend {
	case config.BackendPostgres:
		pgSessions, err := postgres.NewSessionRepository(ctx, db, cfg.Session.PruneInterval, logger)
		if err != nil {
			logger.Fatal("failed to initialize session store", "error", err)
		}
		defer pgSessions.Stop()
		sessionStore = pgSessions
	case config.BackendMemory:
		memSessions := memory.NewSessionStore(cfg.Session.PruneInterval)
		defer memSessions.Stop()
		sessionStore = memSessions
	case config.BackendRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		defer client.Close()
		sessionStore = redisrepo.NewSessionStore(client)
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.Session.TTL)
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userStore, sessionStore, tokenManager, cfg.Session.TTL, logger)
	userService := service.NewUser(userStore, logger)
	horoscopeService := service.NewHoroscope(horoscopeStore, logger)

	sender := notify.NewLogSender(logger.Component("sender"))
	deliveryService := service.NewDelivery(userStore, horoscopeStore, logStore, sender, logger)

	r := router.New(authService, userService, horoscopeService, deliveryService, ctxMgr, logger)
	httpServer := httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	if cfg.Delivery.Enabled {
		sched := scheduler.New(deliveryService, cfg.Delivery.Interval, logger.Component("scheduler"))
		wg.Add(1)
		go func() {
			defer wg.Done()
			sched.Run(ctx)
		}()
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
