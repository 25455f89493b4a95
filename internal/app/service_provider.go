package app

import (
	"time"

	wheelAPI "prize_wheel/internal/api/wheel"
	"prize_wheel/internal/config"
	"prize_wheel/internal/config/env"
	"prize_wheel/internal/logger"
	"prize_wheel/internal/metrics"
	"prize_wheel/internal/middleware"
	"prize_wheel/internal/repository"
	"prize_wheel/internal/repository/draw_stats_repo"
	"prize_wheel/internal/service"
	"prize_wheel/internal/service/wheel"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	log    *logrus.Entry

	// Metrics
	metrics *metrics.PromMetrics

	// Wheel bits
	wheelCfg      config.WheelConfig
	drawStatsRepo repository.DrawStatsRepository
	wheelServ     service.WheelService
	wheelHand     *wheelAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *logrus.Entry {
	if sp.log == nil {
		cfg := sp.LogCfg()
		sp.log = logger.New(
			logger.NameOption("prize_wheel"),
			logger.FormatOption(cfg.Format()),
			logger.LevelOption(cfg.Level()),
			logger.OutputOption(logger.ParseOutput(cfg.Output(), logger.Rotation{
				MaxSizeMB:  cfg.MaxSizeMB(),
				MaxBackups: cfg.MaxBackups(),
				MaxAgeDays: cfg.MaxAgeDays(),
				Compress:   cfg.Compress(),
			})),
		)
	}
	return sp.log
}

func (sp *ServiceProvider) Metrics() *metrics.PromMetrics {
	if sp.metrics == nil {
		sp.metrics = metrics.NewPromMetrics()
	}
	return sp.metrics
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(env.WheelConfigPath())
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) DrawStatsRepository() repository.DrawStatsRepository {
	if sp.drawStatsRepo == nil {
		sp.drawStatsRepo = draw_stats_repo.NewDrawStatsRepository(
			sp.WheelCfg().StatsWindowSize(),
			sp.WheelCfg().MaxFrequencyDeviation(),
		)
	}
	return sp.drawStatsRepo
}

func (sp *ServiceProvider) WheelService() service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(
			sp.WheelCfg(),
			sp.DrawStatsRepository(),
			sp.Logger().WithField("component", "wheel"),
			wheel.WithMetrics(sp.Metrics()),
		)
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler() *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv: sp.WheelService(),
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chiMiddleware.RequestID)
		r.Use(chiMiddleware.RealIP)
		r.Use(middleware.Logger(sp.Logger()))
		r.Use(chiMiddleware.Recoverer)
		r.Use(chiMiddleware.Timeout(15 * time.Second))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Wheel endpoints
		wheelHandler := sp.WheelHandler()
		r.Route("/wheel", func(rr chi.Router) {
			rr.Post("/setup", wheelHandler.Setup)
			rr.Put("/prizes/{index}", wheelHandler.UpdatePrize)
			rr.Post("/configure", wheelHandler.Configure)
			rr.Post("/confirm", wheelHandler.Confirm)
			rr.Post("/back", wheelHandler.Back)
			rr.Post("/restart", wheelHandler.Restart)
			rr.Post("/draw", wheelHandler.Draw)
			rr.Post("/spins/{id}/complete", wheelHandler.Complete)
			rr.Get("/state", wheelHandler.State)
			rr.Get("/sectors", wheelHandler.Sectors)
			rr.Get("/stats", wheelHandler.Stats)
		})

		r.Method("GET", "/metrics", sp.Metrics().Handler())

		sp.router = r
	}

	return sp.router
}
