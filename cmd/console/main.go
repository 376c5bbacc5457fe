package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/onecx/announcement-console/api/swagger"
	"github.com/onecx/announcement-console/internal/client"
	"github.com/onecx/announcement-console/internal/handler"
	"github.com/onecx/announcement-console/internal/middleware"
	"github.com/onecx/announcement-console/internal/notice"
	"github.com/onecx/announcement-console/internal/service"
	"github.com/onecx/announcement-console/internal/store"
	"github.com/onecx/announcement-console/pkg/config"
	"github.com/onecx/announcement-console/pkg/logger"
	corsmiddleware "github.com/onecx/announcement-console/pkg/middleware/cors"
	reqidmiddleware "github.com/onecx/announcement-console/pkg/middleware/requestid"
)

// @title Announcement Console
// @version 0.1.0
// @description Embeddable announcement management surface for portal hosts
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	api := client.New(cfg.Remote, logr)
	api.OnCall(metricsSvc.ObserveRemoteCall)

	kv := buildStore(cfg, logr)
	dismissed := store.NewDismissedStore(kv, logr)

	notices := &notice.Recorder{}
	sink := notice.Fanout{notice.NewZapNotifier(logr), notices}

	searchSvc := service.NewSearchService(api, sink, logr)
	detailSvc := service.NewDetailService(api, validator.New(), sink, logr, func(changed bool) {
		searchSvc.CloseDialog(context.Background(), changed)
	})
	metadataSvc := service.NewMetadataService(api, logr)
	bannerSvc := service.NewBannerService(api, dismissed, cfg.Context, cfg.Banner, logr, metricsSvc)
	activeListSvc := service.NewActiveListService(api, cfg.Context.WorkspaceName, logr, metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	group := r.Group(cfg.APIPrefix)
	handler.Register(group,
		handler.NewAnnouncementHandler(searchSvc, detailSvc, notices),
		handler.NewMetadataHandler(metadataSvc),
		handler.NewWidgetHandler(bannerSvc, activeListSvc),
	)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("console starting", "addr", addr, "env", cfg.Env, "remote", cfg.Remote.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("console failed", "error", err)
	}
}

// buildStore selects the dismissed-id backend. A Redis that cannot be reached
// degrades to the file backend so the widgets stay functional.
func buildStore(cfg *config.Config, logr *zap.Logger) store.KeyValueStore {
	switch cfg.Dismissed.Backend {
	case config.StoreBackendRedis:
		rdb, err := store.NewRedis(cfg.Redis)
		if err == nil {
			return store.NewRedisStore(rdb)
		}
		logr.Warn("redis unavailable, falling back to file store", zap.Error(err))
	case config.StoreBackendMemory:
		return store.NewMemoryStore()
	}

	fs, err := store.NewFileStore(cfg.Dismissed.Dir)
	if err != nil {
		logr.Warn("file store unavailable, dismissals will not persist", zap.Error(err))
		return store.NewMemoryStore()
	}
	return fs
}
