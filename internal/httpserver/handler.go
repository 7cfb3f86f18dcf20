package httpserver

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	analyticsUsecase "skyscore-srv/internal/analytics/usecase"
	"skyscore-srv/internal/badge/catalog"
	badgeUsecase "skyscore-srv/internal/badge/usecase"
	"skyscore-srv/internal/middleware"
	scoreHTTP "skyscore-srv/internal/score/delivery/http"
	scoreKafka "skyscore-srv/internal/score/delivery/kafka"
	scorePostgre "skyscore-srv/internal/score/repository/postgre"
	scoreUsecase "skyscore-srv/internal/score/usecase"
	"skyscore-srv/internal/scorecard"
	"skyscore-srv/internal/userdata"
	"skyscore-srv/internal/userdata/provider"
	userdataRedis "skyscore-srv/internal/userdata/repository/redis"
	userdataUsecase "skyscore-srv/internal/userdata/usecase"
	pkgHTTP "skyscore-srv/pkg/http"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.discord)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize the data collection layer
	userDataUC := userdataUsecase.New(
		srv.newProvider(),
		userdataRedis.New(srv.redisClient, srv.l, time.Duration(srv.config.Bluesky.CacheTTL)*time.Second),
		srv.l,
	)

	// Initialize analytics and badges
	analyticsUC := analyticsUsecase.New(srv.l, analyticsUsecase.Config{})

	badgeCatalog, err := catalog.NewDefault(catalog.DefaultThresholds())
	if err != nil {
		return err
	}
	badgeUC := badgeUsecase.New(badgeCatalog, userDataUC, analyticsUC, srv.l, badgeUsecase.Config{
		MaxSelectedBadges: srv.config.Score.MaxSelectedBadges,
		ComputeTimeout:    time.Duration(srv.config.Score.ComputeTimeout) * time.Second,
	})

	// Initialize the score domain
	scoreRepo := scorePostgre.New(srv.postgresDB, srv.l)
	publisher := scoreKafka.NewPublisher(srv.kafkaProducer, srv.l)
	scoreUC := scoreUsecase.New(scoreRepo, badgeUC, scorecard.New(), srv.minioClient, publisher, srv.l, scoreUsecase.Config{
		Bucket:        srv.config.MinIO.Bucket,
		CardURLExpiry: time.Duration(srv.config.Score.CardURLExpiry) * time.Second,
	})

	scoreHandler := scoreHTTP.New(srv.l, scoreUC, badgeCatalog, srv.discord)
	scoreHandler.RegisterRoutes(srv.gin.Group(""), mw)

	return nil
}

// newProvider picks the data source: the real Bluesky API, or the
// deterministic mock for demos and offline development.
func (srv *HTTPServer) newProvider() userdata.Provider {
	if srv.config.Bluesky.UseMock {
		return provider.NewMock(time.Now)
	}

	client := pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout: time.Duration(srv.config.Bluesky.Timeout) * time.Second,
	})
	return provider.NewBluesky(client, srv.l, provider.BlueskyConfig{
		ServiceURL: srv.config.Bluesky.ServiceURL,
		PostLimit:  srv.config.Bluesky.PostLimit,
	})
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.Recovery())
	srv.gin.Use(mw.CORS())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
