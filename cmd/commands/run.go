package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rodut"
	"rodut/config"
	"rodut/internal/application/guard"
	"rodut/internal/application/usecase"
	"rodut/internal/application/validator"
	"rodut/internal/infrastructure/broker"
	"rodut/internal/infrastructure/contenthost"
	"rodut/internal/infrastructure/database"
	"rodut/internal/infrastructure/grpcserver"
	"rodut/internal/infrastructure/metrics"
	"rodut/internal/infrastructure/minio"
	"rodut/internal/presentation"
	"rodut/internal/presentation/handler"
	"rodut/internal/presentation/middleware"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running rodut", "version", rodut.StringVersion())

	credential, err := guard.NewCredential(cfg.Ingest.APIKeyHash, cfg.Ingest.APIKeySalt)
	if err != nil {
		ExitOnError(err)
	}

	if !credential.Configured() {
		logger.Warn("API_KEY_HASH is not set, every authenticated request will be refused")
	}

	requestGuard, err := guard.New(cfg.Ingest.AllowedCallers, credential)
	if err != nil {
		ExitOnError(err)
	}

	healthServer := grpcserver.New(cfg.GRPCServer)
	if err := healthServer.Listen(); err != nil {
		ExitOnError(err)
	}

	go func() {
		if err := healthServer.Serve(); err != nil {
			ExitOnError(fmt.Errorf("grpc health server: %w", err))
		}
	}()

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}

	if err := minIOClient.EnsureBucket(context.Background(), cfg.MinIOUploader.Bucket,
		time.Duration(cfg.MinIOUploader.Timeout)*time.Millisecond); err != nil {
		ExitOnError(err)
	}

	host := contenthost.New(contenthost.Deps{
		Sequencer:   database.NewSequencer(db),
		Users:       database.NewUserRetriever(db),
		Options:     database.NewOptionRetriever(db),
		Posts:       database.NewPostWriter(db),
		Attachments: database.NewAttachmentWriter(db),
		AttachRead:  database.NewAttachmentRetriever(db),
		Uploader:    minio.NewUploader(minIOClient.MinioClient, &cfg.MinIOUploader),
		Reader:      minio.NewReader(minIOClient.MinioClient, &cfg.MinIOReader),
		Remover:     minio.NewRemover(minIOClient.MinioClient, &cfg.MinIORemover),
		Publisher:   brokerPublisher,
	}, cfg.Site)

	observer, err := metrics.NewObserver(nil)
	if err != nil {
		ExitOnError(err)
	}

	uploadValidator := validator.NewUpload(cfg.Ingest.MaxUploadSize, cfg.Ingest.AllowedTypes)

	siteHandler := handler.NewSiteHandler(usecase.NewSite(host))
	postHandler := handler.NewPostHandler(usecase.NewPoster(requestGuard, host, cfg.Ingest.AuthorID))
	uploadHandler := handler.NewUploadHandler(
		usecase.NewUploader(requestGuard, uploadValidator, host, observer),
		uploadValidator.MaxSize(),
	)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(middleware.RequestLog())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())

	e.GET(presentation.HealthPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET(presentation.MetricsPath, echo.WrapHandler(promhttp.Handler()))

	allowlist := middleware.CallerAllowlist(requestGuard)

	api := e.Group(presentation.APIPrefix)
	api.GET(presentation.VersionPath, siteHandler.HandleVersion,
		middleware.Observe(observer, presentation.OpVersion))
	api.GET(presentation.TitlePath, siteHandler.HandleTitle,
		middleware.Observe(observer, presentation.OpTitle))
	api.POST(presentation.CreatePostPath, postHandler.HandleCreatePost,
		middleware.Observe(observer, presentation.OpCreatePost), allowlist,
		echoMiddleware.BodyLimit(cfg.HTTP.PostBodyLimit))
	api.POST(presentation.UploadMediaPath, uploadHandler.HandleUpload,
		middleware.Observe(observer, presentation.OpUploadMedia), allowlist)

	healthServer.SetServing(true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down rodut")
	healthServer.SetServing(false)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Millisecond)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}

	healthServer.Stop()

	if err := db.Stop(); err != nil {
		logger.Error("failed to disconnect database", "err", err)
	}

	if err := brokerClient.Close(); err != nil {
		logger.Error("failed to close broker client", "err", err)
	}
}
