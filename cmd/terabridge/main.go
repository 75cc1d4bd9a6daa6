package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newmo-oss/ctxtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/na2na-p/terabridge/internal/config"
	"github.com/na2na-p/terabridge/internal/domain"
	"github.com/na2na-p/terabridge/internal/handler"
	"github.com/na2na-p/terabridge/internal/handler/bot"
	"github.com/na2na-p/terabridge/internal/handler/middleware"
	"github.com/na2na-p/terabridge/internal/infrastructure"
	"github.com/na2na-p/terabridge/internal/infrastructure/jsonstore"
	"github.com/na2na-p/terabridge/internal/infrastructure/logging"
	"github.com/na2na-p/terabridge/internal/infrastructure/lrucache"
	"github.com/na2na-p/terabridge/internal/infrastructure/metrics"
	"github.com/na2na-p/terabridge/internal/infrastructure/redis"
	"github.com/na2na-p/terabridge/internal/infrastructure/s3"
	"github.com/na2na-p/terabridge/internal/infrastructure/telegram"
	"github.com/na2na-p/terabridge/internal/infrastructure/terabox"
	"github.com/na2na-p/terabridge/internal/usecase"
)

const (
	readTimeout  = 30 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 120 * time.Second
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logging.MaskSensitiveAttrs,
	}))
	slog.SetDefault(logger)

	if err := run(level); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run(level *slog.LevelVar) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		slog.Warn("unknown log level, falling back to info", "level", cfg.Log.Level)
	}
	slog.Info("configuration loaded",
		"telegram", cfg.Telegram.String(),
		"terabox", cfg.Terabox.String(),
		"redis", cfg.Redis.String(),
		"s3", cfg.S3.String(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	startedAt := ctxtime.Now(ctx)

	store := jsonstore.New(cfg.Store.Path)
	if err := store.Load(ctx); err != nil {
		return err
	}
	callers := jsonstore.NewCallerRepository(store)
	tokens := jsonstore.NewAccessTokenRepository(store)
	throttles := jsonstore.NewThrottleRepository(store)

	// Bot APIへのアップロードは数分かかるため、クライアント全体のタイムアウトは設けない
	botAPI, err := telegram.NewBot(telegram.BotConfig{
		Token:       cfg.Telegram.BotToken,
		APIEndpoint: cfg.Telegram.APIEndpoint,
	}, &http.Client{})
	if err != nil {
		return err
	}
	slog.Info("telegram bot authorized", "username", botAPI.Self.UserName)
	messenger := telegram.NewMessenger(botAPI)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(registry)

	checkers := []usecase.HealthChecker{
		jsonstore.NewHealthChecker(store),
		telegram.NewHealthChecker(botAPI),
		usecase.NewTempDirChecker(cfg.Transfer.TempDir),
	}

	var cache usecase.ResolutionCache
	if cfg.Redis.Enabled {
		conn, err := redis.Connect(ctx, redis.ConnectionConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, goredis.NewClient)
		if err != nil {
			return err
		}
		redisClient := redis.NewClient(conn)
		defer func() { _ = redisClient.Close() }()
		cache = redis.NewResolutionCache(redisClient)
		checkers = append(checkers, redis.NewHealthChecker(redisClient))
		slog.Info("Redis connection established")
	} else {
		cache = lrucache.NewResolutionCache(cfg.Cache.LRUSize, cfg.Cache.ResolutionTTL)
		slog.Info("using in-process resolution cache", "size", cfg.Cache.LRUSize)
	}

	resolver := infrastructure.NewCachingLinkResolver(
		terabox.NewResolver(&http.Client{}, terabox.Config{
			Cookie:            cfg.Terabox.Cookie,
			BaseURL:           cfg.Terabox.BaseURL,
			DerivedAPIEnabled: cfg.Terabox.DerivedAPIEnabled,
		}),
		cache,
		cfg.Cache.ResolutionTTL,
	)

	archives, archiveCheckers, err := buildArchiveSinks(cfg, messenger)
	if err != nil {
		return err
	}
	checkers = append(checkers, archiveCheckers...)

	privileged, err := domain.ParsePrivilegedSet(cfg.Telegram.AdminIDs)
	if err != nil {
		return fmt.Errorf("failed to parse admin ids: %w", err)
	}
	if privileged.Len() == 0 {
		slog.Warn("no admin ids configured; /broadcast is unavailable")
	} else {
		slog.Info("admin ids configured", "count", privileged.Len())
	}
	membershipChat := domain.ChatID(cfg.Telegram.MembershipChatID)
	admission := usecase.NewAdmissionChain(privileged, usecase.DefaultAdmissionChecks(
		usecase.NewAuthorizationCheck(privileged),
		usecase.NewMembershipCheck(messenger, membershipChat, usecase.SleepContext),
		usecase.NewTokenCheck(tokens),
		usecase.NewThrottleCheck(throttles, cfg.Admission.Cooldown),
	), callers, recorder)

	pipelineCfg := usecase.DefaultTransferPipelineConfig()
	pipelineCfg.TempDir = cfg.Transfer.TempDir
	pipelineCfg.ProgressInterval = cfg.Transfer.ProgressInterval
	pipelineCfg.ArchiveTimeout = cfg.Transfer.ArchiveTimeout
	pipelineCfg.ArchiveMinThroughput = cfg.Transfer.ArchiveMinThroughput
	// ダウンロード本体にはタイムアウトを設けない
	pipeline := usecase.NewTransferPipeline(&http.Client{}, messenger, archives, pipelineCfg, usecase.SleepContext, recorder)

	dispatcher := bot.NewDispatcher(bot.UseCases{
		Link: usecase.NewLinkUseCase(
			admission,
			messenger,
			resolver,
			resolver,
			pipeline,
			usecase.NewKeywordFilter(cfg.Transfer.AdultKeywords),
			recorder,
			usecase.LinkUseCaseConfig{
				SizeLimitBytes: cfg.Transfer.SizeLimitBytes,
				ResolveTimeout: cfg.Transfer.ResolveTimeout,
			},
		),
		Token: usecase.NewTokenUseCase(admission, messenger, tokens, cfg.Admission.TokenValidity),
		Broadcast: usecase.NewBroadcastUseCase(admission, messenger, callers, usecase.BroadcastUseCaseConfig{
			Enabled:       cfg.Broadcast.Enabled,
			RatePerSecond: cfg.Broadcast.RatePerSecond,
		}, usecase.SleepContext, recorder),
		Welcome: usecase.NewWelcomeUseCase(admission, messenger, usecase.WelcomeUseCaseConfig{
			MembershipChatID: membershipChat,
			Cooldown:         cfg.Admission.Cooldown,
			TokenValidity:    cfg.Admission.TokenValidity,
			SizeLimitBytes:   cfg.Transfer.SizeLimitBytes,
		}),
	}, cfg.Telegram.MaxConcurrentUpdates)

	readinessUC := usecase.NewReadinessUseCase(checkers...)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	ipExtractor, err := buildIPExtractor(cfg.Server.TrustProxy, cfg.Server.TrustedProxyCIDRs)
	if err != nil {
		return err
	}
	e.IPExtractor = ipExtractor

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger())
	e.Use(middleware.HTTPMetrics(recorder))

	webhookMode := cfg.Telegram.WebhookURL != ""
	updateMode := handler.UpdateModePolling
	if webhookMode {
		updateMode = handler.UpdateModeWebhook
	}
	e.GET("/healthz", handler.NewHealthHandler(updateMode, startedAt))
	e.GET("/readyz", handler.NewReadyzHandler(readinessUC).Handle)
	e.GET("/metrics", handler.MetricsHandler(registry))

	if webhookMode {
		webhookPath, err := webhookRoute(cfg.Telegram.WebhookURL)
		if err != nil {
			return err
		}
		e.POST(webhookPath, handler.NewWebhookHandler(ctx, dispatcher, cfg.Telegram.WebhookSecret).Handle)
		slog.Info("webhook route registered", "path", webhookPath)
	}

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		slog.Info("shutting down server")
		return e.Shutdown(shutdownCtx)
	})

	if webhookMode {
		if err := telegram.SetWebhook(botAPI, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); err != nil {
			stop()
			_ = g.Wait()
			return err
		}
		slog.Info("receiving updates via webhook")
	} else {
		if err := telegram.DeleteWebhook(botAPI); err != nil {
			slog.Warn("failed to delete webhook before polling", "error", err)
		}
		poller := telegram.NewPoller(botAPI, dispatcher, cfg.Telegram.PollTimeout, usecase.SleepContext)
		g.Go(func() error {
			slog.Info("receiving updates via long polling")
			return poller.Run(gctx)
		})
	}

	err = g.Wait()
	slog.Info("waiting for in-flight updates", "timeout", cfg.Telegram.DrainTimeout.String())
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), cfg.Telegram.DrainTimeout)
	defer cancelDrain()
	if drainErr := dispatcher.Drain(drainCtx); drainErr != nil {
		slog.Warn("gave up waiting for in-flight updates", "error", drainErr)
	}
	if err != nil {
		return err
	}
	slog.Info("server stopped gracefully")
	return nil
}

// buildArchiveSinks は設定されたアーカイブ先を組み立てる。未設定の場合は空
func buildArchiveSinks(cfg *config.Config, messenger usecase.Messenger) ([]usecase.ArchiveSink, []usecase.HealthChecker, error) {
	var sinks []usecase.ArchiveSink
	var checkers []usecase.HealthChecker

	if cfg.Telegram.ArchiveChatID != 0 {
		sink, err := telegram.NewChatArchiveSink(messenger, domain.ChatID(cfg.Telegram.ArchiveChatID))
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, sink)
		slog.Info("archive chat configured", "chat_id", cfg.Telegram.ArchiveChatID)
	}

	if cfg.S3.Enabled {
		client := s3.NewS3Client(s3.NewS3Connection(s3.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.BucketName,
		}), cfg.S3.BucketName)
		sinks = append(sinks, s3.NewArchiveSink(client, cfg.S3.Prefix))
		checkers = append(checkers, s3.NewArchiveBucketChecker(client))
		slog.Info("S3 archive configured", "bucket", cfg.S3.BucketName)
	}

	return sinks, checkers, nil
}

// webhookRoute はwebhook URLのパス部分をルートとして返す。パスがなければ /telegram/webhook
func webhookRoute(webhookURL string) (string, error) {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return "", fmt.Errorf("invalid telegram.webhook_url: %w", err)
	}
	if u.Scheme != "https" {
		return "", fmt.Errorf("telegram.webhook_url must use https: %q", webhookURL)
	}
	if u.Path == "" || u.Path == "/" {
		return "/telegram/webhook", nil
	}
	return u.Path, nil
}

// buildIPExtractor は設定に基づいてIPエクストラクタを構築する。
// プロキシを信頼しない場合やCIDRが未指定の場合は接続元IPを直接使用する
func buildIPExtractor(trustProxy bool, trustedProxyCIDRs []string) (echo.IPExtractor, error) {
	if !trustProxy || len(trustedProxyCIDRs) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	trustOptions := make([]echo.TrustOption, 0, len(trustedProxyCIDRs))
	for _, cidr := range trustedProxyCIDRs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy CIDR %q: %w", cidr, err)
		}
		trustOptions = append(trustOptions, echo.TrustIPRange(ipNet))
	}

	slog.Info("trusted proxy CIDRs configured", "cidrs", trustedProxyCIDRs)
	return echo.ExtractIPFromXFFHeader(trustOptions...), nil
}
