package di

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/time/rate"

	"gameshub/config"
	"gameshub/driver/cdn_driver"
	"gameshub/driver/genai_driver"
	"gameshub/driver/hub_db"
	"gameshub/driver/oauth_driver"
	"gameshub/driver/rss_driver"
	"gameshub/driver/stack_registry"
	"gameshub/gateway/cache_gateway"
	"gameshub/gateway/cdn_gateway"
	"gameshub/gateway/fetch_feed_gateway"
	"gameshub/gateway/oauth_gateway"
	"gameshub/gateway/search_gateway"
	"gameshub/gateway/token_gateway"
	"gameshub/job"
	"gameshub/middleware"
	"gameshub/usecase/article_usecase"
	"gameshub/usecase/auth_usecase"
	"gameshub/usecase/feed_import_usecase"
	"gameshub/usecase/feed_usecase"
	"gameshub/usecase/game_usecase"
	"gameshub/usecase/leaderboard_usecase"
	"gameshub/usecase/project_config_usecase"
	"gameshub/usecase/project_usecase"
	"gameshub/utils/rate_limiter"
	"gameshub/utils/security"
)

const oauthHTTPTimeout = 15 * time.Second

// ApplicationComponents holds all wired dependencies for the application.
type ApplicationComponents struct {
	Config   *config.Config
	Repo     *hub_db.HubDBRepository
	Registry *stack_registry.Registry

	// Usecases
	AuthUsecase          *auth_usecase.AuthUsecase
	ProjectUsecase       *project_usecase.ProjectUsecase
	FeedUsecase          *feed_usecase.FeedUsecase
	FeedImportUsecase    *feed_import_usecase.FeedImportUsecase
	GameUsecase          *game_usecase.GameUsecase
	LeaderboardUsecase   *leaderboard_usecase.LeaderboardUsecase
	ProjectConfigUsecase *project_config_usecase.ProjectConfigUsecase
	ArticleUsecase       *article_usecase.ArticleUsecase

	// Background work
	FeedScheduler *job.FeedScheduler
	GameWorker    *job.GameWorker
	Maintenance   *job.Maintenance

	// Middleware dependencies
	AdminAuth  *middleware.AdminAuthMiddleware
	DevLimiter *rate_limiter.KeyedLimiter

	GenAIProvider string
}

// NewApplicationComponents wires every dependency from config and the database pool.
func NewApplicationComponents(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (*ApplicationComponents, error) {
	// Stores
	repo := hub_db.NewHubDBRepository(pool)

	stacks, err := config.LoadServiceStacks(cfg)
	if err != nil {
		return nil, fmt.Errorf("load service stacks: %w", err)
	}
	registry := stack_registry.NewRegistry(stacks, cfg.Search.TaskTimeout)

	// External clients
	urlValidator := security.NewURLValidator()
	rssDriver := rss_driver.NewRSSDriver(
		rss_driver.NewSecureHTTPClient(urlValidator, cfg.Scheduler.FetchTimeout),
		rate_limiter.NewHostRateLimiter(cfg.Scheduler.HostInterval),
		cfg.Scheduler.UserAgent,
		cfg.Scheduler.FetchTimeout,
	)

	provider, err := genai_driver.NewProvider(ctx, cfg.GenAI)
	if err != nil {
		return nil, fmt.Errorf("init genai provider: %w", err)
	}
	generator := genai_driver.NewGameGenerator(provider, genai_driver.GeneratorOptions{
		QuizQuestions:  cfg.GenAI.QuizQuestions,
		HangmanWords:   cfg.GenAI.HangmanWords,
		MaxInputChars:  cfg.GenAI.MaxInputChars,
		Timeout:        cfg.GenAI.Timeout,
		BreakerTrips:   uint32(cfg.GenAI.BreakerTrips),
		BreakerTimeout: cfg.GenAI.BreakerTimeout,
	})

	var cloudFront *cdn_driver.CloudFrontDriver
	if cfg.CDN.DistributionID != "" {
		cloudFront, err = cdn_driver.NewFromRegion(ctx, cfg.CDN.Region, cfg.CDN.DistributionID)
		if err != nil {
			return nil, fmt.Errorf("init cloudfront: %w", err)
		}
	}

	oauthDriver := oauth_driver.NewOAuthDriver(
		oauth_driver.ProvidersFromConfig(cfg.OAuth),
		&http.Client{Timeout: oauthHTTPTimeout},
	)

	// Gateways
	tokens := token_gateway.NewTokenGateway(cfg.Auth, cfg.OAuth)
	cacheGateway := cache_gateway.NewCacheGateway(registry)
	searchGateway := search_gateway.NewSearchGateway(registry)

	// Usecases
	authUsecase := auth_usecase.NewAuthUsecase(repo, tokens, oauth_gateway.NewOAuthGateway(oauthDriver), cfg.OAuth.AllowedDomains)
	projectUsecase := project_usecase.NewProjectUsecase(repo, repo, registry, cfg.Auth.APIKeyCache, cfg.Auth.APIKeyTTL)
	importUsecase := feed_import_usecase.NewFeedImportUsecase(
		repo,
		fetch_feed_gateway.NewFetchFeedGateway(rssDriver),
		repo,
		repo,
		searchGateway,
		repo,
		cfg.Scheduler.AutoDisableAfter,
	)

	feedScheduler := job.NewFeedScheduler(repo, importUsecase, cfg.Scheduler.FetchTimeout*2)
	importUsecase.SetScheduler(feedScheduler)

	feedUsecase := feed_usecase.NewFeedUsecase(repo, repo, repo, feedScheduler, urlValidator, cfg.Scheduler)
	gameUsecase := game_usecase.NewGameUsecase(repo, repo, repo, generator, cfg.Worker.MaxAttempts)
	leaderboardUsecase := leaderboard_usecase.NewLeaderboardUsecase(repo, cacheGateway)
	configUsecase := project_config_usecase.NewProjectConfigUsecase(
		repo,
		repo,
		cacheGateway,
		cdn_gateway.NewCDNGateway(cloudFront),
		cfg.Cache.ConfigTTL,
		cfg.Server.PublicBasePath,
	)
	articleUsecase := article_usecase.NewArticleUsecase(repo, searchGateway)

	// Background work
	gameWorker := job.NewGameWorker(gameUsecase, cfg.Worker.Concurrency, cfg.Worker.PollInterval, cfg.Worker.MaxBackoff, cfg.Worker.JobTimeout)

	maintenance := job.NewMaintenance()
	if cfg.Scheduler.Enabled {
		maintenance.Register(job.Task{
			Name:    "reconcile-feeds",
			Every:   cfg.Scheduler.ReconcileEvery,
			Timeout: time.Minute,
			Run:     feedScheduler.Reconcile,
		})
	}
	if cfg.Worker.Enabled {
		maintenance.Register(job.Task{
			Name:       "requeue-stale-game-jobs",
			Every:      cfg.Worker.StaleAfter / 2,
			Timeout:    time.Minute,
			RunAtStart: true,
			Run: func(ctx context.Context) error {
				_, err := gameUsecase.RequeueStaleJobs(ctx, cfg.Worker.StaleAfter)
				return err
			},
		})
	}

	slog.InfoContext(ctx, "application components wired",
		"stacks", registry.Names(),
		"genai_provider", generator.ProviderName(),
		"oauth_providers", oauthDriver.Providers(),
		"cdn_enabled", cloudFront != nil)

	return &ApplicationComponents{
		Config:               cfg,
		Repo:                 repo,
		Registry:             registry,
		AuthUsecase:          authUsecase,
		ProjectUsecase:       projectUsecase,
		FeedUsecase:          feedUsecase,
		FeedImportUsecase:    importUsecase,
		GameUsecase:          gameUsecase,
		LeaderboardUsecase:   leaderboardUsecase,
		ProjectConfigUsecase: configUsecase,
		ArticleUsecase:       articleUsecase,
		FeedScheduler:        feedScheduler,
		GameWorker:           gameWorker,
		Maintenance:          maintenance,
		AdminAuth:            middleware.NewAdminAuthMiddleware(tokens),
		DevLimiter:           rate_limiter.NewKeyedLimiter(rate.Limit(cfg.RateLimit.DevRequestsPerSecond), cfg.RateLimit.DevBurst),
		GenAIProvider:        generator.ProviderName(),
	}, nil
}

// Ready checks the database and the default service stack.
func (c *ApplicationComponents) Ready(ctx context.Context) map[string]error {
	return map[string]error{
		"database":      c.Repo.Ping(ctx),
		"default_stack": c.Registry.Ping(ctx, config.DefaultStackName),
	}
}

func (c *ApplicationComponents) Close() error {
	return c.Registry.Close()
}
