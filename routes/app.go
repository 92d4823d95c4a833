package routes

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"petal-pink/config"
	"petal-pink/controllers"
	"petal-pink/middleware"
	"petal-pink/repositories"
	"petal-pink/services"
	"petal-pink/utils"
)

// App is the assembled HTTP service with the connections it owns.
type App struct {
	Router   *gin.Engine
	Catalog  *repositories.Catalog
	Sessions *services.CartSessions

	db    *pgxpool.Pool
	redis *redis.Client
}

// LoadCatalog builds the catalog from compiled-in data or, with
// CATALOG_SOURCE=postgres, from the products tables.
func LoadCatalog(ctx context.Context, cfg *config.Config, db *pgxpool.Pool) (*repositories.Catalog, error) {
	products := repositories.DefaultProducts()
	if cfg.CatalogSource == config.CatalogPostgres {
		loaded, err := repositories.NewProductRepository(db).LoadProducts(ctx)
		if err != nil {
			return nil, err
		}
		products = loaded
	}
	return repositories.NewCatalog(products)
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	app := &App{}

	if cfg.NeedsDatabase() {
		if err := config.RunMigrations(cfg, logger); err != nil {
			return nil, err
		}
		db, err := config.ConnectDB(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		app.db = db
	}

	rdb, err := config.ConnectRedis(ctx, cfg, logger)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.redis = rdb

	catalog, err := LoadCatalog(ctx, cfg, app.db)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	app.Catalog = catalog
	logger.Info("catalog loaded",
		zap.String("source", cfg.CatalogSource),
		zap.Int("products", catalog.Len()))

	var snapshots services.CartSnapshotRepository
	switch cfg.CartStore {
	case config.CartStoreRedis:
		snapshots = repositories.NewCartRedisRepository(app.redis, cfg.CartTTL)
	case config.CartStorePostgres:
		snapshots = repositories.NewCartRepository(app.db)
	}

	var cache *repositories.ProductCache
	if app.redis != nil {
		cache = repositories.NewProductCache(app.redis)
		if err := cache.Invalidate(ctx); err != nil {
			logger.Warn("product cache invalidation failed", zap.Error(err))
		}
	}

	app.Sessions = services.NewCartSessions(catalog, snapshots, logger, services.WithIdleTTL(cfg.CartIdleTTL))
	tokens := utils.NewSessionTokens(cfg.SessionSecret, cfg.SessionExpiry)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))

	SetupRoutes(router, Controllers{
		Products: controllers.NewProductController(services.NewProductService(catalog, cfg.RatingSeed), cache, logger),
		Cart:     controllers.NewCartController(app.Sessions, catalog, tokens, logger),
		Checkout: controllers.NewCheckoutController(services.NewCheckoutService(app.Sessions), logger),
		Tokens:   tokens,
	})
	app.Router = router

	return app, nil
}

func (a *App) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}
