package route

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"terminal-terrace/conduit/config"
	"terminal-terrace/conduit/internal/article"
	"terminal-terrace/conduit/internal/comment"
	"terminal-terrace/conduit/internal/database"
	"terminal-terrace/conduit/internal/favorite"
	"terminal-terrace/conduit/internal/follow"
	"terminal-terrace/conduit/internal/logger"
	"terminal-terrace/conduit/internal/login"
	"terminal-terrace/conduit/internal/logout"
	"terminal-terrace/conduit/internal/me"
	"terminal-terrace/conduit/internal/metrics"
	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/internal/page"
	"terminal-terrace/conduit/internal/refresh"
	"terminal-terrace/conduit/internal/register"
	"terminal-terrace/conduit/internal/session"
	"terminal-terrace/conduit/internal/user"
	pkgdb "terminal-terrace/conduit/packages/database"

	_ "terminal-terrace/conduit/docs"
)

func initRoute(r *gin.Engine, db *gorm.DB) error {
	// 初始化依赖
	refreshService := refresh.NewDefaultService()
	sessions := session.NewManager(refreshService)
	limiter := login.NewDefaultLimiter()

	articleService := article.NewArticleService(db, article.NewTagCache(database.RedisDB))
	commentService := comment.NewDefaultService(db)
	userService := user.NewUserService(db)
	followService := follow.NewService(db)
	favoriteService := favorite.NewService(db)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", healthz(db, database.RedisDB))

	metricsConf := config.Conf.Metrics
	if metricsConf.Enabled {
		r.GET(metricsConf.Path, gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	}

	// API 路由组
	api := r.Group("/api")
	{
		register.RegisterRoutes(api, sessions)
		login.RegisterRoutes(api, limiter, sessions)
		logout.RegisterRoutes(api, sessions)
		refresh.RegisterRoutes(api, refreshService)
		me.RegisterRoutes(api)
		user.RegisterRoutes(api, user.NewUserHandler(userService, sessions))

		article.SetupArticleRoutes(api, articleService)
		articles := api.Group("/articles")
		comment.SetupCommentRoutes(articles, commentService)
		favorite.RegisterRoutes(articles, favoriteService)
		follow.RegisterRoutes(api.Group("/profiles"), followService)
	}

	// 服务端渲染页面
	pages, err := page.NewHandler(page.Deps{
		DB:        db,
		Articles:  articleService,
		Comments:  commentService,
		Users:     userService,
		Follows:   followService,
		Favorites: favoriteService,
		Limiter:   limiter,
		Sessions:  sessions,
	})
	if err != nil {
		return err
	}
	page.RegisterRoutes(r, db, pages)
	return nil
}

// healthz 数据库可达才算健康；启用 Redis 时一并检查
func healthz(db *gorm.DB, rdb *pkgdb.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err == nil && rdb != nil {
			err = rdb.Healthy(c.Request.Context())
		}
		if err != nil {
			logger.Named("healthz").Warn("dependency unavailable", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// newEngine 全局中间件；登录限流依赖 ClientIP，只信任配置中的代理
func newEngine(serverConf config.ServerConfig) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(serverConf.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted_proxies: %w", err)
	}

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.Metrics(metrics.Default))
	r.Use(middleware.SecurityHeaders())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	allowedOrigins := serverConf.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{serverConf.APIURL}
	}

	// 设置跨域请求，cookie 鉴权需要 AllowCredentials
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	return r, nil
}

func SetupRouter(db *gorm.DB) (*gin.Engine, error) {
	serverConf := config.Conf.Server
	gin.SetMode(serverConf.Mode)

	r, err := newEngine(serverConf)
	if err != nil {
		return nil, err
	}

	if err := initRoute(r, db); err != nil {
		return nil, err
	}
	return r, nil
}
