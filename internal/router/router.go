package router

import (
	"gamescove/internal/handlers"
	"gamescove/internal/middleware"
	"gamescove/internal/repository"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New assembles the engine with session support and all routes. Tests build
// their own engines against in-memory databases through the same path.
func New(gdb *gorm.DB, sessionSecret []byte) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore(sessionSecret)
	r.Use(sessions.Sessions("gamescove_admin", store))

	RegisterRoutes(r, gdb)
	return r
}

func RegisterRoutes(r *gin.Engine, gdb *gorm.DB) {
	repos := repository.New(gdb)

	authHandler := handlers.NewAuthHandler()
	gamesHandler := handlers.NewGamesHandler(repos)
	productsHandler := handlers.NewProductsHandler(repos)
	blogsHandler := handlers.NewBlogsHandler(repos)
	commentsHandler := handlers.NewCommentsHandler(repos)
	socialLinksHandler := handlers.NewSocialLinksHandler(repos)
	adsHandler := handlers.NewAdsHandler(repos)
	settingsHandler := handlers.NewSettingsHandler(repos)
	metaHandler := handlers.NewMetaHandler(repos)
	chatHandler := handlers.NewChatHandler()

	api := r.Group("/api")

	// Public reads: CDN-cacheable and compressed.
	public := api.Group("",
		middleware.CacheControl(middleware.PublicCachePolicy),
		gzip.Gzip(gzip.DefaultCompression),
	)
	{
		public.GET("/games", gamesHandler.List)
		public.GET("/games/:id", gamesHandler.Detail)
		public.GET("/products", productsHandler.List)
		public.GET("/products/:id", productsHandler.Detail)
		public.GET("/blogs", blogsHandler.List)
		public.GET("/blogs/:id", blogsHandler.Detail)
		public.GET("/comments/:blogId", commentsHandler.ForPost)
		public.GET("/social-links", socialLinksHandler.List)
		public.GET("/ads", adsHandler.Codes)
		public.GET("/settings", settingsHandler.Get)
		public.GET("/meta/categories", metaHandler.Categories)
		public.GET("/meta/tags", metaHandler.Tags)
	}

	// Public mutations and the chat proxy are never cached.
	direct := api.Group("", middleware.CacheControl(middleware.NoStorePolicy))
	{
		direct.POST("/comments", commentsHandler.Submit)
		direct.POST("/chat", chatHandler.Chat)
	}

	auth := api.Group("/auth", middleware.CacheControl(middleware.NoStorePolicy))
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/logout", authHandler.Logout)
		auth.GET("/check", authHandler.Check)
	}

	// Admin surface: session required everywhere, CSRF on state changes.
	admin := api.Group("/admin",
		middleware.CacheControl(middleware.NoStorePolicy),
		middleware.AuthRequired(),
		middleware.CSRFRequired(),
	)
	{
		admin.GET("/games", gamesHandler.AdminList)
		admin.POST("/games", gamesHandler.Create)
		admin.PUT("/games", gamesHandler.Update)
		admin.DELETE("/games", gamesHandler.Delete)

		admin.GET("/products", productsHandler.AdminList)
		admin.POST("/products", productsHandler.Create)
		admin.PUT("/products", productsHandler.Update)
		admin.DELETE("/products", productsHandler.Delete)

		admin.GET("/blogs", blogsHandler.AdminList)
		admin.POST("/blogs", blogsHandler.Create)
		admin.PUT("/blogs", blogsHandler.Update)
		admin.DELETE("/blogs", blogsHandler.Delete)

		admin.GET("/social-links", socialLinksHandler.AdminList)
		admin.POST("/social-links", socialLinksHandler.Create)
		admin.PUT("/social-links", socialLinksHandler.Update)
		admin.DELETE("/social-links", socialLinksHandler.Delete)

		admin.GET("/comments", commentsHandler.AdminList)
		admin.PUT("/comments", commentsHandler.UpdateStatus)
		admin.DELETE("/comments", commentsHandler.Delete)

		admin.GET("/ads", adsHandler.AdminList)
		admin.POST("/ads", adsHandler.Save)
		admin.DELETE("/ads", adsHandler.Delete)

		admin.GET("/settings", settingsHandler.AdminGet)
		admin.PUT("/settings", settingsHandler.Save)
	}
}
