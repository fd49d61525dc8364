package server

import (
	"fmt"
	"time"

	"github.com/farellandr/fyyur/config"
	"github.com/farellandr/fyyur/internal/forms"
	"github.com/farellandr/fyyur/internal/handlers"
	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/farellandr/fyyur/web"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const flashTTL = 5 * time.Minute

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := NewRouter(repository.New(db), logger, cfg.Secret)
	if err != nil {
		return err
	}

	logger.Infow("server starting", "port", cfg.Port, "debug", cfg.Debug)
	return r.Run(":" + cfg.Port)
}

// NewRouter builds the engine with templates, middleware and every route
// wired to store.
func NewRouter(store *repository.Store, logger *zap.SugaredLogger, secret []byte) (*gin.Engine, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := forms.Register(v); err != nil {
			return nil, fmt.Errorf("failed to register validators: %v", err)
		}
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %v", err)
	}

	signer, err := helpers.NewFlashSigner(secret, flashTTL)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.RequestLogger(logger), middleware.Recovery(logger), middleware.FlashMiddleware(signer))

	setupRoutes(r, handlers.New(store, logger))
	return r, nil
}

func setupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.NoRoute(handlers.NotFound)

	r.GET("/", handlers.Home)

	venues := r.Group("/venues")
	{
		venues.GET("", h.ListVenues)
		venues.POST("/search", h.SearchVenues)
		venues.GET("/create", h.CreateVenueForm)
		venues.POST("/create", h.CreateVenue)
		venues.GET("/:id", h.GetVenue)
		venues.DELETE("/:id", h.DeleteVenue)
		venues.GET("/:id/edit", h.EditVenueForm)
		venues.POST("/:id/edit", h.UpdateVenue)
	}

	artists := r.Group("/artists")
	{
		artists.GET("", h.ListArtists)
		artists.POST("/search", h.SearchArtists)
		artists.GET("/create", h.CreateArtistForm)
		artists.POST("/create", h.CreateArtist)
		artists.GET("/:id", h.GetArtist)
		artists.GET("/:id/edit", h.EditArtistForm)
		artists.POST("/:id/edit", h.UpdateArtist)
	}

	shows := r.Group("/shows")
	{
		shows.GET("", h.ListShows)
		shows.GET("/create", h.CreateShowForm)
		shows.POST("/create", h.CreateShow)
	}
}
