package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"topildim/internal/config"
	"topildim/internal/database"
	custommiddleware "topildim/internal/middleware"
	"topildim/internal/repository"
	"topildim/internal/service"
	"topildim/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *database.Service
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *database.Service) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithJSON(w, http.StatusOK, db.Health(r.Context()))
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.Database())
	productRepo := repository.NewProductRepository(db.Database())
	foundItemRepo := repository.NewFoundItemRepository(db.Database())
	lostItemRepo := repository.NewLostItemRepository(db.Database())

	// Initialize services
	authService := service.NewAuthService(userRepo)
	bucketService := service.NewBucketService(userRepo, productRepo)
	foundItemService := service.NewFoundItemService(foundItemRepo)
	lostItemService := service.NewLostItemService(lostItemRepo)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(authService, logger)
	productHandler := transport.NewProductHandler(productRepo, logger)
	userHandler := transport.NewUserHandler(bucketService, logger)
	foundItemHandler := transport.NewFoundItemHandler(foundItemService, logger)
	lostItemHandler := transport.NewLostItemHandler(lostItemService, logger)

	// Register routes
	authHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	foundItemHandler.RegisterRoutes(router)
	lostItemHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	// Close store connection
	if s.db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.db.Close(ctx); err != nil {
			s.logger.Error("Failed to close mongodb connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
