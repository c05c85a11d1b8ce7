package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mediconnect/mediconnect-api/internal/config"
	"github.com/mediconnect/mediconnect-api/internal/handlers"
	"github.com/mediconnect/mediconnect-api/internal/middleware"
	"github.com/mediconnect/mediconnect-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	setupLogger(cfg.App.Env)

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, db, err := store.Connect(ctx, cfg.Mongo)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		logrus.Fatalf("Failed to ensure indexes: %v", err)
	}
	logrus.Info("Successfully connected to MongoDB!")

	h := handlers.NewHandler(db, cfg.JWT)

	// --- Gin Router ---
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	registerRoutes(r, h, cfg)

	logrus.Infof("Starting server on port %s", cfg.App.Port)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}

func registerRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	auth := middleware.AuthMiddleware(cfg.JWT.Secret)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.RegisterUser)
		authRoutes.POST("/login", h.Login)
	}

	// Appointment Routes
	r.POST("/appointments", auth, h.CreateAppointment)
	r.GET("/appointments/user", auth, h.GetUserAppointments)

	// Article Routes
	r.GET("/articles", auth, h.GetArticles)
	r.GET("/articles/:id", auth, h.GetArticleByID)

	// Doctor Routes
	r.GET("/doctors", auth, h.GetDoctors)
	r.GET("/doctors/:id", auth, h.GetDoctorByID)

	// Content creation is open by default so the app can be populated
	// without an admin account. ALLOW_PUBLIC_WRITES=false locks it down.
	if cfg.AllowPublicWrites {
		r.POST("/articles", h.CreateArticle)
		r.POST("/doctors", h.CreateDoctor)
	} else {
		r.POST("/articles", auth, h.CreateArticle)
		r.POST("/doctors", auth, h.CreateDoctor)
	}
}

func setupLogger(env string) {
	if env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}
