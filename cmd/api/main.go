package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"agroworld/db"
	"agroworld/internal/handler"
	"agroworld/internal/repository"
	"agroworld/pkg/fetch"
	"agroworld/pkg/geo"
	"agroworld/pkg/news"
	"agroworld/pkg/weather"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	// Redis only backs the upstream response cache; run without it if the
	// connection fails.
	var cache fetch.Cache
	if err := db.ConnectRedis(); err != nil {
		slog.Warn("redis unavailable, upstream responses will not be cached", "error", err)
	} else {
		cache = db.NewResponseCache(db.Redis)
		defer db.CloseRedis()
	}

	geocoder := geo.NewClient()
	weatherFetcher := fetch.NewClient(10*time.Second, cache, "AgroWorldApp/1.0")
	weatherService := weather.NewService(weather.NewOpenMeteoClient(weatherFetcher), geocoder)
	newsService := news.NewService(news.NewGoogleNewsClient())

	taskRepo := repository.NewTaskRepository(db.DB)

	weatherHandler := handler.NewWeatherHandler(weatherService)
	newsHandler := handler.NewNewsHandler(newsService)
	taskHandler := handler.NewTaskHandler(taskRepo)
	pageHandler := handler.NewPageHandler()

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "agro_world_super_secret_key"
	}
	r.Use(sessions.Sessions("agroworld_session", cookie.NewStore([]byte(secret))))

	r.GET("/", pageHandler.GetIndex)
	r.GET("/weather", weatherHandler.GetWeather)
	r.GET("/news", newsHandler.GetNews)
	r.GET("/tasks", taskHandler.GetTasks)
	r.POST("/api/tasks", taskHandler.CreateTask)
	r.DELETE("/api/tasks/:id", taskHandler.DeleteTask)
	r.POST("/api/tasks/:id/toggle", taskHandler.ToggleTask)
	r.GET("/crop-care", pageHandler.GetCropCare)
	r.GET("/login", pageHandler.GetLogin)
	r.POST("/login", pageHandler.PostLogin)
	r.GET("/logout", pageHandler.GetLogout)
	r.GET("/register", pageHandler.GetRegister)
	r.GET("/logistics", pageHandler.GetLogistics)
	r.GET("/schemes", pageHandler.GetSchemes)
	r.GET("/market", pageHandler.GetMarket)
	r.GET("/health", taskHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
