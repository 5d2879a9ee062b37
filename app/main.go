package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/soundnest/soundnest/internal/repository/mysql"
	redisCache "github.com/soundnest/soundnest/internal/repository/redis"

	"github.com/soundnest/soundnest/internal/metrics"
	"github.com/soundnest/soundnest/internal/rest"
	"github.com/soundnest/soundnest/internal/rest/middleware"
	"github.com/soundnest/soundnest/internal/rest/request"
	"github.com/soundnest/soundnest/internal/usecase/album"
	"github.com/soundnest/soundnest/internal/usecase/albumlike"
	"github.com/soundnest/soundnest/internal/usecase/playlist"
	"github.com/soundnest/soundnest/internal/usecase/user"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	defaultCountTTLSec = 600
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			var sqlDB *sql.DB
			sqlDB, err = db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			} else {
				err = sqlDB.Ping()
				if err == nil {
					break
				}
				log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				_ = sqlDB.Close()
			}
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.RequestLogging())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	if err := request.RegisterValidations(); err != nil {
		log.Fatal("failed to register request validations:", err)
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	albumRepo := mysqlRepo.NewAlbumRepository(db)
	albumLikeRepo := mysqlRepo.NewAlbumLikeRepository(db)
	playlistRepo := mysqlRepo.NewPlaylistRepository(db)
	activityRepo := mysqlRepo.NewActivityRepository(db)
	likeCountCache := redisCache.NewLikeCountCache(client)

	// Build service layer
	countTTLStr := os.Getenv("LIKE_COUNT_TTL_SECONDS")
	countTTLSec, err := strconv.Atoi(countTTLStr)
	if err != nil {
		log.Println("failed to parse like count TTL, using default")
		countTTLSec = defaultCountTTLSec
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = 24
	}

	albumLikeSvc := albumlike.NewService(albumLikeRepo, likeCountCache, time.Duration(countTTLSec)*time.Second)
	albumSvc := album.NewService(albumRepo, albumLikeSvc, albumLikeRepo, likeCountCache)
	playlistSvc := playlist.NewService(playlistRepo, activityRepo)
	userSvc := user.NewService(userRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)

	albumHandler := rest.NewAlbumHandler(albumSvc, albumLikeSvc)
	playlistHandler := rest.NewPlaylistHandler(playlistSvc)
	userHandler := rest.NewUserHandler(userSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Register routes
	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/albums", albumHandler.FetchAlbum)
	route.GET("/albums/:id", albumHandler.GetByID)
	route.GET("/albums/:id/likes", albumHandler.LikeCount)

	route.GET("/playlists/:id", playlistHandler.Get)
	route.GET("/playlists/:id/activity", playlistHandler.Activity)

	route.GET("/metrics", gin.WrapH(metrics.Handler()))

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/albums", albumHandler.Store)
		authorized.PUT("/albums/:id", albumHandler.Update)
		authorized.DELETE("/albums/:id", albumHandler.Delete)
		authorized.POST("/albums/:id/like", albumHandler.Like)
		authorized.DELETE("/albums/:id/like", albumHandler.Unlike)

		authorized.GET("/playlists", playlistHandler.List)
		authorized.POST("/playlists", playlistHandler.Create)
		authorized.PUT("/playlists/:id", playlistHandler.Update)
		authorized.DELETE("/playlists/:id", playlistHandler.Delete)
		authorized.POST("/playlists/:id/songs", playlistHandler.AddSong)
		authorized.DELETE("/playlists/:id/songs/:songID", playlistHandler.RemoveSong)
	}

	// Start Server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
