package main

import (
	"context"
	"errors"
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
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/adiwarman/forum-api/internal/repository/mysql"
	"github.com/adiwarman/forum-api/internal/repository/mysql/model"
	redisRepo "github.com/adiwarman/forum-api/internal/repository/redis"
	"github.com/adiwarman/forum-api/internal/rest"
	"github.com/adiwarman/forum-api/internal/rest/middleware"
	"github.com/adiwarman/forum-api/internal/usecase/thread"
	"github.com/adiwarman/forum-api/internal/usecase/user"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	defaultAccessTTL   = 1  // hours
	defaultRefreshTTL  = 72 // hours
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, relying on environment")
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
	val.Add("loc", "Asia/Jakarta")
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
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
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

	if err := db.AutoMigrate(&model.User{}, &model.Thread{}, &model.Comment{}); err != nil {
		log.Fatal("failed to run migrations: ", err)
	}

	// prepare token store
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
			log.Fatal("got error when closing the redis connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to redis", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// prepare repositories
	threadRepo := mysqlRepo.NewThreadRepository(db, uuid.NewString)
	userRepo := mysqlRepo.NewUserRepository(db, uuid.NewString)

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	accessTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	accessTTL, err := strconv.Atoi(accessTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default")
		accessTTL = defaultAccessTTL
	}
	refreshTTLStr := os.Getenv("REFRESH_EXPIRE_HOURS")
	refreshTTL, err := strconv.Atoi(refreshTTLStr)
	if err != nil {
		log.Println("failed to parse refresh TTL, using default")
		refreshTTL = defaultRefreshTTL
	}
	tokenStore := redisRepo.NewRefreshTokenStore(client, time.Duration(refreshTTL)*time.Hour)

	// build service layer
	threadSvc := thread.NewService(threadRepo)
	userSvc := user.NewService(userRepo, tokenStore, jwtSecret, time.Duration(accessTTL)*time.Hour)
	threadHandler := rest.NewThreadHandler(threadSvc)
	userHandler := rest.NewUserHandler(userSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// register routes
	route.POST("/users", userHandler.Register)
	route.POST("/authentications", userHandler.Login)
	route.PUT("/authentications", userHandler.Refresh)
	route.DELETE("/authentications", userHandler.Logout)

	route.GET("/threads/:threadId", threadHandler.GetThreadDetail)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/threads", threadHandler.Store)
		authorized.POST("/threads/:threadId/comments", threadHandler.CreateComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", threadHandler.DeleteComment)
	}

	// start server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Println("Shutdown signal received, stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server error: ", err)
	}

	log.Println("Server exiting")
}
