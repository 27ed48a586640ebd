// File: cmd/service/main.go
// @title        EBook Library API
// @version      1.0
// @description  電子書圖書館後端 API 文件
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"ebook-library/internal/bootstrap"
	"ebook-library/internal/cache"
	"ebook-library/internal/database"
	"ebook-library/internal/notify"
	"ebook-library/internal/router"
	"ebook-library/internal/service"
	"ebook-library/internal/storage"
	"ebook-library/internal/worker"
	"ebook-library/internal/ws"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "ebook-library/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	loadSecretFn    = service.LoadSecret
	newFCMPusher    = func(ctx context.Context, credPath string) (notify.Pusher, error) { return notify.NewFCMPusher(ctx, credPath) }
	ensureAdminFn   = bootstrap.EnsureAdminUser
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		redisIndex = i
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	urlPrefix := os.Getenv("UPLOAD_URL_PREFIX")
	if urlPrefix == "" {
		urlPrefix = "/files/"
	}

	workerCount := 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return fmt.Errorf("無效的 WORKER_COUNT: %v", err)
		}
		workerCount = c
	}

	// JWT 簽章金鑰沒有安全預設值，載入失敗直接中止
	secret, err := loadSecretFn()
	if err != nil {
		return fmt.Errorf("JWT 金鑰載入失敗: %v", err)
	}
	service.SetSecret(secret)

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := newPgxPool(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	// FCM 憑證未設定時推播通道降級為 no-op，只有金鑰是 fail-fast
	var pusher notify.Pusher = notify.NopPusher{}
	if credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH"); credPath != "" {
		p, err := newFCMPusher(ctx, credPath)
		if err != nil {
			return fmt.Errorf("FCM 初始化失敗: %v", err)
		}
		pusher = p
	}

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	dispatcher := notify.NewDispatcher(pusher, redis, wp)

	hub := ws.NewHub()
	go hub.Run(ctx, redis)

	store := storage.New(uploadDir, urlPrefix)

	if err := ensureAdminFn(ctx, db, os.Getenv("DEFAULT_ADMIN_EMAIL"), os.Getenv("DEFAULT_ADMIN_PASSWORD")); err != nil {
		return fmt.Errorf("預設管理員初始化失敗: %v", err)
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, redis, store, dispatcher, pusher, hub)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":8080")
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
