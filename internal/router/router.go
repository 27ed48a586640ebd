// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"ebook-library/internal/cache"
	"ebook-library/internal/database"
	"ebook-library/internal/handler"
	"ebook-library/internal/handler/auth"
	"ebook-library/internal/handler/books"
	"ebook-library/internal/handler/files"
	"ebook-library/internal/middleware"
	"ebook-library/internal/notify"
	"ebook-library/internal/storage"
	"ebook-library/internal/ws"
)

// Setup 註冊所有路由與中介層
// middleware.Auth 為全域過濾器：解析 Bearer 令牌、過期/無效直接 401；
// 各路由再以 RequireAuth / RequireAdmin 決定存取等級
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, store *storage.Store, dispatcher *notify.Dispatcher, pusher notify.Pusher, hub *ws.Hub) {
	e.Use(middleware.Auth)

	// 健康檢查
	e.GET("/ping", handler.PingHandler(db))

	// 註冊、登入、刷新令牌
	apiAuth := e.Group("/auth")
	apiAuth.POST("/signup", auth.SignupHandler(db))
	apiAuth.POST("/login", auth.LoginHandler(db))
	apiAuth.POST("/refresh", auth.RefreshHandler(db))

	// 書籍：讀取公開，閱讀狀態需登入，上傳/刪除限管理員
	apiBooks := e.Group("/books")
	apiBooks.GET("", books.ListBooksHandler(db, rdb))
	apiBooks.GET("/read", books.ReadBooksHandler(db), middleware.RequireAuth)
	apiBooks.GET("/unread", books.UnreadBooksHandler(db), middleware.RequireAuth)
	apiBooks.GET("/:id", books.GetBookHandler(db))
	apiBooks.PUT("/:id/mark-read", books.MarkReadHandler(db), middleware.RequireAuth)
	apiBooks.PUT("/:id/mark-unread", books.MarkUnreadHandler(db), middleware.RequireAuth)
	apiBooks.POST("/upload", books.UploadBookHandler(db, store, dispatcher, rdb), middleware.RequireAdmin)
	apiBooks.DELETE("/:id", books.DeleteBookHandler(db, store, rdb), middleware.RequireAdmin)

	// 檔案服務與獨立上傳
	e.GET("/files/:filename", files.ServeFileHandler(store))
	e.POST("/upload/pdf", files.UploadPdfHandler(store), middleware.RequireAdmin)

	// 受保護測試端點與管理端點
	e.GET("/api/hello", handler.HelloHandler(), middleware.RequireAuth)
	e.GET("/admin/dashboard", handler.DashboardHandler(), middleware.RequireAdmin)
	e.POST("/notifications/send", handler.SendNotificationHandler(pusher), middleware.RequireAdmin)

	// WebSocket 即時通知
	e.GET("/ws", hub.Handler())
}
