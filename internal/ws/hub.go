// File: internal/ws/hub.go
package ws

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"ebook-library/internal/cache"
	"ebook-library/internal/notify"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Hub 管理目前連線中的 WebSocket 客戶端並向全體廣播
// 廣播為 fire-and-forget：寫入失敗的連線直接剔除，不重試、不確認送達
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Run 訂閱 Redis 廣播頻道並將每則訊息扇出給所有連線
// ctx 取消時結束訂閱並關閉所有連線
func (h *Hub) Run(ctx context.Context, c cache.Cache) {
	sub := c.Subscribe(ctx, notify.BroadcastChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case msg, ok := <-ch:
			if !ok {
				h.closeAll()
				return
			}
			h.Broadcast([]byte(msg.Payload))
		}
	}
}

// Broadcast 將 payload 寫給所有連線中的客戶端
func (h *Hub) Broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("ws: write failed, dropping client: %v", err)
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}

// Count 回傳目前連線數
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Handler 將 GET /ws 升級為 WebSocket 連線並註冊到 hub
func (h *Hub) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}
		h.add(conn)
		go h.readLoop(conn)
		return nil
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if h.clients[conn] {
		delete(h.clients, conn)
		_ = conn.Close()
	}
	h.mu.Unlock()
}

// readLoop 丟棄客戶端送來的訊息，僅用來偵測連線關閉
func (h *Hub) readLoop(conn *websocket.Conn) {
	defer h.remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
	h.mu.Unlock()
}
