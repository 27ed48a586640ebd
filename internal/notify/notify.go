// File: internal/notify/notify.go
package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ebook-library/internal/cache"
	"ebook-library/internal/dto"
	"ebook-library/internal/model"
	"ebook-library/internal/worker"
)

const (
	// PushTopic FCM 推播主題
	PushTopic = "new_books"
	// BroadcastChannel 即時廣播用的 Redis 頻道，WebSocket hub 訂閱此頻道
	BroadcastChannel = "new-books"
)

const dispatchTimeout = 10 * time.Second

// Pusher 推播閘道介面，對某主題送出標題與內文
type Pusher interface {
	SendToTopic(ctx context.Context, topic, title, body string) error
}

// FakePusher 測試用推播閘道
type FakePusher struct {
	SendToTopicFn func(ctx context.Context, topic, title, body string) error
}

func (f *FakePusher) SendToTopic(ctx context.Context, topic, title, body string) error {
	if f.SendToTopicFn != nil {
		return f.SendToTopicFn(ctx, topic, title, body)
	}
	panic("unexpected SendToTopic")
}

// Dispatcher 將新書事件扇出到推播與即時廣播兩條獨立通道
// 任務丟進 worker pool 後立即返回；兩條通道各自失敗只記錄日誌，
// 互不阻塞也不回滾觸發它的書籍建立
type Dispatcher struct {
	pusher Pusher
	cache  cache.Cache
	pool   worker.Pool
}

func NewDispatcher(p Pusher, c cache.Cache, pool worker.Pool) *Dispatcher {
	return &Dispatcher{pusher: p, cache: c, pool: pool}
}

// NewBook 發布新書通知（fire-and-forget）
func (d *Dispatcher) NewBook(book model.Book) {
	d.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := d.pusher.SendToTopic(ctx, PushTopic,
			"New Book: "+book.Title,
			"By "+book.Author+" - now in the library!",
		); err != nil {
			log.Printf("notify: push notification failed: %v", err)
		}

		payload, err := json.Marshal(dto.BookNotification{
			Title:   book.Title,
			Author:  book.Author,
			Message: "A new book has been added!",
		})
		if err != nil {
			log.Printf("notify: marshal broadcast payload failed: %v", err)
			return
		}
		if err := d.cache.Publish(ctx, BroadcastChannel, payload).Err(); err != nil {
			log.Printf("notify: broadcast publish failed: %v", err)
		}
	})
}
