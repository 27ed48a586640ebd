// File: internal/notify/fcm.go
package notify

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMPusher 透過 Firebase Cloud Messaging 對主題推播
type FCMPusher struct {
	client *messaging.Client
}

// NewFCMPusher 以憑證檔初始化 Firebase app 與 messaging client
func NewFCMPusher(ctx context.Context, credentialsPath string) (*FCMPusher, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("notify: init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("notify: init messaging client: %w", err)
	}
	return &FCMPusher{client: client}, nil
}

func (p *FCMPusher) SendToTopic(ctx context.Context, topic, title, body string) error {
	_, err := p.client.Send(ctx, &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	})
	return err
}

// NopPusher 未設定 FCM 憑證時的替身，只記錄不送出
type NopPusher struct{}

func (NopPusher) SendToTopic(ctx context.Context, topic, title, body string) error {
	log.Printf("notify: push disabled, dropping %q on topic %s", title, topic)
	return nil
}
