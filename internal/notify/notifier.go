// Package notify delivers user-facing success and error messages.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Level is the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification represents a notification message.
type Notification struct {
	Level   Level
	Subject string
	Body    string
}

// Notifier is the interface for sending notifications.
type Notifier interface {
	// Send sends a notification.
	Send(ctx context.Context, notification Notification) error
}

// LogNotifier writes notifications to a slog logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs to logger, or slog.Default when nil.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Send logs the notification at a level matching its severity.
func (n *LogNotifier) Send(ctx context.Context, notification Notification) error {
	level := slog.LevelInfo
	if notification.Level == LevelError {
		level = slog.LevelError
	}
	n.logger.Log(ctx, level, notification.Subject,
		"notification", string(notification.Level),
		"body", notification.Body,
	)
	return nil
}

// Recorder keeps every notification it receives. It is safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

// Send records the notification.
func (r *Recorder) Send(_ context.Context, notification Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, notification)
	return nil
}

// Sent returns a copy of the recorded notifications.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}
