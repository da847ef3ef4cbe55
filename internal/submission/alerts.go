package submission

import (
	"sync"
	"time"

	"streetart-capture/internal/logger"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

const (
	MessageSuccess = "Art piece successfully uploaded!"
	MessageFailure = "Error uploading image. Please try again."
)

type Alert struct {
	Level   Level
	Message string
	At      time.Time
}

// Notifier shows user-facing alerts.
type Notifier interface {
	Notify(a Alert)
}

// AlertBox keeps the most recent alerts for clients polling the API.
type AlertBox struct {
	mu     sync.Mutex
	limit  int
	alerts []Alert
}

func NewAlertBox(limit int) *AlertBox {
	if limit <= 0 {
		limit = 20
	}
	return &AlertBox{limit: limit}
}

func (b *AlertBox) Notify(a Alert) {
	log := logger.Component("alerts")
	if a.Level == LevelError {
		log.Warn().Msg(a.Message)
	} else {
		log.Info().Msg(a.Message)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.alerts = append(b.alerts, a)
	if len(b.alerts) > b.limit {
		b.alerts = b.alerts[len(b.alerts)-b.limit:]
	}
}

// Recent returns alerts newest first.
func (b *AlertBox) Recent() []Alert {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Alert, len(b.alerts))
	for i, a := range b.alerts {
		out[len(b.alerts)-1-i] = a
	}
	return out
}
