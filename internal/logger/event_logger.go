package logger

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTransactionReceived EventType = "transaction_received"
	EventAnalysisStarted     EventType = "analysis_started"
	EventAnalysisCompleted   EventType = "analysis_completed"
	EventAnalysisFallback    EventType = "analysis_fallback"
	EventTransactionSaved    EventType = "transaction_saved"
	EventStorageFailed       EventType = "storage_failed"
	EventRedisSaved          EventType = "redis_saved"
	EventKafkaSent           EventType = "kafka_sent"
	EventKafkaReceived       EventType = "kafka_received"
	EventStatsUpdated        EventType = "stats_updated"
)

// Event запись журнала событий конвейера анализа
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Service   string                 `json:"service"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
	Component string                 `json:"component"` // gemini, fallback, sqlite, mongodb, redis, kafka
}

// EventLogger кольцевой буфер последних событий
type EventLogger struct {
	events  []Event
	mu      sync.RWMutex
	maxSize int
}

var globalLogger = NewEventLogger(1000)

func NewEventLogger(maxSize int) *EventLogger {
	return &EventLogger{
		events:  make([]Event, 0, maxSize),
		maxSize: maxSize,
	}
}

// LogEvent записывает событие в глобальный журнал и дублирует его в zap на уровне debug
func LogEvent(eventType EventType, service string, component string, data map[string]interface{}) {
	globalLogger.LogEvent(eventType, service, component, data)
	Log.Debugw("event", "type", eventType, "service", service, "component", component, "data", data)
}

func (el *EventLogger) LogEvent(eventType EventType, service string, component string, data map[string]interface{}) {
	el.mu.Lock()
	defer el.mu.Unlock()

	el.events = append(el.events, Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Service:   service,
		Component: component,
		Timestamp: time.Now(),
		Data:      data,
	})

	if len(el.events) > el.maxSize {
		el.events = el.events[len(el.events)-el.maxSize:]
	}
}

func GetEvents(limit int) []Event {
	return globalLogger.GetEvents(limit)
}

// GetEvents возвращает последние limit событий в порядке записи
func (el *EventLogger) GetEvents(limit int) []Event {
	el.mu.RLock()
	defer el.mu.RUnlock()

	if limit <= 0 || limit > len(el.events) {
		limit = len(el.events)
	}

	result := make([]Event, limit)
	copy(result, el.events[len(el.events)-limit:])
	return result
}

func GetStats() map[string]interface{} {
	return globalLogger.GetStats()
}

// GetStats агрегирует события по компонентам, сервисам и типам
func (el *EventLogger) GetStats() map[string]interface{} {
	el.mu.RLock()
	defer el.mu.RUnlock()

	componentStats := make(map[string]int)
	serviceStats := make(map[string]int)
	typeStats := make(map[string]int)

	for _, event := range el.events {
		componentStats[event.Component]++
		serviceStats[event.Service]++
		typeStats[string(event.Type)]++
	}

	return map[string]interface{}{
		"total_events": len(el.events),
		"components":   componentStats,
		"services":     serviceStats,
		"event_types":  typeStats,
	}
}

func (e Event) MarshalJSON() ([]byte, error) {
	type Alias Event
	return json.Marshal(&struct {
		Timestamp string `json:"timestamp"`
		*Alias
	}{
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Alias:     (*Alias)(&e),
	})
}
