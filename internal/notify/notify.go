package notify

import (
	"sync"
	"time"

	"midnight-auction/utils"
)

// Level is the severity of a transient notification
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is a transient user-facing message
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier emits transient notifications to the user
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// Center buffers notifications until the view layer drains them.
// When full, the oldest notification is dropped.
type Center struct {
	mu      sync.Mutex
	pending []Notification
	limit   int
	now     func() time.Time
}

const defaultLimit = 50

// NewCenter creates a notification buffer holding at most limit entries
func NewCenter(limit int) *Center {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Center{limit: limit, now: time.Now}
}

func (c *Center) Success(message string) { c.push(LevelSuccess, message) }

func (c *Center) Error(message string) { c.push(LevelError, message) }

func (c *Center) Info(message string) { c.push(LevelInfo, message) }

func (c *Center) push(level Level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	at := c.now()
	n := Notification{
		ID:        utils.GenerateSortableID(at),
		Level:     level,
		Message:   message,
		CreatedAt: at.UTC(),
	}
	if len(c.pending) == c.limit {
		c.pending = c.pending[1:]
	}
	c.pending = append(c.pending, n)

	utils.Debug("notification", map[string]any{"level": level, "message": message})
}

// Pending returns a copy of the buffered notifications without removing them
func (c *Center) Pending() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notification(nil), c.pending...)
}

// Drain returns and clears the buffered notifications, oldest first
func (c *Center) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.pending
	c.pending = nil
	if out == nil {
		return []Notification{}
	}
	return out
}
