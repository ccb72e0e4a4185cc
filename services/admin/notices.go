package admin

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notice is a one-line warning shown on the admin surface.
type Notice struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NoticeService records and serves admin notices.
type NoticeService interface {
	Add(level, message string)
	Notices() []Notice
}

// DefaultNoticeService keeps notices in memory for the process lifetime.
type DefaultNoticeService struct {
	mu      sync.RWMutex
	notices []Notice
}

// NewNoticeService creates an empty notice registry.
func NewNoticeService() *DefaultNoticeService {
	return &DefaultNoticeService{}
}

// Add records a notice.
func (s *DefaultNoticeService) Add(level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, Notice{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// Notices returns a snapshot of all recorded notices.
func (s *DefaultNoticeService) Notices() []Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notice, len(s.notices))
	copy(out, s.notices)
	return out
}
