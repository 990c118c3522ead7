package cache

import (
	"sync"

	"github.com/DanRulev/moviebot.git/internal/models"
)

type Cache struct {
	mu       sync.Mutex
	sessions map[int64]models.Session
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]models.Session),
	}
}

func (c *Cache) SetSession(session models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[session.ChatID] = session
}

func (c *Cache) GetSession(chatID int64) (models.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[chatID]
	return session, exists
}

func (c *Cache) DeleteSession(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, chatID)
}

// Sessions returns a snapshot of every stored session.
func (c *Cache) Sessions() []models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Session, 0, len(c.sessions))
	for _, s := range c.sessions {
		out = append(out, s)
	}
	return out
}
