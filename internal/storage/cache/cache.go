package cache

import (
	"sync"
	"time"

	"github.com/errorkid/examquizbot.git/internal/models"
)

// Cache holds the per-user menu sessions. All mutation goes through Update
// so session fields are never touched outside the lock.
type Cache struct {
	mu       sync.Mutex
	sessions map[int64]*models.Session
	lastSeen map[int64]time.Time
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]*models.Session),
		lastSeen: make(map[int64]time.Time),
	}
}

// Touch marks the user as recently active.
func (c *Cache) Touch(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastSeen[userID] = time.Now()
}

// LiveCount reports how many users were active within the window.
func (c *Cache) LiveCount(window time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	cutoff := time.Now().Add(-window)
	count := 0
	for _, seen := range c.lastSeen {
		if seen.After(cutoff) {
			count++
		}
	}
	return count
}

// Update runs fn against the user's session, creating it on first use.
func (c *Cache) Update(userID int64, fn func(*models.Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.sessions[userID]
	if !exists {
		s = models.NewSession(userID)
		c.sessions[userID] = s
	}
	fn(s)
}

// Session returns a snapshot of the user's session.
func (c *Cache) Session(userID int64) models.Session {
	var snapshot models.Session
	c.Update(userID, func(s *models.Session) {
		snapshot = *s
		snapshot.Selected = make(map[string]bool, len(s.Selected))
		for k, v := range s.Selected {
			snapshot.Selected[k] = v
		}
		snapshot.FinalChapters = append([]string(nil), s.FinalChapters...)
		snapshot.VerifiedGates = make(map[string]bool, len(s.VerifiedGates))
		for k, v := range s.VerifiedGates {
			snapshot.VerifiedGates[k] = v
		}
	})
	return snapshot
}

func (c *Cache) Delete(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}
