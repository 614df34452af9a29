// Package notify holds transient on-screen notifications.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 5 * time.Second

// Notification is a single (title, message) pair with an expiry.
type Notification struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Expires time.Time `json:"expires"`
}

// Center collects notifications and drops them once they expire.
// Expiry is independent of game resets: a notification raised just before a
// reset stays on screen for its full lifetime.
type Center struct {
	ttl   time.Duration
	now   func() time.Time
	items []Notification
}

// NewCenter creates a center whose notifications live for ttl.
// A nil clock means time.Now.
func NewCenter(ttl time.Duration, now func() time.Time) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Center{ttl: ttl, now: now}
}

// Notify adds a notification, newest last.
func (c *Center) Notify(title, message string) {
	c.items = append(c.items, Notification{
		ID:      uuid.NewString(),
		Title:   title,
		Message: message,
		Expires: c.now().Add(c.ttl),
	})
}

// Dismiss removes a notification early. It reports whether it was found.
func (c *Center) Dismiss(id string) bool {
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Prune drops expired notifications and returns how many were removed.
func (c *Center) Prune() int {
	now := c.now()
	kept := c.items[:0]
	for _, n := range c.items {
		if now.Before(n.Expires) {
			kept = append(kept, n)
		}
	}
	removed := len(c.items) - len(kept)
	c.items = kept
	return removed
}

// Visible returns the live notifications, oldest first.
func (c *Center) Visible() []Notification {
	now := c.now()
	visible := make([]Notification, 0, len(c.items))
	for _, n := range c.items {
		if now.Before(n.Expires) {
			visible = append(visible, n)
		}
	}
	return visible
}
