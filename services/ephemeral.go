package services

import (
	"sync"

	"github.com/Nishan123/yumm-ai/models"
)

// EphemeralCache holds just-generated recipes that have not yet been
// navigated to by id, keyed by the owning session. Single writer per key;
// never shared across sessions.
type EphemeralCache struct {
	recipes sync.Map
}

func NewEphemeralCache() *EphemeralCache {
	return &EphemeralCache{}
}

// Store keeps the generated recipe for the session.
func (c *EphemeralCache) Store(sessionKey string, recipe *models.Recipe) {
	c.recipes.Store(sessionKey, recipe)
}

// Load returns the session's generated recipe, if any.
func (c *EphemeralCache) Load(sessionKey string) (*models.Recipe, bool) {
	cached, ok := c.recipes.Load(sessionKey)
	if !ok {
		return nil, false
	}
	return cached.(*models.Recipe), true
}

// Invalidate discards the session's generated recipe.
func (c *EphemeralCache) Invalidate(sessionKey string) {
	c.recipes.Delete(sessionKey)
}
