package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pmurley/rugby-stats/internal/models"
)

// Cache keeps parsed team sheet batches so unchanged files are not re-read
type Cache struct {
	cache    *gocache.Cache
	duration time.Duration
}

func New(duration time.Duration) *Cache {
	return &Cache{
		cache:    gocache.New(duration, duration*2),
		duration: duration,
	}
}

// FileKey identifies one version of a file on disk
func FileKey(path string, modTime time.Time, size int64) string {
	return fmt.Sprintf("matches:%s:%d:%d", path, modTime.UnixNano(), size)
}

func (c *Cache) SetMatches(key string, matches []models.Match) {
	c.cache.Set(key, matches, c.duration)
}

func (c *Cache) GetMatches(key string) ([]models.Match, bool) {
	if matches, found := c.cache.Get(key); found {
		return matches.([]models.Match), true
	}
	return nil, false
}

func (c *Cache) Flush() {
	c.cache.Flush()
}
