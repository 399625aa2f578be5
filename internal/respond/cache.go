package respond

import (
	"container/list"
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	defaultCacheTTL = 5 * time.Minute
	defaultCacheCap = 100
)

type cacheEntry struct {
	key     string
	reply   string
	expires time.Time
}

// ResponseCache is a small FIFO cache for generated replies. Entries expire
// after a TTL and the oldest insertion is evicted when the cache is full.
// Updating an existing key keeps its position in the eviction order.
type ResponseCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	cap   int
	order *list.List
	index map[string]*list.Element
	now   func() time.Time
}

// NewResponseCache builds a cache with the given TTL and capacity; zero
// values select the defaults (5 minutes, 100 entries).
func NewResponseCache(ttl time.Duration, capacity int) *ResponseCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if capacity <= 0 {
		capacity = defaultCacheCap
	}
	return &ResponseCache{
		ttl:   ttl,
		cap:   capacity,
		order: list.New(),
		index: make(map[string]*list.Element),
		now:   time.Now,
	}
}

// Key derives the cache key from the language, the normalized message and
// the history length, so the same question inside a longer conversation is
// cached separately.
func Key(lang Language, message string, historyLen int) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	return fmt.Sprintf("%s_%s_%d", lang, normalized, historyLen)
}

// Get returns the cached reply for key, expiring it lazily when stale.
func (c *ResponseCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.index[key]
	if !ok {
		return "", false
	}
	entry := el.Value.(*cacheEntry)
	if c.now().After(entry.expires) {
		c.order.Remove(el)
		delete(c.index, key)
		return "", false
	}
	return entry.reply, true
}

// Set stores a reply under key. An existing key is updated in place; a new
// key evicts the oldest entry when the cache is at capacity.
func (c *ResponseCache) Set(key, reply string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	expires := c.now().Add(c.ttl)
	if el, ok := c.index[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.reply = reply
		entry.expires = expires
		return
	}
	if c.order.Len() >= c.cap {
		oldest := c.order.Front()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.index, oldest.Value.(*cacheEntry).key)
		}
	}
	el := c.order.PushBack(&cacheEntry{key: key, reply: reply, expires: expires})
	c.index[key] = el
}

// Len reports the number of entries currently held, expired or not.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
