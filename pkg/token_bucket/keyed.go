package token_bucket

import (
	"sync"
	"time"
)

const defaultIdleTTL = 10 * time.Minute

type KeyedLimiter interface {
	Allow(key string) bool
}

type Option func(*KeyedTokenBucket)

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(k *KeyedTokenBucket) {
		k.now = now
	}
}

func WithIdleTTL(ttl time.Duration) Option {
	return func(k *KeyedTokenBucket) {
		k.idleTTL = ttl
	}
}

// KeyedTokenBucket отдельное ведро на каждый ключ (вызывающего).
// Ведра, к которым не обращались дольше idleTTL, выбрасываются.
type KeyedTokenBucket struct {
	capacity   float64
	refillRate float64 // токенов в секунду
	idleTTL    time.Duration
	now        func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastPrune time.Time
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

func NewKeyedTokenBucket(capacity int, refillRate float64, opts ...Option) *KeyedTokenBucket {
	k := &KeyedTokenBucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		idleTTL:    defaultIdleTTL,
		now:        time.Now,
		buckets:    make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(k)
	}
	k.lastPrune = k.now()
	return k
}

func (k *KeyedTokenBucket) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastPrune) > k.idleTTL {
		k.prune(now)
	}

	b, ok := k.buckets[key]
	if !ok {
		b = &bucket{tokens: k.capacity, lastRefill: now}
		k.buckets[key] = b
	}

	if elapsed := now.Sub(b.lastRefill).Seconds(); elapsed > 0 {
		b.tokens = min(k.capacity, b.tokens+elapsed*k.refillRate)
		b.lastRefill = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Len число живых ведер.
func (k *KeyedTokenBucket) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

// prune полное ведро без обращений дольше idleTTL ничем не отличается от нового.
func (k *KeyedTokenBucket) prune(now time.Time) {
	for key, b := range k.buckets {
		if now.Sub(b.lastRefill) > k.idleTTL {
			delete(k.buckets, key)
		}
	}
	k.lastPrune = now
}
