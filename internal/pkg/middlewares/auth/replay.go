package auth

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultReplayCacheSize = 1 << 20

// ReplayCache помнит подписи, принятые внутри окна метки времени.
// Запись живет 2*maxSkew: дольше такую подпись отвергает проверка времени.
type ReplayCache struct {
	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

func NewReplayCache(maxSkew time.Duration) *ReplayCache {
	return &ReplayCache{
		seen: expirable.NewLRU[string, struct{}](defaultReplayCacheSize, nil, 2*maxSkew),
	}
}

// Seen запоминает ключ и сообщает, встречался ли он раньше.
func (c *ReplayCache) Seen(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seen.Contains(key) {
		return true
	}
	c.seen.Add(key, struct{}{})
	return false
}

// replayKey подпись ed25519 детерминирована и покрывает метод, URI,
// метку времени и тело, поэтому пара (ключ, подпись) задает запрос.
func replayKey(publicKey, signature string) string {
	return publicKey + ":" + signature
}
