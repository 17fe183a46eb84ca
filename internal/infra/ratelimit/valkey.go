package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"
)

const window = time.Minute

// ValkeyLimiter counts requests per key in fixed one-minute windows shared by
// every replica pointing at the same Valkey.
type ValkeyLimiter struct {
	client valkey.Client
	prefix string
	limit  int64
	now    func() time.Time
}

// NewValkeyLimiter allows up to requestsPerMinute requests per key and window.
func NewValkeyLimiter(client valkey.Client, prefix string, requestsPerMinute int) *ValkeyLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &ValkeyLimiter{
		client: client,
		prefix: prefix,
		limit:  int64(requestsPerMinute),
		now:    time.Now,
	}
}

// Allow increments the current window counter for key.
func (l *ValkeyLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := l.windowKey(key, l.now())
	count, err := l.client.Do(ctx, l.client.B().Incr().Key(windowKey).Build()).AsInt64()
	if err != nil {
		return false, fmt.Errorf("increment rate counter: %w", err)
	}
	if count == 1 {
		ttl := int64((2 * window) / time.Second)
		if err := l.client.Do(ctx, l.client.B().Expire().Key(windowKey).Seconds(ttl).Build()).Error(); err != nil {
			return false, fmt.Errorf("expire rate counter: %w", err)
		}
	}
	return count <= l.limit, nil
}

func (l *ValkeyLimiter) windowKey(key string, now time.Time) string {
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, now.Truncate(window).Unix())
}

// ParseOptions accepts either a valkey:// / redis:// URL or a bare host:port.
func ParseOptions(addr string) (valkey.ClientOption, error) {
	if addr == "" {
		return valkey.ClientOption{}, fmt.Errorf("valkey address cannot be empty")
	}
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
