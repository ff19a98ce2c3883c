//
// counters.go
// Distributed under terms of the MIT license.
//

package ember

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/emberweb/ember/logv"
	"github.com/emberweb/ember/utils"
)

// HitCounter increments a per-route counter in redis on every request that
// reaches it. It is registered as an ordinary Before handler via
// Count, so it competes for chain position like any other handler
// instead of being wired into dispatch itself.
type HitCounter struct {
	client *redis.Client
}

func NewHitCounter(addr string) *HitCounter {
	return &HitCounter{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// Count wraps the handler registration for path as a Handle: it increments
// the route's counter, logs but does not abort dispatch on a redis error,
// and always returns Next.
func (hc *HitCounter) Count(method Method, path string) Handle {
	key := counterKey(method, path)
	return Before(func(ctx *Context) (Flow, error) {
		if err := hc.client.Incr(context.Background(), key).Err(); err != nil {
			logv.WithNoCaller.Warn().Err(err).Str("key", key).Msg("hit counter increment failed")
		}
		return Next, nil
	})
}

// Hits returns the current count for a registered route, or 0 if it has
// never been hit.
func (hc *HitCounter) Hits(method Method, path string) (int64, error) {
	n, err := hc.client.Get(context.Background(), counterKey(method, path)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

func (hc *HitCounter) Close() error {
	return hc.client.Close()
}

func counterKey(method Method, path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		segments[i] = utils.CamelToSnake(strings.TrimPrefix(s, ":"))
	}
	return fmt.Sprintf("ember:hits:%s:%s", strings.ToLower(string(method)), strings.Join(segments, ":"))
}
