package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on our package
// rather than on the concrete go-redis client type.
type Client interface {
	redis.UniversalClient
}
