package mock

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// NewRedis starts an in-process miniredis and returns a real client bound to
// it. The caller owns both and should close them when the test ends.
func NewRedis() (*miniredis.Miniredis, *redis.Client, error) {
	miniRedis, err := miniredis.Run()
	if err != nil {
		return nil, nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr: miniRedis.Addr(),
	})

	return miniRedis, client, nil
}
