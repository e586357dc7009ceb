package redis

import "fmt"

// valueKey returns the Redis key for an application key
func valueKey(prefix, key string) string {
	return fmt.Sprintf("%s:kv:%s", prefix, key)
}
