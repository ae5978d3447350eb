package cache

import "fmt"

const keyPrefix = "aura"

// PropertyKey returns the cache key for a single property record.
func PropertyKey(id uint) string {
	return fmt.Sprintf("%s:property:%d", keyPrefix, id)
}
