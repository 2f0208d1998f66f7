package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "fastlane"

// saveKey returns the Redis key for a slot's snapshot
func saveKey(slot string) string {
	return fmt.Sprintf("%s:save:%s", keyPrefix, slot)
}

// savedAtKey returns the Redis key recording when a slot was last written
func savedAtKey(slot string) string {
	return fmt.Sprintf("%s:save:%s:saved_at", keyPrefix, slot)
}
