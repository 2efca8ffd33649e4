package redis

// Key prefix for all game-related data
const keyPrefix = "blockhive"

// valueKey namespaces a storage key
func valueKey(key string) string {
	return keyPrefix + ":" + key
}
