package cache

const keyPrefix = "rcf:result:"

func namespaced(key string) string {
	return keyPrefix + key
}
