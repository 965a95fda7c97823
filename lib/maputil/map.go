package maputil

// GetKeyFromMap returns obj[key], or defaultValue when the key is absent.
func GetKeyFromMap(obj map[string]any, key string, defaultValue any) any {
	if len(obj) == 0 {
		return defaultValue
	}

	val, ok := obj[key]
	if !ok {
		return defaultValue
	}

	return val
}
