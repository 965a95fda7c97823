package environ

import "os"

// Override returns the value of [envVar] if it is set and non-empty, otherwise [value].
func Override(value, envVar string) string {
	if envValue, ok := os.LookupEnv(envVar); ok && envValue != "" {
		return envValue
	}

	return value
}
