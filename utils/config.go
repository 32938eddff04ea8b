package utils

import "zora/config"

// IsProduction reports whether the app runs with a production config.
func IsProduction() bool {
	return config.IsProduction()
}
