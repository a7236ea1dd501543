package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public paths (login issues the session token, health is for probes)
	return []string{"/login", "/health"}
}
