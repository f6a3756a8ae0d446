package jina

import "os"

// APIKeyEnv is the environment variable holding the Jina bearer credential.
const APIKeyEnv = "JINA_API_KEY"

// ResolveAPIKey reads the Jina API key from the environment. An empty
// string means no credential is configured; requests then go out
// unauthenticated. The key is re-read on every call so a rotated key
// takes effect without a restart.
func ResolveAPIKey() string {
	return os.Getenv(APIKeyEnv)
}

// buildHeaders returns a copy of base with an Authorization header
// appended when an API key is configured. The caller's map is never
// mutated.
func buildHeaders(base map[string]string) map[string]string {
	headers := make(map[string]string, len(base)+1)
	for name, value := range base {
		headers[name] = value
	}

	if key := ResolveAPIKey(); key != "" {
		headers["Authorization"] = "Bearer " + key
	}

	return headers
}
