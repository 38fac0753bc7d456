package config

import "log"

// Boot-time guards for the settings the platform cannot run without: the
// database DSN and the token signing secret. Failing at startup beats letting
// the first login discover the gap.

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("config: required env %s is not set, refusing to start", envName)
	}
}

func MustNonEmptyBytes(value []byte, envName string) {
	if len(value) == 0 {
		log.Fatalf("config: required env %s is not set, refusing to start", envName)
	}
}
