package config

import (
	"os"
	"regexp"
)

// envPattern matches ${NAME}, ${NAME:-fallback} and $NAME.
var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// ExpandEnv replaces environment variable references in s. A reference to
// an unset or empty variable expands to its fallback, or to nothing.
//
//	colors = { "${ACCENT:-#ff8800}", "$BACKGROUND" }
func ExpandEnv(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		m := envPattern.FindStringSubmatch(match)
		if m[3] != "" {
			return os.Getenv(m[3])
		}
		if v := os.Getenv(m[1]); v != "" {
			return v
		}
		return m[2]
	})
}
