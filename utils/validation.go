package utils

import (
	"net/url"
	"regexp"
)

var imagePathPattern = regexp.MustCompile(`(?i)^(/|\./|\.\./)?[\w\-/.]+\.(jpg|jpeg|png|gif|webp|avif)$`)

// IsValidImageSrc accepts a well-formed absolute URL or a relative path with
// an allowed image extension.
func IsValidImageSrc(src string) bool {
	if u, err := url.Parse(src); err == nil && u.Scheme != "" && u.Host != "" {
		return true
	}
	return imagePathPattern.MatchString(src)
}

func InList(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// AsNumber coerces JSON scalar values to float64 where possible.
func AsNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	}
	return 0, false
}

// AsBool coerces common JSON representations of a flag (bool, number,
// "true"/"false"/"1"/"0") to a bool.
func AsBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case int:
		return b != 0
	case string:
		return b == "true" || b == "1"
	}
	return false
}
