package tool

import (
	"fmt"
	"net/url"
	"strings"
)

// Normalization and range checks applied before any network call. Out of
// range values fail validation rather than being clamped.

func CheckRange(name string, val, min, max int) error {
	if val < min || val > max {
		return fmt.Errorf("%s must be between %d and %d", name, min, max)
	}

	return nil
}

func CheckLength(name, val string, max int) error {
	if strings.TrimSpace(val) == "" {
		return fmt.Errorf("%s must not be empty", name)
	}

	if len(val) > max {
		return fmt.Errorf("%s must be at most %d characters", name, max)
	}

	return nil
}

// NormalizeDomains trims entries, drops empties and lowercases the rest.
func NormalizeDomains(domains []string) []string {
	var result []string

	for _, d := range domains {
		d = strings.TrimSpace(d)

		if d == "" {
			continue
		}

		result = append(result, strings.ToLower(d))
	}

	return result
}

// NormalizePhrases trims entries and drops empties.
func NormalizePhrases(phrases []string) []string {
	var result []string

	for _, p := range phrases {
		p = strings.TrimSpace(p)

		if p == "" {
			continue
		}

		result = append(result, p)
	}

	return result
}

// NormalizeURL trims the value, prepends https:// when no scheme is
// present and the value looks like a domain, and verifies the result
// parses as an absolute URL.
func NormalizeURL(val string) (string, error) {
	val = strings.TrimSpace(val)

	if val == "" {
		return "", fmt.Errorf("url must not be empty")
	}

	if !strings.HasPrefix(val, "http://") && !strings.HasPrefix(val, "https://") {
		if !strings.Contains(val, ".") {
			return "", fmt.Errorf("invalid url: %s", val)
		}

		val = "https://" + val
	}

	u, err := url.Parse(val)

	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("invalid url: %s", val)
	}

	return val, nil
}

// NormalizeID handles get-contents entries, which may be URLs or opaque
// document identifiers. Values that look like bare domains get a scheme
// and are validated as URLs; anything else passes through unchanged.
func NormalizeID(val string) (string, error) {
	val = strings.TrimSpace(val)

	if val == "" {
		return "", nil
	}

	if !strings.HasPrefix(val, "http://") && !strings.HasPrefix(val, "https://") {
		if !strings.Contains(val, ".") {
			return val, nil
		}

		val = "https://" + val
	}

	u, err := url.Parse(val)

	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("invalid url: %s", val)
	}

	return val, nil
}
