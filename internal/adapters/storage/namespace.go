package storage

import (
	"fmt"
	"net/url"
	"strings"
)

// Namespace turns an API base URL into the directory/entry name its keys
// are stored under, so two origins never see each other's session.
func Namespace(baseURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("api base url %q must include scheme and host", baseURL)
	}

	host := strings.ToLower(parsed.Hostname())
	port := parsed.Port()
	if port == "" {
		switch strings.ToLower(parsed.Scheme) {
		case "https":
			port = "443"
		case "http":
			port = "80"
		}
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(parsed.Scheme))
	b.WriteByte('_')
	for _, r := range host {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if port != "" {
		b.WriteByte('_')
		b.WriteString(port)
	}

	return b.String(), nil
}
