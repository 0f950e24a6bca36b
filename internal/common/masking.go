package common

import (
	"net/url"
	"regexp"
	"strings"
)

const maskedValue = "***MASKED***"

// keyValuePattern catches password-like key/value pairs embedded in plain
// strings (keyword DSNs, config dumps).
var keyValuePattern = regexp.MustCompile(`(?i)(password|passwd|pwd|secret)(["'\s]*[:=]["'\s]*)([^"',}\]\s]+)`)

// Masker hides credentials before they reach log output. The only secrets
// this tool ever touches are database connection strings.
type Masker struct {
	enabled bool
}

// NewMasker creates a masker with masking enabled.
func NewMasker() *Masker {
	return &Masker{enabled: true}
}

// SetEnabled toggles masking.
func (m *Masker) SetEnabled(enabled bool) { m.enabled = enabled }

// IsEnabled reports whether masking is active.
func (m *Masker) IsEnabled() bool { return m.enabled }

// MaskDSN hides the password part of a connection string. URL-style DSNs
// keep their structure; keyword-style DSNs have password values replaced.
func (m *Masker) MaskDSN(dsn string) string {
	if !m.enabled || dsn == "" {
		return dsn
	}
	if strings.Contains(dsn, "://") {
		if u, err := url.Parse(dsn); err == nil {
			if _, has := u.User.Password(); has {
				// "*" is a sub-delim, so userinfo encoding leaves the
				// placeholder readable as-is.
				u.User = url.UserPassword(u.User.Username(), maskedValue)
				return u.String()
			}
			return dsn
		}
	}
	return keyValuePattern.ReplaceAllString(dsn, "${1}${2}"+maskedValue)
}

// MaskString hides password-like key/value pairs in arbitrary text.
func (m *Masker) MaskString(input string) string {
	if !m.enabled {
		return input
	}
	return keyValuePattern.ReplaceAllString(input, "${1}${2}"+maskedValue)
}
