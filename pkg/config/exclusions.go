package config

import (
	"strings"
)

// NormalizeExtension lower-cases an extension and forces a leading dot.
// "LOG", "log" and ".Log" all normalize to ".log". Returns "" for input
// that is empty or only a dot.
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return ""
	}
	return "." + strings.ToLower(ext)
}

// AddExclusion inserts an extension into the exclusion set.
// Returns false if the extension was already present (case-insensitive) or
// does not normalize to a valid entry; the set is unchanged in both cases.
func (c *Config) AddExclusion(ext string) bool {
	normalized := NormalizeExtension(ext)
	if normalized == "" {
		return false
	}
	if c.IsExcluded(normalized) {
		return false
	}
	c.Exclude = append(c.Exclude, normalized)
	return true
}

// RemoveExclusion deletes an extension from the exclusion set.
// Returns false if no case-insensitively equal entry existed.
func (c *Config) RemoveExclusion(ext string) bool {
	normalized := NormalizeExtension(ext)
	if normalized == "" {
		return false
	}
	for i, entry := range c.Exclude {
		if strings.EqualFold(entry, normalized) {
			c.Exclude = append(c.Exclude[:i], c.Exclude[i+1:]...)
			return true
		}
	}
	return false
}

// IsExcluded reports whether an extension is in the exclusion set,
// compared case-insensitively
func (c *Config) IsExcluded(ext string) bool {
	normalized := NormalizeExtension(ext)
	for _, entry := range c.Exclude {
		if strings.EqualFold(entry, normalized) {
			return true
		}
	}
	return false
}

// ResetExclusions restores the default exclusion list
func (c *Config) ResetExclusions() {
	c.Exclude = make([]string, len(DefaultExclusions))
	copy(c.Exclude, DefaultExclusions)
}
