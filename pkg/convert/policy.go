package convert

import (
	"strings"

	"github.com/sbogaert/bomsweep/internal/platform"
)

// ShouldProcess decides whether a file participates in the conversion sweep.
// Files without an extension are gated by the extensionless whitelist before
// the exclusion set is consulted; extension matching is case-insensitive.
// Pure function, no I/O.
func ShouldProcess(path string, exclusions []string, whitelistExtensionless bool) bool {
	if !platform.HasExtension(path) {
		return whitelistExtensionless
	}

	ext := strings.ToLower(platform.Ext(path))
	for _, entry := range exclusions {
		if strings.EqualFold(entry, ext) {
			return false
		}
	}
	return true
}
