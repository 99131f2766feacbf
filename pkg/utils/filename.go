package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// RandomFileName prefixes the original name with a UUID so uploads never
// collide, keeping the extension intact.
func RandomFileName(original string) string {
	base := filepath.Base(original)
	base = strings.ReplaceAll(base, " ", "_")
	return uuid.NewString() + "_" + base
}
