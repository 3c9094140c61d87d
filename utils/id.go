package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a prefixed record id, e.g. ISS1B2F4C9A. The prefix
// encodes the entity (ISS, ANN, LF, CMT) or the user role (STU, ADM).
func NewID(prefix string) string {
	u := uuid.New()
	return strings.ToUpper(prefix + strings.ReplaceAll(u.String(), "-", "")[:8])
}
