package privacy

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/alexanderramin/trackveil/internal/domain"
)

// DefaultSalt is mixed into anonymized-id derivation when the deployment
// does not configure its own.
const DefaultSalt = "trackveil-v1"

// Anonymizer derives per-kind anonymized ids. The derivation is pure: the
// same original id and salt always produce the same token, so repeated
// upserts of an entity keep its anonymized id stable.
type Anonymizer struct {
	salt string
}

// NewAnonymizer creates an Anonymizer. An empty salt falls back to DefaultSalt.
func NewAnonymizer(salt string) *Anonymizer {
	if salt == "" {
		salt = DefaultSalt
	}
	return &Anonymizer{salt: salt}
}

// ID derives the anonymized id for an entity: the kind's prefix followed by
// the first 8 hex chars of SHA-256(originalID + salt). The prefix namespaces
// tokens per kind, so cross-kind collisions cannot occur.
func (a *Anonymizer) ID(kind domain.EntityKind, originalID string) string {
	if originalID == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(originalID + a.salt))
	return kind.Prefix() + hex.EncodeToString(sum[:])[:8]
}
