package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// AssetID derives the stable asset identifier for a raw URL string. The same
// URL always hashes to the same ID across calls and processes, which keeps
// repeated builds byte-identical.
func AssetID(originalURL string) string {
	// The raw URL is the identity; no normalization beyond trimming, since two
	// byte-identical strings must land on one asset while lookalike URLs must
	// not. hashid normalizes (case-folds) by default, so it is switched off
	// here to keep case-distinct URLs distinct.
	trimmed := strings.TrimSpace(originalURL)
	if trimmed == "" {
		return ""
	}
	uid, err := hashid.NewUUID("builder:asset:"+trimmed,
		hashid.WithHashAlgorithm(hashid.SHA256),
		hashid.WithNormalization(false),
	)
	if err != nil || uid == uuid.Nil {
		uid = uuid.NewSHA1(uuid.NameSpaceURL, []byte(trimmed))
	}
	return "asset-" + strings.ReplaceAll(uid.String(), "-", "")[:16]
}

// PageUUID derives a deterministic page identifier from a slug, used by
// fixture loaders that define pages in files rather than a database.
func PageUUID(slug string) uuid.UUID {
	return UUID("builder:page:" + strings.ToLower(strings.TrimSpace(slug)))
}
