package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gigflare/internal/models"
)

// maxSlugAttempts bounds the suffixed retries after the bare base collides.
const maxSlugAttempts = 8

// SlugProber is the storage probe the allocator resolves collisions against.
type SlugProber interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// Slugify normalizes free text to a URL-safe slug: lowercased, runs of
// non-alphanumerics collapsed to a single dash, dashes trimmed.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// AllocateSlug derives a candidate slug from title and probes the store for
// a free one: the bare base first, then base-1 through base-8. The probe and
// the later insert are not atomic; a losing race still surfaces as
// ErrSlugTaken from the write and is retryable by the caller.
func AllocateSlug(ctx context.Context, prober SlugProber, title string) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = fmt.Sprintf("gig-%d", time.Now().UnixMilli())
	}

	candidate := base
	for attempt := 0; attempt <= maxSlugAttempts; attempt++ {
		if attempt > 0 {
			candidate = fmt.Sprintf("%s-%d", base, attempt)
		}
		exists, err := prober.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", models.ErrSlugExhausted
}
