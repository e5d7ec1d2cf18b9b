package cache

import (
	"context"
	"time"
)

const (
	// GuideListKey holds the cached career guide collection. Guides are
	// global reference data, so a single key covers every user.
	GuideListKey = "guides:all"
)

const (
	GuideTTL = 30 * time.Minute
)

// InvalidateGuides drops the cached guide collection after reference data changes.
func InvalidateGuides(ctx context.Context) {
	Invalidate(ctx, GuideListKey)
}
