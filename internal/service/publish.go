package service

import (
	"strings"
	"time"

	"github.com/adevaproject/webapppro/internal/model"
)

// resolvePublishState decides the stored status and publishedAt for a create
// or update. current is the stored status ("" for a new article), requested
// the caller's override (nil means unchanged), publishedAt the stored value.
//
// Rules:
//   - effective status = requested, else current, else "draft"
//   - entering "published" (case-insensitive) without a timestamp stamps now
//   - leaving "published" clears the timestamp; republishing later stamps a
//     fresh one, the old publish time is not preserved
//   - otherwise the timestamp passes through untouched
//
// The status is stored verbatim; only the comparison is case-insensitive.
func resolvePublishState(current string, requested *string, publishedAt *time.Time, now time.Time) (string, *time.Time) {
	status := current
	if requested != nil {
		status = *requested
	}
	if status == "" {
		status = model.StatusDraft
	}

	if !strings.EqualFold(status, model.StatusPublished) {
		return status, nil
	}
	if publishedAt == nil {
		ts := now
		return status, &ts
	}
	return status, publishedAt
}
