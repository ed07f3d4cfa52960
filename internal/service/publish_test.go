package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolvePublishState(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-24 * time.Hour)

	t.Run("new article without status defaults to draft", func(t *testing.T) {
		status, publishedAt := resolvePublishState("", nil, nil, now)
		assert.Equal(t, "draft", status)
		assert.Nil(t, publishedAt)
	})

	t.Run("new article published is stamped now", func(t *testing.T) {
		status, publishedAt := resolvePublishState("", strPtr("published"), nil, now)
		assert.Equal(t, "published", status)
		require.NotNil(t, publishedAt)
		assert.Equal(t, now, *publishedAt)
	})

	t.Run("draft to published is stamped now", func(t *testing.T) {
		status, publishedAt := resolvePublishState("draft", strPtr("published"), nil, now)
		assert.Equal(t, "published", status)
		require.NotNil(t, publishedAt)
		assert.Equal(t, now, *publishedAt)
	})

	t.Run("published to draft clears the timestamp", func(t *testing.T) {
		status, publishedAt := resolvePublishState("published", strPtr("draft"), &earlier, now)
		assert.Equal(t, "draft", status)
		assert.Nil(t, publishedAt)
	})

	t.Run("staying published keeps the original timestamp", func(t *testing.T) {
		status, publishedAt := resolvePublishState("published", nil, &earlier, now)
		assert.Equal(t, "published", status)
		require.NotNil(t, publishedAt)
		assert.Equal(t, earlier, *publishedAt)
	})

	t.Run("republishing stamps a fresh timestamp", func(t *testing.T) {
		// unpublish, then publish again later
		_, cleared := resolvePublishState("published", strPtr("draft"), &earlier, earlier)
		require.Nil(t, cleared)

		status, publishedAt := resolvePublishState("draft", strPtr("published"), cleared, now)
		assert.Equal(t, "published", status)
		require.NotNil(t, publishedAt)
		assert.Equal(t, now, *publishedAt)
		assert.NotEqual(t, earlier, *publishedAt)
	})

	t.Run("comparison is case-insensitive but storage verbatim", func(t *testing.T) {
		status, publishedAt := resolvePublishState("", strPtr("Published"), nil, now)
		assert.Equal(t, "Published", status)
		require.NotNil(t, publishedAt)
	})

	t.Run("unknown status is treated as not published", func(t *testing.T) {
		status, publishedAt := resolvePublishState("published", strPtr("archived"), &earlier, now)
		assert.Equal(t, "archived", status)
		assert.Nil(t, publishedAt)
	})

	t.Run("no override keeps current status", func(t *testing.T) {
		status, publishedAt := resolvePublishState("draft", nil, nil, now)
		assert.Equal(t, "draft", status)
		assert.Nil(t, publishedAt)
	})
}
