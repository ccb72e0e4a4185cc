package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeService(t *testing.T) {
	svc := NewNoticeService()
	assert.Empty(t, svc.Notices())

	svc.Add("warning", "Checkout personalization requires the commerce engine; the extension is disabled.")
	svc.Add("info", "Extension updated.")

	notices := svc.Notices()
	require.Len(t, notices, 2)
	assert.Equal(t, "warning", notices[0].Level)
	assert.NotEmpty(t, notices[0].ID)
	assert.False(t, notices[0].CreatedAt.IsZero())

	// Snapshot, not the live slice.
	notices[0].Message = "mutated"
	assert.NotEqual(t, "mutated", svc.Notices()[0].Message)
}
