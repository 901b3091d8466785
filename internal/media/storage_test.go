// AngelaMos | 2026
// storage_test.go

package media

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/streamora/internal/config"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := NewStorage(context.Background(), config.StorageConfig{
		Region:          "us-east-1",
		Bucket:          "streamora-media",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		PublicBaseURL:   "https://media.example.com/streamora-media/",
	})
	require.NoError(t, err)
	return s
}

func TestKeyForURL(t *testing.T) {
	s := testStorage(t)

	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{
			"object under public base",
			"https://media.example.com/streamora-media/videos/2026/08/a.mp4",
			"videos/2026/08/a.mp4",
			true,
		},
		{
			"externally hosted",
			"https://cdn.elsewhere.com/clip.mp4",
			"",
			false,
		},
		{"base url alone", "https://media.example.com/streamora-media/", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := s.KeyForURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestObjectKey(t *testing.T) {
	key := objectKey("videos", ".mp4")

	assert.True(t, strings.HasPrefix(key, "videos/"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))
	assert.NotContains(t, key, "..")
}
