package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomObjectName_PreservesExtension(t *testing.T) {
	cases := []struct {
		original string
		wantExt  string
	}{
		{"photo.jpg", ".jpg"},
		{"scan.PNG", ".PNG"},
		{"archive.tar.gz", ".gz"},
		{"noextension", ""},
		{"weird.name.webp", ".webp"},
	}

	for _, tc := range cases {
		name, err := RandomObjectName(tc.original)
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(name, tc.wantExt),
			"object name %q should end with %q", name, tc.wantExt)

		// 12 random bytes hex encoded
		base := strings.TrimSuffix(name, tc.wantExt)
		assert.Len(t, base, 24)
	}
}

func TestRandomObjectName_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name, err := RandomObjectName("image.jpg")
		require.NoError(t, err)
		assert.False(t, seen[name], "duplicate object name %q", name)
		seen[name] = true
	}
}

func TestGenerateRandomToken(t *testing.T) {
	a, err := GenerateRandomToken()
	require.NoError(t, err)
	b, err := GenerateRandomToken()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a)
}
