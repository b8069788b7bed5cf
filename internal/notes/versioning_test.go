package notes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviousTag(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		current string
		want    string
		wantOK  bool
	}{
		{
			name:    "highest lower version wins",
			tags:    []string{"v1.0.0", "v1.2.0", "v1.1.5", "v2.0.0"},
			current: "v1.3.0",
			want:    "v1.2.0",
			wantOK:  true,
		},
		{
			name:    "current tag itself is skipped",
			tags:    []string{"v1.3.0", "v1.2.0"},
			current: "v1.3.0",
			want:    "v1.2.0",
			wantOK:  true,
		},
		{
			name:    "prerelease of the same version precedes it",
			tags:    []string{"v2.0.0-rc1", "v1.9.0"},
			current: "v2.0.0",
			want:    "v2.0.0-rc1",
			wantOK:  true,
		},
		{
			name:    "non semver tags are ignored",
			tags:    []string{"latest", "nightly", "v0.9.0"},
			current: "v1.0.0",
			want:    "v0.9.0",
			wantOK:  true,
		},
		{
			name:    "no earlier tag",
			tags:    []string{"v1.0.0", "v2.0.0"},
			current: "v1.0.0",
			wantOK:  false,
		},
		{
			name:    "current tag is not semver",
			tags:    []string{"v1.0.0"},
			current: "nightly",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PreviousTag(tt.tags, tt.current)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectPreviousTag(t *testing.T) {
	api := taggedFakeAPI{&fakeAPI{tags: []string{"v1.0.0", "v1.1.0"}}}

	tag, ok, err := DetectPreviousTag(context.Background(), api, "v1.2.0")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1.1.0", tag)

	failing := taggedFakeAPI{&fakeAPI{tagsErr: errors.New("boom")}}
	_, _, err = DetectPreviousTag(context.Background(), failing, "v1.2.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to detect previous tag")
}
