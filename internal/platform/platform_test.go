package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSupportedPlatforms(t *testing.T) {
	got := GetSupportedPlatforms()
	assert.Equal(t, []string{"instagram", "lemon8", "linkedin", "reddit", "tiktok", "youtube"}, got)
}

func TestGetUnknownPlatform(t *testing.T) {
	_, err := Get("friendster")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported platform")
}

func TestPlatformSpecs(t *testing.T) {
	cases := []struct {
		name   string
		width  int
		height int
		format string
		aspect string
	}{
		{"instagram", 1080, 1350, "jpeg", "4:5"},
		{"tiktok", 1080, 1920, "jpeg", "9:16"},
		{"linkedin", 1080, 1350, "png", "4:5"},
		{"youtube", 1000, 1000, "jpeg", "1:1"},
		{"reddit", 1200, 1200, "png", "1:1"},
		{"lemon8", 1080, 1440, "jpeg", "3:4"},
	}
	for _, c := range cases {
		p, err := Get(c.name)
		require.NoError(t, err, c.name)
		w, h := p.GetDimensions()
		assert.Equal(t, c.width, w, c.name)
		assert.Equal(t, c.height, h, c.name)
		assert.Equal(t, c.format, p.GetFormat(), c.name)
		assert.Equal(t, c.aspect, p.GetAspectRatio(), c.name)
		q := p.GetQuality()
		assert.GreaterOrEqual(t, q, 1, c.name)
		assert.LessOrEqual(t, q, 100, c.name)
	}
}
