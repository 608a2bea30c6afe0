package carousel

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZacxDev/carousel-engine/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImagesWritesFilesAndManifest(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "a.png"))
	writeTestPNG(t, filepath.Join(dir, "b.png"))
	projectPath := writeProject(t, dir, `
title: Two Slides
slides:
  - id: a
    position: 0
    slide_type: hook
    status: ready
    image_url: a.png
  - id: b
    position: 1
    slide_type: closer
    status: ready
    image_url: b.png
audio:
  path: track.mp3
  duration: 20
  trim_start: 2
  trim_end: 16
  source: library
`)

	outDir := filepath.Join(dir, "out")
	results, err := ExportImages(context.Background(), ExportOptions{
		ProjectPath: projectPath,
		OutputDir:   outDir,
		Platforms:   []string{"instagram", "reddit"},
	})
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Empty(t, export.Failed(results))

	for _, name := range []string{
		"slide_00_instagram.jpg",
		"slide_00_reddit.png",
		"slide_01_instagram.jpg",
		"slide_01_reddit.png",
	} {
		info, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	raw, err := os.ReadFile(filepath.Join(outDir, "manifest.json"))
	require.NoError(t, err)
	var manifest export.Manifest
	require.NoError(t, json.Unmarshal(raw, &manifest))
	assert.Equal(t, 2, manifest.SlideCount)
	assert.Equal(t, []string{"instagram", "reddit"}, manifest.Platforms)
	assert.InDelta(t, 14.0, manifest.AudioDuration, 1e-9)
	assert.True(t, manifest.TrimApplied)
}

func TestComputeTimingFromProject(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "a.png"))
	projectPath := writeProject(t, dir, `
title: Timed
slides:
  - id: a
    position: 0
    slide_type: hook
    status: ready
    image_url: a.png
  - id: b
    position: 1
    slide_type: story
    status: ready
    image_url: a.png
video:
  transition: crossfade
  timing_mode: custom
  slide_duration: 3
  transition_duration: 0.5
`)

	p, err := LoadProject(projectPath)
	require.NoError(t, err)
	timing, err := ComputeTiming(p)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, timing.SlideDuration, 1e-9)
	assert.InDelta(t, 5.5, timing.TotalDuration, 1e-9)
	assert.Equal(t, "0:05.5", FormatDuration(timing.TotalDuration))
}

func TestGetSupportedPlatformsAndPresets(t *testing.T) {
	platforms := GetSupportedPlatforms()
	assert.Len(t, platforms, 6)
	assert.Contains(t, platforms, "instagram")

	presets := GetPresetNames()
	assert.Len(t, presets, 10)
	assert.Contains(t, presets, "none")
	assert.Contains(t, presets, "cinestill")
}

func TestRenderVideoRequiresOutputPath(t *testing.T) {
	dir := t.TempDir()
	projectPath := writeProject(t, dir, `
title: Empty
slides: []
`)
	_, err := RenderVideo(context.Background(), RenderVideoOptions{ProjectPath: projectPath})
	require.Error(t, err)
}
