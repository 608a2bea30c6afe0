package config

// RenderVideoOptions defines options for assembling a carousel reel.
type RenderVideoOptions struct {
	ProjectPath string
	OutputPath  string
	Width       int
	Height      int
	FPS         int
	FontPath    string
	Verbose     bool
}

// ExportOptions defines options for per-platform image export.
type ExportOptions struct {
	ProjectPath string
	OutputDir   string
	Platforms   []string
	Concurrency int
	FontPath    string
	Verbose     bool
}

const (
	// Reel output defaults (portrait 4:5)
	DefaultVideoWidth  = 1080
	DefaultVideoHeight = 1350
	DefaultFPS         = 30

	// Timing defaults
	DefaultSlideDuration      = 3.0 // seconds
	DefaultTransitionDuration = 0.5 // seconds
	GoldilocksSecondsPerSlide = 3.5 // recommended audio length per slide

	// Encoder settings
	VideoCodec   = "libx264"
	AudioCodec   = "aac"
	VideoCRF     = 18
	AudioBitrate = "192k"

	// Overlay layout
	MinEdgePadding      = 20.0 // px floor on every side, regardless of configured padding
	DefaultBoxRadius    = 6.0
	ShadowOffsetX       = 2.0
	ShadowOffsetY       = 2.0
	LightTextBrightness = 128.0 // perceived-brightness threshold for text shadows
	EstimatedCharWidth  = 0.6   // fraction of font size; monospace-ish width estimate

	// Temporary directory prefix
	TempDirPrefix = "carousel_render_"
)
