package types

import "github.com/google/uuid"

// SlideType tags a slide's role inside the carousel narrative.
type SlideType string

const (
	SlideTypeHook   SlideType = "hook"
	SlideTypeStory  SlideType = "story"
	SlideTypeCloser SlideType = "closer"
)

// SlideStatus tracks a slide through generation. Only ready slides take part
// in assembly and export.
type SlideStatus string

const (
	SlideStatusPending    SlideStatus = "pending"
	SlideStatusGenerating SlideStatus = "generating"
	SlideStatusReady      SlideStatus = "ready"
	SlideStatusError      SlideStatus = "error"
)

// Transition is the visual blend applied between consecutive slides in a
// rendered video reel.
type Transition string

const (
	TransitionCrossfade Transition = "crossfade"
	TransitionSlide     Transition = "slide"
	TransitionNone      Transition = "none"
)

// TimingMode selects how per-slide duration is derived.
type TimingMode string

const (
	TimingModeMatchAudio TimingMode = "match-audio"
	TimingModeCustom     TimingMode = "custom"
)

// OverlayState records whether a slide's text styling was bulk-applied or
// hand-edited. User overrides survive "apply to all" operations.
type OverlayState string

const (
	OverlayStatePresetApplied OverlayState = "preset_applied"
	OverlayStateUserOverride  OverlayState = "user_override"
)

// AudioSource identifies where an audio clip came from.
type AudioSource string

const (
	AudioSourceLibrary   AudioSource = "library"
	AudioSourceUpload    AudioSource = "upload"
	AudioSourceRecording AudioSource = "recording"
)

// CustomParams holds the five continuous filter tunables. All values are
// clamped, never rejected: sliders only produce valid values but imported
// templates might not.
type CustomParams struct {
	GrainAmount    int `yaml:"grain_amount" json:"grain_amount"`       // 0..100
	BloomDiffusion int `yaml:"bloom_diffusion" json:"bloom_diffusion"` // 0..100
	ShadowFade     int `yaml:"shadow_fade" json:"shadow_fade"`         // 0..100
	ColorBias      int `yaml:"color_bias" json:"color_bias"`           // -100..100
	VignetteDepth  int `yaml:"vignette_depth" json:"vignette_depth"`   // 0..100
}

// FilterConfig names a predefined filter plus custom parameter overrides.
// It is treated as an immutable snapshot by every pipeline run.
type FilterConfig struct {
	PredefinedFilter string       `yaml:"predefined_filter" json:"predefined_filter"`
	CustomParams     CustomParams `yaml:"custom_params" json:"custom_params"`
}

// TextContent is the stacked text of an overlay, top to bottom.
type TextContent struct {
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary,omitempty" json:"secondary,omitempty"`
	Accent    string `yaml:"accent,omitempty" json:"accent,omitempty"`
}

// FontSizes carries the primary and secondary point sizes. The accent line
// reuses the secondary size.
type FontSizes struct {
	Primary   float64 `yaml:"primary" json:"primary"`
	Secondary float64 `yaml:"secondary" json:"secondary"`
}

// BackgroundPadding expands the background box around each text line.
type BackgroundPadding struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// TextStyling describes how overlay text is drawn.
type TextStyling struct {
	FontFamily        string            `yaml:"font_family" json:"font_family"`
	FontSize          FontSizes         `yaml:"font_size" json:"font_size"`
	FontWeight        string            `yaml:"font_weight" json:"font_weight"`
	TextColor         string            `yaml:"text_color" json:"text_color"`
	BackgroundColor   string            `yaml:"background_color,omitempty" json:"background_color,omitempty"`
	BackgroundPadding BackgroundPadding `yaml:"background_padding" json:"background_padding"`
	TextAlign         string            `yaml:"text_align" json:"text_align"` // left|center|right
	FontStyle         string            `yaml:"font_style,omitempty" json:"font_style,omitempty"`
	TextShadow        bool              `yaml:"text_shadow" json:"text_shadow"`
	StrokeColor       string            `yaml:"stroke_color,omitempty" json:"stroke_color,omitempty"`
	StrokeWidth       float64           `yaml:"stroke_width,omitempty" json:"stroke_width,omitempty"`
}

// FreePosition anchors the bottom of the stacked text block at a
// percentage-based point of the container's own width and height.
type FreePosition struct {
	X float64 `yaml:"x" json:"x"` // 0..100
	Y float64 `yaml:"y" json:"y"` // 0..100
}

// Padding is the legacy edge padding, in pixels.
type Padding struct {
	Top    float64 `yaml:"top" json:"top"`
	Right  float64 `yaml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
	Left   float64 `yaml:"left" json:"left"`
}

// Positioning places the overlay. FreePosition, when present, takes priority
// over the legacy alignment/padding path.
type Positioning struct {
	FreePosition    *FreePosition `yaml:"free_position,omitempty" json:"free_position,omitempty"`
	Alignment       string        `yaml:"alignment,omitempty" json:"alignment,omitempty"`               // top|center|bottom
	HorizontalAlign string        `yaml:"horizontal_align,omitempty" json:"horizontal_align,omitempty"` // left|center|right
	Padding         Padding       `yaml:"padding" json:"padding"`
}

// TextOverlay is one slide's text block: content, styling, placement.
type TextOverlay struct {
	Content     TextContent `yaml:"content" json:"content"`
	Styling     TextStyling `yaml:"styling" json:"styling"`
	Positioning Positioning `yaml:"positioning" json:"positioning"`
}

// CropArea is a per-slide crop override, in percentages of the source image.
type CropArea struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Slide is one image+text unit within a carousel. Position is a dense
// 0-based index matching array order. A slide with no image data is a
// text-only slide and renders a generated background fill.
type Slide struct {
	ID           string       `yaml:"id" json:"id"`
	Position     int          `yaml:"position" json:"position"`
	ImageURL     string       `yaml:"image_url,omitempty" json:"image_url,omitempty"`
	Image        []byte       `yaml:"-" json:"-"`
	TextOverlay  *TextOverlay `yaml:"text_overlay,omitempty" json:"text_overlay,omitempty"`
	OverlayState OverlayState `yaml:"overlay_state,omitempty" json:"overlay_state,omitempty"`
	SlideType    SlideType    `yaml:"slide_type" json:"slide_type"`
	Status       SlideStatus  `yaml:"status" json:"status"`
	CropArea     *CropArea    `yaml:"crop_area,omitempty" json:"crop_area,omitempty"`
}

// NewSlide returns a pending slide with a fresh ID.
func NewSlide(position int, slideType SlideType) Slide {
	return Slide{
		ID:        uuid.NewString(),
		Position:  position,
		SlideType: slideType,
		Status:    SlideStatusPending,
	}
}

// ReadySlides returns the slides eligible for rendering, ordered by Position.
// Retried slides keep their original index, so array order can momentarily
// disagree with Position and must not be trusted.
func ReadySlides(slides []Slide) []Slide {
	ready := make([]Slide, 0, len(slides))
	for _, s := range slides {
		if s.Status == SlideStatusReady {
			ready = append(ready, s)
		}
	}
	for i := 1; i < len(ready); i++ {
		for j := i; j > 0 && ready[j].Position < ready[j-1].Position; j-- {
			ready[j], ready[j-1] = ready[j-1], ready[j]
		}
	}
	return ready
}

// Renumber assigns dense 0-based positions matching array order. Callers must
// renumber after any reorder.
func Renumber(slides []Slide) []Slide {
	out := make([]Slide, len(slides))
	copy(out, slides)
	for i := range out {
		out[i].Position = i
	}
	return out
}

// AudioClip is an optional track attached to the reel, with trim bounds.
type AudioClip struct {
	Path        string      `yaml:"path" json:"path"`
	Duration    float64     `yaml:"duration" json:"duration"`
	TrimStart   *float64    `yaml:"trim_start,omitempty" json:"trim_start,omitempty"`
	TrimEnd     *float64    `yaml:"trim_end,omitempty" json:"trim_end,omitempty"`
	Source      AudioSource `yaml:"source" json:"source"`
	Attribution string      `yaml:"attribution,omitempty" json:"attribution,omitempty"`
}

// EffectiveSpan returns the trimmed [start, end) of the clip, falling back to
// the full clip when unset.
func (c *AudioClip) EffectiveSpan() (float64, float64) {
	start, end := 0.0, c.Duration
	if c.TrimStart != nil {
		start = *c.TrimStart
	}
	if c.TrimEnd != nil {
		end = *c.TrimEnd
	}
	return start, end
}

// TrimApplied reports whether the effective trimmed span differs from the
// full clip.
func (c *AudioClip) TrimApplied() bool {
	start, end := c.EffectiveSpan()
	return start != 0 || end != c.Duration
}

// Validate checks the trim invariant 0 <= trimStart < trimEnd <= duration.
func (c *AudioClip) Validate() error {
	start, end := c.EffectiveSpan()
	if start < 0 || start >= end || end > c.Duration {
		return &TimingConfigError{Reason: "audio trim bounds must satisfy 0 <= start < end <= duration"}
	}
	return nil
}

// VideoSettings controls reel timing and transitions. SlideDuration is only
// an input in custom mode; match-audio derives it.
type VideoSettings struct {
	Transition         Transition `yaml:"transition" json:"transition"`
	TimingMode         TimingMode `yaml:"timing_mode" json:"timing_mode"`
	SlideDuration      float64    `yaml:"slide_duration" json:"slide_duration"`
	TransitionDuration float64    `yaml:"transition_duration" json:"transition_duration"`
}

// VideoTiming is derived per render, never persisted.
type VideoTiming struct {
	SlideDuration      float64 `json:"slide_duration"`
	TransitionDuration float64 `json:"transition_duration"`
	TotalDuration      float64 `json:"total_duration"`
}
