package types

import (
	"context"
	"errors"
	"fmt"
)

// DecodeError means input bytes were not a decodable raster. Corrupt data is
// never silently passed through.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode image: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode image: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// CompositingError scopes a filter or overlay failure to the single
// slide/platform pair being processed.
type CompositingError struct {
	SlideIndex int
	Platform   string
	Stage      string
	Err        error
}

func (e *CompositingError) Error() string {
	if e.Platform != "" {
		return fmt.Sprintf("compositing slide %d for %s: %s: %v", e.SlideIndex, e.Platform, e.Stage, e.Err)
	}
	return fmt.Sprintf("compositing slide %d: %s: %v", e.SlideIndex, e.Stage, e.Err)
}

func (e *CompositingError) Unwrap() error { return e.Err }

// TimingConfigError reports inconsistent timing settings. It is raised by
// validation before assembly starts, never mid-encode.
type TimingConfigError struct {
	Reason string
}

func (e *TimingConfigError) Error() string {
	return "timing config: " + e.Reason
}

// AssemblyFailure aborts a whole video run: zero ready slides, encoder
// failure, or an audio/video mismatch beyond tolerance.
type AssemblyFailure struct {
	Reason string
	Err    error
}

func (e *AssemblyFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video assembly: %s: %v", e.Reason, e.Err)
	}
	return "video assembly: " + e.Reason
}

func (e *AssemblyFailure) Unwrap() error { return e.Err }

// IsCancellation reports whether err is a user or deadline cancellation
// rather than a failure, so callers can skip the error surface on cancel.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
