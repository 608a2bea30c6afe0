package platform

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Platform defines the interface for platform-specific image export
type Platform interface {
	// GetName returns the platform name
	GetName() string

	// GetDimensions returns the exact output dimensions in pixels
	GetDimensions() (width, height int)

	// GetFormat returns the output image format ("jpeg" or "png")
	GetFormat() string

	// GetQuality returns the encode quality (1-100; ignored for png)
	GetQuality() int

	// GetAspectRatio returns the display aspect ratio, e.g. "4:5"
	GetAspectRatio() string
}

var platforms = make(map[string]Platform)

// Register adds a platform to the registry
func Register(p Platform) {
	platforms[p.GetName()] = p
}

// Get returns a platform by name
func Get(name string) (Platform, error) {
	p, ok := platforms[name]
	if !ok {
		return nil, fmt.Errorf("unsupported platform: %s", name)
	}
	return p, nil
}

// GetSupportedPlatforms returns a sorted list of supported platform names
func GetSupportedPlatforms() []string {
	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
