package carousel

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZacxDev/carousel-engine/internal/filter"
	"github.com/ZacxDev/carousel-engine/pkg/types"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Project is a carousel document handed to the engine by the
// project-management layer: slides, filter, reel settings, optional audio.
type Project struct {
	Title       string              `yaml:"title"`
	Slides      []types.Slide       `yaml:"slides"`
	Filter      types.FilterConfig  `yaml:"filter"`
	Video       types.VideoSettings `yaml:"video"`
	Audio       *types.AudioClip    `yaml:"audio,omitempty"`
	Attribution string              `yaml:"attribution,omitempty"`
}

// LoadProject reads a project YAML document and resolves local slide images
// relative to the document's directory. Filter parameters are clamped on
// load; imported templates can carry out-of-range values.
func LoadProject(path string) (*Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read project %s", path)
	}

	var p Project
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, errors.Wrap(err, "parse project")
	}

	p.Filter = filter.Normalize(p.Filter)
	p.Slides = types.Renumber(p.Slides)

	baseDir := filepath.Dir(path)
	for i := range p.Slides {
		s := &p.Slides[i]
		if s.ImageURL == "" || isRemote(s.ImageURL) {
			continue
		}
		imgPath := s.ImageURL
		if !filepath.IsAbs(imgPath) {
			imgPath = filepath.Join(baseDir, imgPath)
		}
		data, err := os.ReadFile(imgPath)
		if err != nil {
			if s.Status == types.SlideStatusReady {
				return nil, errors.Wrapf(err, "read image for slide %d", s.Position)
			}
			continue
		}
		s.Image = data
	}

	if p.Audio != nil {
		if err := p.Audio.Validate(); err != nil {
			return nil, err
		}
		if !filepath.IsAbs(p.Audio.Path) {
			p.Audio.Path = filepath.Join(baseDir, p.Audio.Path)
		}
	}
	return &p, nil
}

func isRemote(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
