package platform

type LinkedIn struct{}

func init() {
	Register(&LinkedIn{})
}

func (p *LinkedIn) GetName() string {
	return "linkedin"
}

func (p *LinkedIn) GetDimensions() (width, height int) {
	return 1080, 1350
}

func (p *LinkedIn) GetFormat() string {
	return "png"
}

func (p *LinkedIn) GetQuality() int {
	return 95
}

func (p *LinkedIn) GetAspectRatio() string {
	return "4:5"
}
