package platform

type Instagram struct{}

func init() {
	Register(&Instagram{})
}

func (p *Instagram) GetName() string {
	return "instagram"
}

func (p *Instagram) GetDimensions() (width, height int) {
	return 1080, 1350
}

func (p *Instagram) GetFormat() string {
	return "jpeg"
}

func (p *Instagram) GetQuality() int {
	return 85
}

func (p *Instagram) GetAspectRatio() string {
	return "4:5"
}
