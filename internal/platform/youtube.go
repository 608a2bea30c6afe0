package platform

type YouTube struct{}

func init() {
	Register(&YouTube{})
}

func (p *YouTube) GetName() string {
	return "youtube"
}

func (p *YouTube) GetDimensions() (width, height int) {
	return 1000, 1000
}

func (p *YouTube) GetFormat() string {
	return "jpeg"
}

func (p *YouTube) GetQuality() int {
	return 85
}

func (p *YouTube) GetAspectRatio() string {
	return "1:1"
}
