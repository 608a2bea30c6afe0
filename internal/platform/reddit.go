package platform

type Reddit struct{}

func init() {
	Register(&Reddit{})
}

func (p *Reddit) GetName() string {
	return "reddit"
}

func (p *Reddit) GetDimensions() (width, height int) {
	return 1200, 1200
}

func (p *Reddit) GetFormat() string {
	return "png"
}

func (p *Reddit) GetQuality() int {
	return 95
}

func (p *Reddit) GetAspectRatio() string {
	return "1:1"
}
