package platform

type Lemon8 struct{}

func init() {
	Register(&Lemon8{})
}

func (p *Lemon8) GetName() string {
	return "lemon8"
}

func (p *Lemon8) GetDimensions() (width, height int) {
	return 1080, 1440
}

func (p *Lemon8) GetFormat() string {
	return "jpeg"
}

func (p *Lemon8) GetQuality() int {
	return 90
}

func (p *Lemon8) GetAspectRatio() string {
	return "3:4"
}
