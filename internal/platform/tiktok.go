package platform

type TikTok struct{}

func init() {
	Register(&TikTok{})
}

func (p *TikTok) GetName() string {
	return "tiktok"
}

func (p *TikTok) GetDimensions() (width, height int) {
	return 1080, 1920
}

func (p *TikTok) GetFormat() string {
	return "jpeg"
}

func (p *TikTok) GetQuality() int {
	return 90
}

func (p *TikTok) GetAspectRatio() string {
	return "9:16"
}
