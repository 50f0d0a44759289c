package format

// Geometry holds every pixel constant of a preset. Offsets named D* are
// relative to the cell anchor they mention; all values are in template
// pixels.
type Geometry struct {
	TemplateWidth  int
	TemplateHeight int

	XStart int
	YStart int
	XPitch int
	YPitch int

	CardWidth  int
	CardHeight int

	// Caption frame (name + price background). Pasted at
	// (x+FrameDX, y+CardHeight+FrameDY); size includes the border.
	FrameWidth  int
	FrameHeight int
	FrameBorder int
	FrameDX     int
	FrameDY     int

	// Catalog-number frame. Pasted at (x+NumberDX, y+CardHeight+NumberDY).
	NumberWidth  int
	NumberHeight int
	NumberBorder int
	NumberDX     int
	NumberDY     int
	// Number text fine tuning, applied after centring on the card's right half.
	NumberTextDX int
	NumberTextDY int

	NameSize   int
	PriceSize  int
	NumberSize int
	// NameMaxWidth bounds the caption; zero means CardWidth.
	NameMaxWidth int
	// Caption baselines relative to the card bottom edge.
	NameDY  int
	PriceDY int

	Decorations Decorations
}

// Decorations positions the page-level texts.
type Decorations struct {
	CommentSize     int
	CommentMaxWidth int
	CommentX        int
	CommentDY       int // from the vertical centre

	DateSize   int
	DateRight  int
	DateBottom int

	TitleSize int
	TitleDY   int // from the vertical centre

	StoreSize int
	StoreDY   int // from the vertical centre
}

// CaptionWidth is the width the name caption is fitted to.
func (g Geometry) CaptionWidth() int {
	if g.NameMaxWidth > 0 {
		return g.NameMaxWidth
	}
	return g.CardWidth
}

// BadgeSize is the side of the square graded-gem badge.
func (g Geometry) BadgeSize() int {
	return g.CardWidth / 3
}
