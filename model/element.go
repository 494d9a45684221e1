package model

// ElementType represents the type of page element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeText
	ElementTypeHeading
	ElementTypeRule
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeText:
		return "Text"
	case ElementTypeHeading:
		return "Heading"
	case ElementTypeRule:
		return "Rule"
	default:
		return "Unknown"
	}
}

// Element is the interface for all page elements
type Element interface {
	Type() ElementType
	BoundingBox() BBox
}

// TextElement is an interface for elements containing text
type TextElement interface {
	Element
	GetText() string
}

// Fraction of the font size above and below the baseline
const (
	Ascent  = 0.8
	Descent = 0.2
)

// TextRole tells serialisers what a run of text represents
type TextRole int

const (
	RoleBody TextRole = iota
	RoleName
	RoleTitle
	RoleContact
	RoleEntryTitle
	RoleMeta
	RoleBullet
)

func (r TextRole) String() string {
	switch r {
	case RoleName:
		return "name"
	case RoleTitle:
		return "title"
	case RoleContact:
		return "contact"
	case RoleEntryTitle:
		return "entry-title"
	case RoleMeta:
		return "meta"
	case RoleBullet:
		return "bullet"
	default:
		return "body"
	}
}

// TextStyle represents text styling
type TextStyle struct {
	Bold   bool
	Italic bool
}

// TextRun is a single line of text drawn at a baseline
type TextRun struct {
	Text     string
	X        float64 // left edge
	Baseline float64 // baseline Y, top-left origin
	Width    float64 // measured width
	FontSize float64
	FontName string
	Style    TextStyle
	Role     TextRole
}

func (t *TextRun) Type() ElementType { return ElementTypeText }
func (t *TextRun) GetText() string   { return t.Text }
func (t *TextRun) BoundingBox() BBox {
	return textBox(t.X, t.Baseline, t.Width, t.FontSize)
}

// Heading is a section heading line. Text is already in display case.
type Heading struct {
	Text     string
	X        float64
	Baseline float64
	Width    float64
	FontSize float64
	FontName string
	Level    int
}

func (h *Heading) Type() ElementType { return ElementTypeHeading }
func (h *Heading) GetText() string   { return h.Text }
func (h *Heading) BoundingBox() BBox {
	return textBox(h.X, h.Baseline, h.Width, h.FontSize)
}

// Rule is a straight line segment
type Rule struct {
	Start Point
	End   Point
	Width float64 // stroke width
}

func (r *Rule) Type() ElementType { return ElementTypeRule }
func (r *Rule) BoundingBox() BBox {
	x := r.Start.X
	if r.End.X < x {
		x = r.End.X
	}
	y := r.Start.Y
	if r.End.Y < y {
		y = r.End.Y
	}
	w := r.End.X - r.Start.X
	if w < 0 {
		w = -w
	}
	h := r.End.Y - r.Start.Y
	if h < 0 {
		h = -h
	}
	return BBox{X: x, Y: y - r.Width/2, Width: w, Height: h + r.Width}
}

func textBox(x, baseline, width, size float64) BBox {
	return BBox{
		X:      x,
		Y:      baseline - size*Ascent,
		Width:  width,
		Height: size * (Ascent + Descent),
	}
}
