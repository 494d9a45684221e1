package layout

import (
	"io"
	"log/slog"

	"github.com/tsawler/vita/canon"
	"github.com/tsawler/vita/model"
)

// ruleOffset is the gap between a heading's glyph box and its rule
const ruleOffset = 3.0

// Context is the mutable state of one layout run: the page list, the current
// page and the vertical cursor. A Context belongs to a single call and must
// not be reused for another document.
type Context struct {
	cfg    Config
	doc    *model.Document
	page   *model.Page
	y      float64
	logger *slog.Logger
}

// NewContext validates cfg and opens the first page with the cursor at the
// top margin. A nil logger discards log output.
func NewContext(cfg Config, logger *slog.Logger) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Context{
		cfg:    cfg.withDefaults(),
		doc:    model.NewDocument(),
		logger: logger,
	}
	c.NewPage()
	return c, nil
}

// Document returns the document built so far
func (c *Context) Document() *model.Document {
	return c.doc
}

// Config returns the configuration in effect, with defaults applied
func (c *Context) Config() Config {
	return c.cfg
}

// Y returns the cursor's distance from the top edge of the current page
func (c *Context) Y() float64 {
	return c.y
}

// PageIndex returns the 0-based index of the current page
func (c *Context) PageIndex() int {
	return len(c.doc.Pages) - 1
}

// Limit returns the lowest Y the cursor may reach (page height minus margin)
func (c *Context) Limit() float64 {
	return c.cfg.Height - c.cfg.Margin
}

// Remaining returns the vertical space left on the current page
func (c *Context) Remaining() float64 {
	return c.Limit() - c.y
}

// NewPage appends a page and moves the cursor to the top margin
func (c *Context) NewPage() {
	c.page = model.NewPage(c.cfg.Width, c.cfg.Height)
	c.doc.AddPage(c.page)
	c.y = c.cfg.Margin
}

// EnsureSpace starts a new page when a block of the given height would
// cross the bottom margin. It reports whether a page break happened.
func (c *Context) EnsureSpace(needed float64) bool {
	if c.y+needed <= c.Limit() {
		return false
	}
	// A block taller than a whole page gains nothing from another blank page
	if c.y == c.cfg.Margin && len(c.page.Elements) == 0 {
		return false
	}
	c.logger.Debug("page break",
		"page", c.page.Number,
		"y", c.y,
		"needed", needed,
		"limit", c.Limit())
	c.NewPage()
	return true
}

// Gap adds blank vertical space. Space that would cross the bottom margin
// is dropped; the next block starts a new page anyway.
func (c *Context) Gap(dy float64) {
	c.y += dy
	if c.y > c.Limit() {
		c.y = c.Limit()
	}
}

// EmitHeading draws an upper-cased section heading with a rule beneath it.
// The heading is only placed where one following body line also fits.
func (c *Context) EmitHeading(title string) {
	c.emitHeading(title, c.cfg.Advance(c.cfg.BodySize))
}

// emitHeading reserves the heading allowance plus next, the height of the
// first block that will follow the heading.
func (c *Context) emitHeading(title string, next float64) {
	text := canon.HeadingText(title)
	if text == "" {
		return
	}

	reserve := c.cfg.HeadingAllowance + next
	if reserve > c.cfg.ContentHeight() {
		reserve = c.cfg.ContentHeight()
	}
	c.EnsureSpace(reserve)

	size := c.cfg.HeadingSize
	bold := model.TextStyle{Bold: true}
	c.page.AddElement(&model.Heading{
		Text:     text,
		X:        c.cfg.Margin,
		Baseline: c.y + size*model.Ascent,
		Width:    c.cfg.measure(bold)(text, size),
		FontSize: size,
		FontName: c.cfg.fontName(bold),
		Level:    2,
	})

	ruleY := c.y + size + ruleOffset
	c.page.AddElement(&model.Rule{
		Start: model.Point{X: c.cfg.Margin, Y: ruleY},
		End:   model.Point{X: c.cfg.Width - c.cfg.Margin, Y: ruleY},
		Width: c.cfg.RuleWidth,
	})

	c.y += c.cfg.HeadingAllowance
}

// EmitParagraph wraps text to the content width and draws it line by line,
// breaking pages between lines as needed.
func (c *Context) EmitParagraph(text string, fontSize float64) {
	c.emitText(text, fontSize, model.TextStyle{}, model.RoleBody)
}

func (c *Context) emitText(text string, fontSize float64, style model.TextStyle, role model.TextRole) {
	measure := c.cfg.measure(style)
	lines := WrapText(canon.TrimText(text), fontSize, c.cfg.ContentWidth(), measure)
	for _, line := range lines {
		c.EnsureSpace(c.cfg.Advance(fontSize))
		c.drawLine(line, c.cfg.Margin, fontSize, style, role)
		c.y += c.cfg.Advance(fontSize)
	}
}

// EmitBulleted draws one bulleted item per entry. An item is moved to the
// next page as a whole when it does not fit; only items too tall to sit
// under a heading on a fresh page are split across pages.
func (c *Context) EmitBulleted(items []string, fontSize float64) {
	measure := c.cfg.measure(model.TextStyle{})
	width := c.cfg.ContentWidth() - c.cfg.BulletIndent
	advance := c.cfg.Advance(fontSize)

	for _, item := range items {
		lines := WrapText(canon.TrimText(item), fontSize, width, measure)
		if len(lines) == 0 {
			continue
		}

		height := float64(len(lines)) * advance
		if height <= c.wholeItemLimit() {
			c.EnsureSpace(height)
		}

		for i, line := range lines {
			c.EnsureSpace(advance)
			if i == 0 {
				c.drawLine(canon.Bullet, c.cfg.Margin, fontSize, model.TextStyle{}, model.RoleBullet)
			}
			c.drawLine(line, c.cfg.Margin+c.cfg.BulletIndent, fontSize, model.TextStyle{}, model.RoleBullet)
			c.y += advance
		}
	}
}

// bulletHeight returns the height EmitBulleted reserves for its first item
func (c *Context) bulletHeight(item string, fontSize float64) float64 {
	width := c.cfg.ContentWidth() - c.cfg.BulletIndent
	lines := WrapText(canon.TrimText(item), fontSize, width, c.cfg.Measure)
	height := float64(len(lines)) * c.cfg.Advance(fontSize)
	if height > c.wholeItemLimit() {
		return c.cfg.Advance(fontSize)
	}
	return height
}

// wholeItemLimit is the tallest bullet item kept in one piece. It must fit
// below a heading at the top of a page; taller items flow line by line.
func (c *Context) wholeItemLimit() float64 {
	return c.cfg.ContentHeight() - c.cfg.HeadingAllowance
}

// drawLine places one line of text with its top at the cursor
func (c *Context) drawLine(text string, x, fontSize float64, style model.TextStyle, role model.TextRole) *model.TextRun {
	run := &model.TextRun{
		Text:     text,
		X:        x,
		Baseline: c.y + fontSize*model.Ascent,
		Width:    c.cfg.measure(style)(text, fontSize),
		FontSize: fontSize,
		FontName: c.cfg.fontName(style),
		Style:    style,
		Role:     role,
	}
	c.page.AddElement(run)
	return run
}
