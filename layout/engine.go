package layout

import (
	"log/slog"

	"github.com/tsawler/vita/canon"
	"github.com/tsawler/vita/model"
)

// metaGap is the minimum horizontal space between an entry title and its dates
const metaGap = 12.0

// Engine lays out a section plan onto fixed-size pages
type Engine struct {
	config Config
	logger *slog.Logger
}

// NewEngine creates an engine with the default A4 configuration
func NewEngine() *Engine {
	return &Engine{
		config: A4(),
	}
}

// NewEngineWithConfig creates an engine with custom configuration
func NewEngineWithConfig(config Config) *Engine {
	return &Engine{
		config: config,
	}
}

// SetLogger sets the logger used for debug output (nil discards)
func (e *Engine) SetLogger(logger *slog.Logger) {
	e.logger = logger
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.config
}

// Render lays out the plan: header, contact line, then every populated
// section in plan order. Each call works on its own [Context], so an Engine
// may be shared between goroutines. On error no document is returned.
func (e *Engine) Render(plan canon.Plan) (*model.Document, error) {
	c, err := NewContext(e.config, e.logger)
	if err != nil {
		return nil, err
	}

	doc := c.Document()
	doc.Metadata.Title = plan.Header.Name
	doc.Metadata.Author = plan.Header.Name
	doc.Metadata.Subject = "Resume"
	doc.Metadata.Creator = "vita"

	c.emitHeader(plan.Header)

	for _, section := range plan.Populated() {
		c.emitSection(section)
	}

	c.logger.Debug("layout complete",
		"pages", doc.PageCount(),
		"headings", doc.Headings())

	return doc, nil
}

// emitHeader draws the name, the title/location line and the contact line
func (c *Context) emitHeader(h Header) {
	cfg := c.cfg
	emitted := false

	if h.Name != "" {
		c.emitText(h.Name, cfg.NameSize, model.TextStyle{Bold: true}, model.RoleName)
		emitted = true
	}
	if sub := h.Subtitle(); sub != "" {
		c.emitText(sub, cfg.TitleSize, model.TextStyle{}, model.RoleTitle)
		emitted = true
	}
	if contacts := h.ContactLine(); contacts != "" {
		c.emitText(contacts, cfg.SmallSize, model.TextStyle{}, model.RoleContact)
		emitted = true
	}

	if emitted {
		c.Gap(cfg.SectionGap)
	}
}

// Header is the plan header as consumed by the engine
type Header = canon.Header

// emitSection draws a heading followed by the section entries
func (c *Context) emitSection(s canon.Section) {
	if s.Empty || len(s.Entries) == 0 {
		return
	}

	c.emitHeading(s.Title, c.firstBlockHeight(s.Entries[0]))

	for i, entry := range s.Entries {
		if i > 0 {
			c.Gap(c.cfg.EntryGap)
		}
		c.emitEntry(entry)
	}

	c.Gap(c.cfg.SectionGap)
}

// firstBlockHeight returns the space the entry's first block asks
// EnsureSpace for, so the heading above it can reserve exactly that.
func (c *Context) firstBlockHeight(e canon.Entry) float64 {
	switch {
	case e.Heading() != "" || e.Meta != "":
		return c.cfg.Advance(c.cfg.BodySize)
	case e.BodyText() != "":
		return c.cfg.Advance(c.cfg.BodySize)
	case len(e.Bullets) > 0:
		return c.bulletHeight(e.Bullets[0], c.cfg.BodySize)
	default:
		return c.cfg.Advance(c.cfg.SmallSize)
	}
}

// emitEntry draws one entry: a bold head line with the dates right-aligned,
// the body, the bullets and the technologies line.
func (c *Context) emitEntry(e canon.Entry) {
	c.emitEntryHead(e)
	c.emitText(e.BodyText(), c.cfg.BodySize, model.TextStyle{}, model.RoleBody)
	c.EmitBulleted(e.Bullets, c.cfg.BodySize)
	c.emitText(e.TechnologiesText(), c.cfg.SmallSize, model.TextStyle{}, model.RoleMeta)
}

func (c *Context) emitEntryHead(e canon.Entry) {
	head := e.Heading()
	if head == "" && e.Meta == "" {
		return
	}

	size := c.cfg.BodySize
	advance := c.cfg.Advance(size)
	bold := model.TextStyle{Bold: true}
	regular := model.TextStyle{}

	if head == "" {
		c.EnsureSpace(advance)
		c.drawLine(e.Meta, c.cfg.Margin, size, regular, model.RoleMeta)
		c.y += advance
		return
	}

	width := c.cfg.ContentWidth()
	metaWidth := c.cfg.Measure(e.Meta, size)
	inline := e.Meta != "" && metaWidth+metaGap < width/2
	if inline {
		width -= metaWidth + metaGap
	}

	lines := WrapText(head, size, width, c.cfg.MeasureBold)
	for i, line := range lines {
		c.EnsureSpace(advance)
		c.drawLine(line, c.cfg.Margin, size, bold, model.RoleEntryTitle)
		if i == 0 && inline {
			c.drawLine(e.Meta, c.cfg.Width-c.cfg.Margin-metaWidth, size, regular, model.RoleMeta)
		}
		c.y += advance
	}

	// Dates too long to share the head line get a line of their own
	if e.Meta != "" && !inline {
		c.emitText(e.Meta, size, regular, model.RoleMeta)
	}
}
