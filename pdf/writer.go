package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tsawler/vita/model"
)

// ErrEmptyDocument is returned when there is nothing to write
var ErrEmptyDocument = errors.New("document has no pages")

// header is the file header; the comment line of high bytes marks the file
// as binary for transfer tools.
const header = "%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"

// Options controls PDF output
type Options struct {
	// Compress applies FlateDecode to page content streams
	Compress bool

	// Logger receives debug output (nil discards)
	Logger *slog.Logger
}

// Encode serialises doc into a complete PDF file
func Encode(doc *model.Document, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serialises doc as a PDF 1.4 file: one content stream per page,
// standard 14 fonts with WinAnsiEncoding and a classic cross-reference
// table. The same document always produces the same bytes.
func Write(out io.Writer, doc *model.Document, opts Options) error {
	if doc == nil || doc.PageCount() == 0 {
		return ErrEmptyDocument
	}

	w := &writer{opts: opts, logger: opts.Logger}
	if w.logger == nil {
		w.logger = discardLogger
	}
	w.buf.WriteString(header)

	catalogRef := w.reserve()
	pagesRef := w.reserve()
	infoRef := w.reserve()

	fonts := collectFonts(doc)
	fontDict := Dict{}
	for _, f := range fonts.order {
		ref := w.reserve()
		w.writeObject(ref, Dict{
			"Type":     Name("Font"),
			"Subtype":  Name("Type1"),
			"BaseFont": Name(f),
			"Encoding": Name("WinAnsiEncoding"),
		})
		fontDict[fonts.resource[f]] = ref
	}
	resourcesRef := w.reserve()
	w.writeObject(resourcesRef, Dict{
		"Font":    fontDict,
		"ProcSet": Array{Name("PDF"), Name("Text")},
	})

	kids := make(Array, 0, doc.PageCount())
	for _, page := range doc.Pages {
		contentRef := w.reserve()
		if err := w.writeStream(contentRef, pageContent(page, fonts)); err != nil {
			return fmt.Errorf("page %d: %w", page.Number, err)
		}

		pageRef := w.reserve()
		w.writeObject(pageRef, Dict{
			"Type":      Name("Page"),
			"Parent":    pagesRef,
			"MediaBox":  Array{Int(0), Int(0), Real(page.Width), Real(page.Height)},
			"Resources": resourcesRef,
			"Contents":  contentRef,
		})
		kids = append(kids, pageRef)
	}

	w.writeObject(pagesRef, Dict{
		"Type":  Name("Pages"),
		"Kids":  kids,
		"Count": Int(len(kids)),
	})
	w.writeObject(catalogRef, Dict{
		"Type":  Name("Catalog"),
		"Pages": pagesRef,
	})
	w.writeObject(infoRef, infoDict(doc.Metadata))

	w.writeTrailer(catalogRef, infoRef)

	n, err := out.Write(w.buf.Bytes())
	if err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}

	w.logger.Debug("pdf written",
		"pages", doc.PageCount(),
		"objects", len(w.offsets),
		"bytes", n,
		"compressed", opts.Compress)
	return nil
}

// writer accumulates the file body and the byte offset of every object
type writer struct {
	buf     bytes.Buffer
	offsets []int // offsets[n-1] is the offset of object n
	opts    Options
	logger  *slog.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// reserve allocates the next object number
func (w *writer) reserve() IndirectRef {
	w.offsets = append(w.offsets, 0)
	return IndirectRef{Number: len(w.offsets)}
}

func (w *writer) begin(ref IndirectRef) {
	w.offsets[ref.Number-1] = w.buf.Len()
	fmt.Fprintf(&w.buf, "%d %d obj\n", ref.Number, ref.Generation)
}

func (w *writer) writeObject(ref IndirectRef, obj Object) {
	w.begin(ref)
	w.buf.WriteString(obj.String())
	w.buf.WriteString("\nendobj\n")
}

func (w *writer) writeStream(ref IndirectRef, data []byte) error {
	dict := Dict{}
	if w.opts.Compress {
		compressed, err := flateEncode(data)
		if err != nil {
			return err
		}
		data = compressed
		dict["Filter"] = Name("FlateDecode")
	}
	dict["Length"] = Int(len(data))

	w.begin(ref)
	w.buf.WriteString(dict.String())
	w.buf.WriteString("\nstream\n")
	w.buf.Write(data)
	w.buf.WriteString("\nendstream\nendobj\n")
	return nil
}

// writeTrailer writes the cross-reference table and trailer. The file
// identifier is a name-based UUID of everything written before it.
func (w *writer) writeTrailer(root, info IndirectRef) {
	id := uuid.NewSHA1(uuid.NameSpaceOID, w.buf.Bytes())

	xref := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n", len(w.offsets)+1)
	w.buf.WriteString("0000000000 65535 f \n")
	for _, off := range w.offsets {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}

	trailer := Dict{
		"Size": Int(len(w.offsets) + 1),
		"Root": root,
		"Info": info,
		"ID":   Array{HexString(id[:]), HexString(id[:])},
	}
	fmt.Fprintf(&w.buf, "trailer\n%s\nstartxref\n%d\n%%%%EOF\n", trailer.String(), xref)
}

func infoDict(m model.Metadata) Dict {
	d := Dict{}
	set := func(key, value string) {
		if value != "" {
			d[key] = String(EncodeWinAnsi(value))
		}
	}
	set("Title", m.Title)
	set("Author", m.Author)
	set("Subject", m.Subject)
	set("Creator", m.Creator)
	producer := m.Producer
	if producer == "" {
		producer = "vita"
	}
	set("Producer", producer)
	set("Keywords", strings.Join(m.Keywords, ", "))
	if !m.CreationDate.IsZero() {
		set("CreationDate", m.CreationDate.UTC().Format("D:20060102150405Z"))
	}
	return d
}
