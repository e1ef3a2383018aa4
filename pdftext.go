// Package pdftext extracts text from PDF documents together with
// per-span spatial metadata: bounding boxes, font sizes and page
// numbers.
//
// Basic usage:
//
//	out, err := pdftext.FromPath("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(out.String())
//	if warnings := out.Warnings(); len(warnings) > 0 {
//	    log.Println(pdftext.FormatWarnings(warnings))
//	}
//
// Encrypted documents take a password option:
//
//	out, err := pdftext.FromBytes(data, pdftext.WithPassword("secret"))
//
// Beyond the plain text dump, StringPretty renders the document on a
// character grid that preserves columns and indentation, and Lines
// exposes the structured spans with their bounding boxes.
package pdftext

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/pdftext/core"
	"github.com/tsawler/pdftext/crypt"
	"github.com/tsawler/pdftext/layout"
	"github.com/tsawler/pdftext/reader"
	"github.com/tsawler/pdftext/resolver"
	"github.com/tsawler/pdftext/text"
)

// Option configures an extraction.
type Option func(*config)

type config struct {
	password string
}

// WithPassword supplies the password for encrypted documents. Both the
// user and the owner password are accepted.
func WithPassword(password string) Option {
	return func(c *config) {
		c.password = password
	}
}

// FromPath extracts text from the PDF file at the given path.
func FromPath(path string, opts ...Option) (*TextOutput, error) {
	cfg := applyOptions(opts)

	r, err := reader.OpenWithPassword(path, cfg.password)
	if err != nil {
		return nil, mapOpenError(err, cfg.password)
	}
	defer r.Close()

	return extract(r)
}

// FromBytes extracts text from a PDF held in memory.
func FromBytes(data []byte, opts ...Option) (*TextOutput, error) {
	cfg := applyOptions(opts)

	r, err := reader.NewReaderFromBytes(data, cfg.password)
	if err != nil {
		return nil, mapOpenError(err, cfg.password)
	}

	return extract(r)
}

// FromReader extracts text from a PDF read from an arbitrary stream.
// The stream is read to its end before parsing begins.
func FromReader(src io.Reader, opts ...Option) (*TextOutput, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return FromBytes(data, opts...)
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// mapOpenError translates reader failures into the public error
// values.
func mapOpenError(err error, password string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return err
	case errors.Is(err, reader.ErrEncrypted):
		return ErrEncryptedNoPassword
	case errors.Is(err, crypt.ErrWrongPassword):
		if password == "" {
			return ErrEncryptedNoPassword
		}
		return ErrWrongPassword
	default:
		return fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
}

// pageInput holds everything one page's interpretation needs, gathered
// up front so interpretation can run in parallel.
type pageInput struct {
	index     int
	content   []byte
	resources core.Dict
	mediaBox  [4]float64
	skip      *Warning // Set when the page cannot be processed at all
}

// pageResult is one page's extraction output.
type pageResult struct {
	lines    []layout.Line
	glyphs   layout.PageGlyphs
	warnings []Warning
}

// extract runs the pipeline: gather page inputs, interpret pages in
// parallel, reassemble in document order.
func extract(r *reader.Reader) (*TextOutput, error) {
	pageCount, err := r.PageCount()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	inputs := gatherPages(r, pageCount)

	// Interpretation is CPU-bound and per-page independent; only the
	// object loads inside the resolver share reader state, so they
	// serialise on one mutex. The resolver adds cycle detection and a
	// depth bound over the raw reader.
	res := resolver.NewResolver(r)
	var mu sync.Mutex
	resolve := func(obj core.Object) (core.Object, error) {
		mu.Lock()
		defer mu.Unlock()
		return res.Resolve(obj)
	}

	results := make([]pageResult, len(inputs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range inputs {
		in := &inputs[i]
		g.Go(func() error {
			results[in.index] = extractPage(in, resolve)
			return nil
		})
	}
	g.Wait()

	return assemble(results), nil
}

// gatherPages loads content and resources for every page. Failures
// demote the page to a skip warning; other pages continue.
func gatherPages(r *reader.Reader, pageCount int) []pageInput {
	inputs := make([]pageInput, 0, pageCount)

	for i := 0; i < pageCount; i++ {
		in := pageInput{index: i, mediaBox: [4]float64{0, 0, 612, 792}}

		page, err := r.GetPage(i)
		if err != nil {
			in.skip = &Warning{
				Kind: "page-skipped", Page: i + 1,
				Message: fmt.Sprintf("failed to load page: %v", err),
			}
			inputs = append(inputs, in)
			continue
		}

		in.mediaBox, _ = page.MediaBox()

		content, err := page.Contents()
		if err != nil {
			in.skip = &Warning{
				Kind: "page-skipped", Page: i + 1,
				Message: fmt.Sprintf("failed to read content stream: %v", err),
			}
			inputs = append(inputs, in)
			continue
		}
		in.content = content

		resources, err := page.Resources()
		if err != nil {
			resources = core.Dict{}
		}
		in.resources = resources

		inputs = append(inputs, in)
	}

	return inputs
}

// extractPage interprets one page and reconstructs its layout.
func extractPage(in *pageInput, resolve func(core.Object) (core.Object, error)) pageResult {
	res := pageResult{
		glyphs: layout.PageGlyphs{MinX: in.mediaBox[0], MaxY: in.mediaBox[3]},
	}

	if in.skip != nil {
		res.warnings = append(res.warnings, *in.skip)
		return res
	}
	if len(in.content) == 0 {
		return res
	}

	interp := text.NewInterpreter(in.index, resolve)
	runErr := interp.Run(in.content, in.resources)

	for _, w := range interp.Warnings() {
		res.warnings = append(res.warnings, Warning{
			Kind: w.Kind, Page: in.index + 1, Font: w.Font, Message: w.Message,
		})
	}

	if runErr != nil {
		// Page-fatal: the page's output is dropped, the document
		// continues.
		res.warnings = append(res.warnings, Warning{
			Kind: "page-skipped", Page: in.index + 1,
			Message: fmt.Sprintf("content stream aborted: %v", runErr),
		})
		return res
	}

	glyphs := interp.Glyphs()
	res.glyphs.Glyphs = glyphs
	res.lines = layout.BuildLines(glyphs, in.mediaBox[3])
	return res
}

// assemble stitches the per-page results into the public output shape,
// inserting one empty line between pages.
func assemble(results []pageResult) *TextOutput {
	out := &TextOutput{}
	var warnings []Warning

	for i, res := range results {
		if i > 0 {
			out.lines = append(out.lines, Line{})
		}
		for _, l := range res.lines {
			out.lines = append(out.lines, convertLine(l))
		}
		out.pages = append(out.pages, res.glyphs)
		warnings = append(warnings, res.warnings...)
	}

	out.warnings = dedupeWarnings(warnings)
	return out
}

// convertLine maps a layout line to the public span shape with
// 1-based page numbers.
func convertLine(l layout.Line) Line {
	line := make(Line, 0, len(l.Spans))
	for _, s := range l.Spans {
		line = append(line, TextSpan{
			Text: s.Text,
			BBox: BoundingBox{
				Top:    s.BBox.Top,
				Right:  s.BBox.Right,
				Bottom: s.BBox.Bottom,
				Left:   s.BBox.Left,
			},
			FontSize: s.FontSize,
			Page:     s.Page + 1,
		})
	}
	return line
}
