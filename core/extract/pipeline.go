package extract

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/block"
	"github.com/gaurav-prasanna/docpipe/core/blog"
	"github.com/gaurav-prasanna/docpipe/core/course"
	"github.com/gaurav-prasanna/docpipe/core/glossary"
	"github.com/gaurav-prasanna/docpipe/core/logging"
)

// Pipeline turns input documents into structured models. A Pipeline keeps
// no per-document state, so models never leak between runs.
type Pipeline struct {
	reader    core.Reader
	converter core.Converter
	course    *course.Extractor
	blog      *blog.Classifier
	log       *logging.Logger
}

// New creates a Pipeline over the given reader and converter.
func New(reader core.Reader, converter core.Converter, log *logging.Logger) *Pipeline {
	log = logging.OrNop(log)
	return &Pipeline{
		reader:    reader,
		converter: converter,
		course:    course.New(log),
		blog:      blog.New(log),
		log:       log,
	}
}

// Blocks reads and converts path into its top-level block sequence. Read
// failures match core.ErrRead; conversion failures match core.ErrConvert.
func (p *Pipeline) Blocks(ctx context.Context, path string) ([]block.Node, error) {
	log := p.log.With("source", path)
	data, err := p.reader.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	markup, err := p.converter.Convert(data)
	if err != nil {
		return nil, err
	}
	return parse(markup, log)
}

func parse(markup string, log *logging.Logger) ([]block.Node, error) {
	content, err := Sanitize(markup)
	if err != nil {
		return nil, &core.ConvertError{Err: err}
	}
	blocks, err := block.Parse(content)
	if err != nil {
		return nil, &core.ConvertError{Err: err}
	}
	log.Debug("block sequence built", "blocks", len(blocks))
	return blocks, nil
}

// Course extracts a CourseDocument titled with title.
func (p *Pipeline) Course(ctx context.Context, path, title string) (*core.CourseDocument, error) {
	blocks, err := p.Blocks(ctx, path)
	if err != nil {
		return nil, err
	}
	return p.course.Extract(blocks, title), nil
}

// Blog extracts a BlogDocument.
func (p *Pipeline) Blog(ctx context.Context, path string) (*core.BlogDocument, error) {
	blocks, err := p.Blocks(ctx, path)
	if err != nil {
		return nil, err
	}
	doc, err := p.blog.Extract(blocks)
	if err != nil {
		return nil, fmt.Errorf("extracting blog: %w", err)
	}
	return doc, nil
}

// Glossary extracts the term table.
func (p *Pipeline) Glossary(ctx context.Context, path string) (*core.Glossary, error) {
	blocks, err := p.Blocks(ctx, path)
	if err != nil {
		return nil, err
	}
	g := glossary.Extract(blocks)
	p.log.With("source", path).Info("glossary extracted", "entries", len(g.Entries))
	return g, nil
}
