// Package core defines the shared models and pipeline interfaces for docpipe.
// Each stage of the pipeline is a clean, testable interface; the structured
// models are rebuilt fresh for every document.
package core

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrRead is returned when the input document cannot be read.
	ErrRead = errors.New("error reading file")
	// ErrConvert marks a failure inside the Block Sequence Provider. The
	// underlying error is always wrapped alongside it.
	ErrConvert = errors.New("conversion failed")
	// ErrUnsupportedFormat is returned when the input is neither a DOCX
	// archive nor markup.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// ConvertError wraps an underlying conversion failure so that both
// errors.Is(err, ErrConvert) and the cause are visible to callers.
type ConvertError struct {
	Err error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%s: %v", ErrConvert, e.Err)
}

func (e *ConvertError) Unwrap() []error {
	return []error{ErrConvert, e.Err}
}

// Kind names the content domain a document is extracted for.
type Kind string

const (
	KindCourse   Kind = "course"
	KindBlog     Kind = "blog"
	KindGlossary Kind = "glossary"
)

// DocumentMetadata describes one generated output.
type DocumentMetadata struct {
	Source      string `json:"source"`
	Kind        Kind   `json:"kind"`
	Section     string `json:"section"`
	Title       string `json:"title"`
	GeneratedAt string `json:"generated_at"` // ISO8601
}

// Lesson is one entry of a syllabus module.
type Lesson struct {
	Title string   `json:"title"`
	Items []string `json:"items"` // inner markup of each item
}

// Module is a syllabus module, ordered by the "Module N" ordinal in Title.
type Module struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Lessons     []Lesson `json:"lessons"`
}

// QAPair is one question with its (possibly multi-block) answer markup.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CourseDocument is the structured course model.
type CourseDocument struct {
	Title           string   `json:"title"`
	OverviewMarkup  string   `json:"overview_markup"`
	ObjectivesIntro string   `json:"objectives_intro"`
	ObjectivesList  []string `json:"objectives_list"`
	SyllabusModules []Module `json:"syllabus_modules"`
	FAQ             []QAPair `json:"faq"`
}

// UnitType discriminates the ContentUnit variants.
type UnitType string

const (
	UnitHeading   UnitType = "heading"
	UnitParagraph UnitType = "paragraph"
	UnitList      UnitType = "list"
	UnitImage     UnitType = "image"
)

// ContentUnit is one classified block of a blog body. Only the fields of
// its Type are meaningful.
type ContentUnit struct {
	Type UnitType `json:"type"`

	Level  int    `json:"level,omitempty"`  // heading
	Markup string `json:"markup,omitempty"` // heading, paragraph

	Ordered bool     `json:"ordered,omitempty"` // list
	Items   []string `json:"items,omitempty"`   // list

	Alt   string `json:"alt,omitempty"`   // image
	Index int    `json:"index,omitempty"` // image, 1-based
}

// Placeholder returns the label an image unit is emitted with.
func (u ContentUnit) Placeholder() string {
	if u.Type != UnitImage {
		return ""
	}
	return fmt.Sprintf("[Image %d]", u.Index)
}

// BlogDocument is the structured blog model.
type BlogDocument struct {
	Title        string        `json:"title"`
	ContentUnits []ContentUnit `json:"content_units"`
	ImageCount   int           `json:"image_count"`
	FAQ          []QAPair      `json:"faq"`
}

// GlossaryEntry is one term/definition row.
type GlossaryEntry struct {
	Term             string `json:"term"`
	DefinitionMarkup string `json:"definition_markup"`
}

// Glossary holds entries in table order.
type Glossary struct {
	Entries []GlossaryEntry `json:"entries"`
}

// Reader retrieves the raw bytes of an input document in one shot.
type Reader interface {
	Read(ctx context.Context, path string) ([]byte, error)
}

// Converter turns a binary document into whole-document block markup.
type Converter interface {
	Convert(data []byte) (string, error)
}

// Output is one generated artefact handed to a Renderer.
type Output struct {
	Meta   DocumentMetadata
	Markup string
	Model  any
}

// Renderer converts generated markup (and its model) into a final format.
type Renderer interface {
	Render(out Output) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
}
