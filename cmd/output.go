package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/convert"
	"github.com/gaurav-prasanna/docpipe/core/extract"
	"github.com/gaurav-prasanna/docpipe/core/output"
	"github.com/gaurav-prasanna/docpipe/core/render"
	"github.com/gaurav-prasanna/docpipe/core/source"
)

// formatFlags are the mutually exclusive output format flags plus the
// output directory, registered on every document command.
type formatFlags struct {
	html      bool
	markdown  bool
	json      bool
	pdf       bool
	outputDir string
}

func (f *formatFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.html, "html", false, "Output HTML (default from config)")
	cmd.Flags().BoolVar(&f.markdown, "markdown", false, "Output Markdown")
	cmd.Flags().BoolVar(&f.json, "json", false, "Output structured JSON")
	cmd.Flags().BoolVar(&f.pdf, "pdf", false, "Output PDF")
	cmd.Flags().StringVar(&f.outputDir, "output_dir", "", "Output directory (default from config, then current directory)")
}

// format returns the selected format, falling back to fallback when no
// format flag is set.
func (f *formatFlags) format(fallback string) (string, error) {
	var chosen []string
	for name, set := range map[string]bool{"html": f.html, "markdown": f.markdown, "json": f.json, "pdf": f.pdf} {
		if set {
			chosen = append(chosen, name)
		}
	}
	switch len(chosen) {
	case 0:
		return fallback, nil
	case 1:
		return chosen[0], nil
	default:
		return "", fmt.Errorf("only one output format allowed per run (got %d)", len(chosen))
	}
}

// selectRenderer creates the Renderer for a format name.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case "html":
		return render.NewHTMLRenderer(), nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func newPipeline() *extract.Pipeline {
	return extract.New(source.New(), convert.New(), app.log)
}

// section is one generated artefact of a document.
type section struct {
	name   string
	markup string
	model  any
}

// bundle is the JSON model written when all sections share one file.
type bundle struct {
	Document any               `json:"document"`
	Sections map[string]string `json:"sections"`
}

// emit renders and writes the sections of one document. JSON output
// bundles every section with the full model into a single <base>_<kind>
// file; the other formats write one file per section.
func emit(ctx context.Context, flags *formatFlags, path string, kind core.Kind, title string, model any, sections []section) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	format, err := flags.format(app.cfg.Output.Format)
	if err != nil {
		return err
	}
	renderer, err := selectRenderer(format)
	if err != nil {
		return err
	}

	dir := flags.outputDir
	if dir == "" {
		dir = app.cfg.Output.Dir
	}
	writer, err := output.New(dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	meta := core.DocumentMetadata{
		Source:      path,
		Kind:        kind,
		Title:       title,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	outputs := make([]core.Output, 0, len(sections))
	if format == "json" {
		b := bundle{Document: model, Sections: make(map[string]string, len(sections))}
		markup := make([]string, 0, len(sections))
		for _, s := range sections {
			b.Sections[s.name] = s.markup
			markup = append(markup, s.markup)
		}
		meta.Section = string(kind)
		outputs = append(outputs, core.Output{Meta: meta, Markup: strings.Join(markup, "\n"), Model: b})
	} else {
		for _, s := range sections {
			m := meta
			m.Section = s.name
			outputs = append(outputs, core.Output{Meta: m, Markup: s.markup, Model: s.model})
		}
	}

	for _, out := range outputs {
		data, err := renderer.Render(out)
		if err != nil {
			return fmt.Errorf("render %s: %w", out.Meta.Section, err)
		}
		written, err := writer.Write(path, out.Meta.Section, data, renderer.Extension())
		if err != nil {
			return err
		}
		app.log.Debug("section written", "section", out.Meta.Section, "path", written, "bytes", len(data))
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", written)
	}
	return nil
}
