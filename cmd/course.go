package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/generate"
	"github.com/gaurav-prasanna/docpipe/core/locate"
)

var (
	courseFlags formatFlags
	flagTitle   string
)

var courseCmd = &cobra.Command{
	Use:   "course <file>",
	Short: "Generate overview, objectives, syllabus and FAQ markup for a course",
	Long: `Course locates the Overview, Objectives, Syllabus and FAQ sections of a
course document, builds the module/lesson tree and writes one output per
section: <base>_overview, <base>_objectives, <base>_syllabus, <base>_faq.
With --json a single <base>_course.json holds every section and the model.

Examples:
  docpipe course intro.docx --title "Intro to Go"
  docpipe course intro.docx --markdown --output_dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runCourse,
}

func init() {
	rootCmd.AddCommand(courseCmd)
	courseFlags.register(courseCmd)
	courseCmd.Flags().StringVar(&flagTitle, "title", "", "Course display title (default from config)")
}

func runCourse(cmd *cobra.Command, args []string) error {
	path := args[0]
	title := app.cfg.Course.Title
	if flagTitle != "" {
		title = flagTitle
	}

	doc, err := newPipeline().Course(cmd.Context(), path, title)
	if err != nil {
		return err
	}

	return emit(cmd.Context(), &courseFlags, path, core.KindCourse, doc.Title, doc, []section{
		{name: locate.Overview.String(), markup: generate.Overview(doc), model: doc.OverviewMarkup},
		{name: locate.Objectives.String(), markup: generate.Objectives(doc, app.cfg.Course.ObjectivesIntro), model: doc.ObjectivesList},
		{name: locate.Syllabus.String(), markup: generate.Syllabus(doc.SyllabusModules), model: doc.SyllabusModules},
		{name: locate.FAQ.String(), markup: generate.FAQ(doc.FAQ), model: doc.FAQ},
	})
}
