package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/generate"
)

var glossaryFlags formatFlags

var glossaryCmd = &cobra.Command{
	Use:   "glossary <file>",
	Short: "Generate A-Z glossary markup from a term/definition table",
	Args:  cobra.ExactArgs(1),
	RunE:  runGlossary,
}

func init() {
	rootCmd.AddCommand(glossaryCmd)
	glossaryFlags.register(glossaryCmd)
}

func runGlossary(cmd *cobra.Command, args []string) error {
	path := args[0]

	g, err := newPipeline().Glossary(cmd.Context(), path)
	if err != nil {
		return err
	}

	return emit(cmd.Context(), &glossaryFlags, path, core.KindGlossary, "Glossary", g, []section{
		{name: "glossary", markup: generate.Glossary(g), model: g.Entries},
	})
}
