package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docpipe/core"
	"github.com/gaurav-prasanna/docpipe/core/config"
	"github.com/gaurav-prasanna/docpipe/core/generate"
)

var (
	blogFlags     formatFlags
	flagImageURLs []string
	flagFeatured  generate.FeaturedImage
)

var blogCmd = &cobra.Command{
	Use:   "blog <file>",
	Short: "Generate article and FAQ markup for a blog draft",
	Long: `Blog strips editorial metadata and markup noise from a blog draft,
classifies its content and writes <base>_blog and <base>_blog_faq.
Image placeholders take --image_url values in document order.

Examples:
  docpipe blog post.docx --featured_url https://cdn.example.com/banner.png
  docpipe blog post.docx --image_url https://cdn/1.png --image_url https://cdn/2.png`,
	Args: cobra.ExactArgs(1),
	RunE: runBlog,
}

func init() {
	rootCmd.AddCommand(blogCmd)
	blogFlags.register(blogCmd)
	blogCmd.Flags().StringArrayVar(&flagImageURLs, "image_url", nil, "Image URL for the next image placeholder (repeatable)")
	blogCmd.Flags().StringVar(&flagFeatured.URL, "featured_url", "", "Featured image URL")
	blogCmd.Flags().StringVar(&flagFeatured.Alt, "featured_alt", "", "Featured image alt text")
	blogCmd.Flags().StringVar(&flagFeatured.Title, "featured_title", "", "Featured image title")
}

func runBlog(cmd *cobra.Command, args []string) error {
	path := args[0]

	doc, err := newPipeline().Blog(cmd.Context(), path)
	if err != nil {
		return err
	}

	opts := app.cfg.Blog.Options()
	if len(flagImageURLs) > 0 {
		opts.ImageURLs = flagImageURLs
	}
	if flagFeatured.URL != "" {
		opts.Featured = flagFeatured
	}
	if err := checkImages(doc, opts); err != nil {
		return err
	}

	return emit(cmd.Context(), &blogFlags, path, core.KindBlog, doc.Title, doc, []section{
		{name: "blog", markup: generate.Blog(doc, opts), model: doc.ContentUnits},
		{name: "blog_faq", markup: generate.BlogFAQ(doc.FAQ), model: doc.FAQ},
	})
}

// checkImages rejects unusable image URLs and warns about likely mistakes.
func checkImages(doc *core.BlogDocument, opts generate.BlogOptions) error {
	blog := config.BlogConfig{
		FeaturedImage:  opts.Featured,
		ImageURLs:      opts.ImageURLs,
		PlaceholderURL: opts.PlaceholderURL,
	}
	if err := blog.Validate(); err != nil {
		return err
	}
	for _, u := range opts.ImageURLs {
		if !config.IsImageURL(u) {
			app.log.Warn("image URL has no image extension", "url", u)
		}
	}
	if doc.ImageCount > len(opts.ImageURLs) {
		app.log.Warn("fewer image URLs than images; using placeholder",
			"images", doc.ImageCount,
			"urls", len(opts.ImageURLs),
			"placeholder", opts.PlaceholderURL,
		)
	}
	return nil
}
