package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/pipeline"
	"github.com/matzehuels/papernet/pkg/render/flat/sink"
)

// =============================================================================
// export
// =============================================================================

// exportFlags holds the raw flag values for the export command.
type exportFlags struct {
	outputDir  string
	prefix     string
	format     string
	source     string
	sourceSize int
	detail     int
	noLabels   bool
	noPages    bool
	noCache    bool
	refresh    bool
}

// exportCommand creates the export command that writes printable images.
func (c *CLI) exportCommand() *cobra.Command {
	f := exportFlags{}

	cmd := &cobra.Command{
		Use:   "export [layout-file]",
		Short: "Write the textured net, the source image and the page tiles",
		Long: `Render the curved-space source image, transfer it onto every flat cell,
draw the labelled glue tabs and write:

  <prefix>-all.<fmt>     the whole net
  <prefix>-source.<fmt>  the source image
  <prefix>-pageRC.<fmt>  one tile per printed page, row R, column C`,
		Example: `  papernet export
  papernet export net.txt -o out --format bmp
  papernet export --source photo.png --no-pages`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, noCache := c.exportOptions(cmd, f)
			return c.runExport(cmd, c.layoutArg(args), opts, noCache)
		},
	}

	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", ".", "directory for the images")
	cmd.Flags().StringVar(&f.prefix, "prefix", pipeline.DefaultPrefix, "file name stem")
	cmd.Flags().StringVarP(&f.format, "format", "f", string(pipeline.DefaultFormat), fmt.Sprintf("image format (%s)", strings.Join(sink.Formats, ", ")))
	cmd.Flags().StringVar(&f.source, "source", "", "use this image instead of rendering the source")
	cmd.Flags().IntVar(&f.sourceSize, "source-size", 0, "source image side in pixels (default from the layout file)")
	cmd.Flags().IntVar(&f.detail, "detail", pipeline.DefaultDetail, "geodesic subdivision depth of source edges")
	cmd.Flags().BoolVar(&f.noLabels, "no-labels", false, "draw tabs without labels")
	cmd.Flags().BoolVar(&f.noPages, "no-pages", false, "skip the page tiles")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the source image cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render the source even when cached")

	return cmd
}

// exportOptions merges flags over the config file.
func (c *CLI) exportOptions(cmd *cobra.Command, f exportFlags) (pipeline.ExportOptions, bool) {
	cfg := c.Config
	opts := pipeline.ExportOptions{
		OutputDir:  stringFlag(cmd, "output-dir", f.outputDir, cfg.Export.OutputDir),
		Prefix:     stringFlag(cmd, "prefix", f.prefix, cfg.Files.Prefix),
		Format:     sink.Format(stringFlag(cmd, "format", f.format, cfg.Export.Format)),
		SourcePath: stringFlag(cmd, "source", f.source, cfg.Export.Source),
		SourceSize: intFlag(cmd, "source-size", f.sourceSize, cfg.Export.SourceSize),
		Detail:     intFlag(cmd, "detail", f.detail, cfg.Export.Detail),
		NoLabels:   f.noLabels,
		NoPages:    f.noPages,
		Refresh:    f.refresh,
	}
	return opts, boolFlag(cmd, "no-cache", f.noCache, cfg.Export.NoCache)
}

func (c *CLI) runExport(cmd *cobra.Command, path string, opts pipeline.ExportOptions, noCache bool) error {
	ctx := cmd.Context()
	opts.Logger = loggerFromContext(ctx)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	sw := startStopwatch(opts.Logger)
	n, err := runner.Load(path)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNothingToLoad) {
			printWarning("Nothing to load from %s", path)
			return nil
		}
		return err
	}
	sw.lap("loaded layout")

	spin := startSpinner(ctx, "Rendering net...")
	res, err := runner.Export(ctx, n, opts)
	if err != nil {
		spin.Fail("Export failed")
		return err
	}
	spin.Stop()
	sw.done(fmt.Sprintf("Exported %d files", len(res.Files)))

	printSuccess("Exported %s", path)
	printStats(res.Stats.Cells, res.Stats.Tabs, res.Stats.Pages, res.SourceHit)
	for _, f := range res.Files {
		printFile(f)
	}
	printDetail("%dx%d pixels, %d roots, %s total",
		res.Stats.Width, res.Stats.Height, res.Stats.Roots,
		(res.Stats.SourceTime + res.Stats.RenderTime + res.Stats.WriteTime).Round(time.Millisecond))
	return nil
}

// =============================================================================
// scope
// =============================================================================

// scopeFlags holds flags for the scope command.
type scopeFlags struct {
	output  string
	format  string
	size    int
	detail  int
	noEdges bool
	noCache bool
	refresh bool
}

// scopeCommand creates the scope command that renders the curved-space view.
func (c *CLI) scopeCommand() *cobra.Command {
	f := scopeFlags{}

	cmd := &cobra.Command{
		Use:   "scope [layout-file]",
		Short: "Render the complex as seen in curved space",
		Long: `Render the Poincaré disc view of the complex: every cell filled with its
colour and, unless --no-edges is given, its edges drawn as geodesics.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScope(cmd, c.layoutArg(args), f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default <prefix>-scope.<fmt>)")
	cmd.Flags().StringVarP(&f.format, "format", "f", string(pipeline.DefaultFormat), fmt.Sprintf("image format (%s)", strings.Join(sink.Formats, ", ")))
	cmd.Flags().IntVar(&f.size, "size", 0, "image side in pixels (default from the layout file)")
	cmd.Flags().IntVar(&f.detail, "detail", pipeline.DefaultDetail, "geodesic subdivision depth")
	cmd.Flags().BoolVar(&f.noEdges, "no-edges", false, "fill cells only")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the image cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

func (c *CLI) runScope(cmd *cobra.Command, path string, f scopeFlags) error {
	ctx := cmd.Context()
	format, err := sink.ParseFormat(stringFlag(cmd, "format", f.format, c.Config.Export.Format))
	if err != nil {
		return err
	}

	runner, err := c.newRunner(boolFlag(cmd, "no-cache", f.noCache, c.Config.Export.NoCache))
	if err != nil {
		return err
	}
	defer runner.Close()

	n, err := runner.Load(path)
	if err != nil {
		return err
	}

	size := intFlag(cmd, "size", f.size, c.Config.Export.SourceSize)
	if size <= 0 {
		size = n.SourceSize
	}
	spin := startSpinner(ctx, "Rendering scope...")
	pm, hit, err := runner.ScopeWithCacheInfo(ctx, n, pipeline.ScopeOptions{
		Size:    size,
		Detail:  intFlag(cmd, "detail", f.detail, c.Config.Export.Detail),
		NoEdges: f.noEdges,
		Refresh: f.refresh,
	})
	if err != nil {
		spin.Fail("Scope render failed")
		return err
	}
	spin.Stop()

	dir, stem := outputTarget(f.output, c.Config.Files.Prefix+"-scope", format.Ext())
	out, err := sink.WriteFile(dir, stem, pm, format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "write scope image")
	}

	printSuccess("Rendered %d cells at %dpx", n.Store.Len(), size)
	printStats(n.Store.Len(), 0, 0, hit)
	printFile(out)
	return nil
}

// outputTarget splits an output path into the directory and stem expected by
// sink.WriteFile. An empty path yields def in the working directory.
func outputTarget(output, def, ext string) (dir, stem string) {
	if output == "" {
		return ".", def
	}
	dir, file := filepath.Split(output)
	if dir == "" {
		dir = "."
	}
	return dir, strings.TrimSuffix(file, ext)
}

// =============================================================================
// forest
// =============================================================================

// forestFlags holds flags for the forest command.
type forestFlags struct {
	output   string
	format   string
	detailed bool
	tabs     bool
	noCache  bool
}

// forestCommand creates the forest command that draws the glue forest.
func (c *CLI) forestCommand() *cobra.Command {
	f := forestFlags{}

	cmd := &cobra.Command{
		Use:   "forest [layout-file]",
		Short: "Draw the glue forest as a node-link diagram",
		Long: `Draw which cell is glued to which: one tree per assembly, parents above
children. With --tabs, the edges that stay open are listed with their labels.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runForest(cmd, c.layoutArg(args), f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default <prefix>-forest.<fmt>)")
	cmd.Flags().StringVarP(&f.format, "format", "f", pipeline.ForestSVG, fmt.Sprintf("diagram format (%s)", strings.Join(pipeline.ForestFormats, ", ")))
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "show degree and position on every node")
	cmd.Flags().BoolVar(&f.tabs, "tabs", false, "annotate open edges with their tab labels")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the diagram cache")

	return cmd
}

func (c *CLI) runForest(cmd *cobra.Command, path string, f forestFlags) error {
	ctx := cmd.Context()
	if err := errors.ValidateFormat(f.format, pipeline.ForestFormats...); err != nil {
		return err
	}

	runner, err := c.newRunner(boolFlag(cmd, "no-cache", f.noCache, c.Config.Export.NoCache))
	if err != nil {
		return err
	}
	defer runner.Close()

	n, err := runner.Load(path)
	if err != nil {
		return err
	}

	data, err := runner.Forest(ctx, n, pipeline.ForestOptions{
		Format:   f.format,
		Detailed: f.detailed,
		Tabs:     f.tabs,
	})
	if err != nil {
		return err
	}

	out := f.output
	if out == "" {
		out = c.Config.Files.Prefix + "-forest." + f.format
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeSaveFailed, err, "write %s", out)
	}

	printSuccess("Drew %d cells in %d trees", n.Store.Len(), len(n.Store.Roots()))
	printFile(out)
	return nil
}
