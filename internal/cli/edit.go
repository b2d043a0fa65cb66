package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/papernet/internal/window"
	"github.com/matzehuels/papernet/pkg/buildinfo"
	"github.com/matzehuels/papernet/pkg/editor"
	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/fonts"
	"github.com/matzehuels/papernet/pkg/netfile"
)

// statusFontSize is the editor status line size in canvas pixels.
const statusFontSize = 14

// editOptions holds flags for the edit command.
type editOptions struct {
	saveTo string
	zoom   int
	tps    int
}

// editCommand creates the edit command for arranging a net interactively.
func (c *CLI) editCommand() *cobra.Command {
	opts := editOptions{}

	cmd := &cobra.Command{
		Use:   "edit [layout-file]",
		Short: "Arrange the net in an interactive window",
		Long: `Open the layout in a window and arrange it by hand.

Controls:
  drag            move the assembly under the pointer
  PageUp/PageDown rotate the selected assembly
  z / x           shrink / grow every cell
  g               glue or unglue the highlighted edge
  q, Esc, F10     save and quit`,
		Example: `  papernet edit
  papernet edit net.txt --save-to arranged.txt --zoom 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.saveTo = stringFlag(cmd, "save-to", opts.saveTo, "")
			opts.zoom = intFlag(cmd, "zoom", opts.zoom, c.Config.Editor.Zoom)
			opts.tps = intFlag(cmd, "tps", opts.tps, c.Config.Editor.TPS)
			return c.runEdit(cmd, c.layoutArg(args), opts)
		},
	}

	cmd.Flags().StringVar(&opts.saveTo, "save-to", "", "save the layout here instead of over the input")
	cmd.Flags().IntVar(&opts.zoom, "zoom", 1, "window pixels per canvas pixel")
	cmd.Flags().IntVar(&opts.tps, "tps", 60, "editor frames per second")

	return cmd
}

func (c *CLI) runEdit(cmd *cobra.Command, path string, opts editOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	n, err := netfile.Load(path)
	if err != nil && !errors.Is(err, errors.ErrCodeNothingToLoad) {
		return err
	}
	if err != nil || !n.Created || n.Store.Len() == 0 {
		printWarning("Nothing to load from %s", path)
		printNextStep("Create a net first", "papernet import complex.json")
		return nil
	}

	saveTo := opts.saveTo
	if saveTo == "" {
		saveTo = c.Config.saveTo(path)
	}
	if err := errors.ValidatePath(saveTo); err != nil {
		return err
	}

	face, err := fonts.Face(statusFontSize)
	if err != nil {
		return err
	}

	ed, err := editor.New(n,
		editor.WithLogger(logger),
		editor.WithFace(face),
		editor.WithSpeeds(c.Config.Editor.RotateSpeed, c.Config.Editor.ScaleSpeed),
		editor.WithPersist(func(n *netfile.Net) error {
			return netfile.Save(saveTo, n)
		}),
	)
	if err != nil {
		return err
	}

	logger.Info("editing", "layout", path, "cells", n.Store.Len(), "save_to", saveTo)
	if err := window.Run(ctx, ed, window.Options{
		Title:  appName + " " + buildinfo.Short(),
		Zoom:   opts.zoom,
		TPS:    opts.tps,
		Logger: logger,
	}); err != nil {
		return err
	}

	printSuccess("Saved layout")
	printFile(saveTo)
	return nil
}
