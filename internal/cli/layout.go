package cli

import (
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/matzehuels/papernet/pkg/errors"
	papio "github.com/matzehuels/papernet/pkg/io"
	"github.com/matzehuels/papernet/pkg/netfile"
	"github.com/matzehuels/papernet/pkg/pipeline"
	"github.com/matzehuels/papernet/pkg/render/flat"
)

// layoutCommand creates the layout command that dumps a net as JSON.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output    string
		asComplex bool
	)

	cmd := &cobra.Command{
		Use:   "layout [layout-file]",
		Short: "Write the flat layout or the cell complex as JSON",
		Long: `Write the laid-out net as JSON: edge length, and per cell its parent,
centre, rotation, neighbours, flat vertices and tab labels.

With --complex, write the cell complex instead (neighbours and source-space
anchors), in the format accepted by "papernet import".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()
			n, err := runner.Load(c.layoutArg(args))
			if err != nil {
				return err
			}

			if asComplex {
				if output == "" {
					return papio.WriteComplex(os.Stdout, n.Store)
				}
				if err := papio.ExportComplex(n.Store, output); err != nil {
					return err
				}
				printFile(output)
				return nil
			}

			g, err := pipeline.Engine(n)
			if err != nil {
				return err
			}
			flat.AssignLabels(n.Store)
			if output == "" {
				return papio.WriteLayout(os.Stdout, g)
			}
			if err := papio.ExportLayout(g, output); err != nil {
				return err
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&asComplex, "complex", false, "write the cell complex instead of the layout")

	return cmd
}

// importCommand creates the import command that starts a net from a complex.
func (c *CLI) importCommand() *cobra.Command {
	var (
		output string
		edge   float64
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "import <complex.json>",
		Short: "Create a layout file from a cell complex",
		Long: `Read a cell complex as JSON and write a new layout file. Each cell is
glued to its lowest-numbered earlier neighbour and the forest is centred on
the canvas; arrange it with "papernet edit".`,
		Example: `  papernet import tiling.json
  papernet import tiling.json -o net.txt --edge 30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stringFlag(cmd, "output", output, c.Config.Files.Layout)
			if err := errors.ValidatePath(out); err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(out); err == nil {
					return errors.New(errors.ErrCodeInvalidInput, "%s exists; use --force to overwrite", out)
				}
			}

			store, err := papio.ImportComplex(args[0])
			if err != nil {
				return err
			}
			params := netfile.DefaultParams()
			if edge > 0 {
				params.EdgeLength = edge
			}
			store.SeedForest(gg.Point{X: float64(params.CanvasW) / 2, Y: float64(params.CanvasH) / 2})
			n := netfile.New(params, store)
			if err := n.Validate(); err != nil {
				return err
			}
			if err := netfile.Save(out, n); err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Debug("imported complex", "source", args[0], "cells", store.Len())
			printSuccess("Created net with %d cells", store.Len())
			printFile(out)
			printNextStep("Arrange it", "papernet edit "+out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", netfile.DefaultPath, "layout file to create")
	cmd.Flags().Float64Var(&edge, "edge", 0, "flat side length of every cell")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing layout file")

	return cmd
}
