package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/papernet/pkg/netfile"
	"github.com/matzehuels/papernet/pkg/pipeline"
	"github.com/matzehuels/papernet/pkg/render/flat"
	"github.com/matzehuels/papernet/pkg/topology"
)

// infoCommand creates the info command that summarizes a layout file.
func (c *CLI) infoCommand() *cobra.Command {
	var cellsTable bool

	cmd := &cobra.Command{
		Use:   "info [layout-file]",
		Short: "Summarize a layout file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.layoutArg(args)
			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()
			n, err := runner.Load(path)
			if err != nil {
				return err
			}
			if _, err := pipeline.Engine(n); err != nil {
				return err
			}
			tabs := flat.AssignLabels(n.Store)

			fmt.Fprintln(stdout, StyleTitle.Render(path))
			printKeyValue("cells", strconv.Itoa(n.Store.Len()))
			printKeyValue("assemblies", strconv.Itoa(len(n.Store.Roots())))
			printKeyValue("tabs", strconv.Itoa(tabs))
			printKeyValue("edge", strconv.FormatFloat(n.EdgeLength, 'f', 2, 64))
			printKeyValue("canvas", fmt.Sprintf("%dx%d ×%d", n.CanvasW, n.CanvasH, n.Scale))
			printKeyValue("pages", fmt.Sprintf("%dx%d", n.PagesX, n.PagesY))
			printKeyValue("source", fmt.Sprintf("%dpx", n.SourceSize))
			if cellsTable {
				fmt.Fprintln(stdout)
				fmt.Fprintln(stdout, cellTable(n))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&cellsTable, "cells", false, "list every cell")

	return cmd
}

// cellTable renders one row per cell. Roots are highlighted.
func cellTable(n *netfile.Net) string {
	s := n.Store
	rows := make([][]string, 0, s.Len())
	for i, cell := range s.Cells() {
		parent := "root"
		if !cell.IsRoot() {
			parent = strconv.Itoa(cell.Parent)
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(cell.Degree()),
			parent,
			joinInts(cell.Neighbors),
			fmt.Sprintf("%.1f, %.1f", cell.Center.X, cell.Center.Y),
			fmt.Sprintf("%.0f°", cell.Rotation*180/math.Pi),
			tabLabels(cell),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Cell", "Deg", "Parent", "Neighbours", "Centre", "Rot", "Tabs").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < s.Len() && s.Cell(row).IsRoot() {
				return lipgloss.NewStyle().Foreground(colorGreen)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		if x == topology.None {
			parts[i] = "-"
			continue
		}
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}

func tabLabels(cell *topology.Cell) string {
	var parts []string
	for _, l := range cell.Labels {
		if l != topology.None {
			parts = append(parts, flat.Symbol(l))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
