package main

import (
	"fmt"
	"os"

	"github.com/deploymenttheory/go-fdt/fdt"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var statCmd = &cobra.Command{
	Use:   "stat <blob> [path]",
	Short: "Show child/property/sibling counts for a node (default: every node)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := openParser(args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Name", "Children", "Properties", "Siblings"})

		if len(args) == 2 {
			n := p.Find(args[1])
			if n == nil {
				return fmt.Errorf("path %q not found", args[1])
			}
			appendStatRow(t, p, n)
		} else {
			p.Walk(nil, func(n *fdt.Node) bool {
				appendStatRow(t, p, n)
				return true
			})
		}

		t.Render()
		return nil
	},
}

func appendStatRow(t table.Writer, p *fdt.Parser, n *fdt.Node) {
	s := p.Stat(n)
	t.AppendRow(table.Row{s.Name, s.ChildCount, s.PropCount, s.SiblingCount})
}

func init() {
	rootCmd.AddCommand(statCmd)
}
