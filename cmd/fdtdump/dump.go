package main

import (
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-fdt/fdt"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <blob>",
	Short: "Print the full device tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := openParser(args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		printNode(p, p.Root(), 0)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func printNode(p *fdt.Parser, n *fdt.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	name := n.Name()
	if name == "" && depth == 0 {
		name = "/"
	}
	fmt.Printf("%s%s\n", indent, color.New(color.FgCyan, color.Bold).Sprint(name))

	for i := 0; ; i++ {
		pr := n.Prop(i)
		if pr == nil {
			break
		}
		fmt.Printf("%s  %s = %d bytes (%s)\n", indent,
			color.New(color.FgYellow).Sprint(pr.Name()),
			pr.Len(), humanize.Bytes(uint64(pr.Len())))
	}

	for c := n.Child(); c != nil; c = c.Sibling() {
		printNode(p, c, depth+1)
	}
}
