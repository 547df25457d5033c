package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <blob> <path>",
	Short: "Look up a node by path and print its properties",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cleanup, err := openParser(args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		n := p.Find(args[1])
		if n == nil {
			return fmt.Errorf("path %q not found", args[1])
		}
		printNode(p, n, 0)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
