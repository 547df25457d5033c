// Command fdtdump is the demonstration driver spec section 1 calls out
// as an external collaborator of the core: it memory-maps an FDT blob
// file and prints its tree. It is not part of the parser core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose   bool
	quiet     bool
	arenaSize int
)

var rootCmd = &cobra.Command{
	Use:   "fdtdump",
	Short: "Inspect Flattened Device Tree (FDT) blobs",
	Long: `fdtdump is a read-only command-line tool for exploring Flattened
Device Tree blobs: dump the tree, look up a path, or show node/property
statistics.

Examples:
  fdtdump dump board.dtb
  fdtdump find board.dtb /soc/serial
  fdtdump stat board.dtb /cpus`,
	Version: "0.1.0-dev",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().IntVar(&arenaSize, "arena-size", 0, "use a fixed-size static arena of this many bytes instead of dynamic allocation (0 = dynamic)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("arena-size", rootCmd.PersistentFlags().Lookup("arena-size"))
	viper.SetEnvPrefix("FDTDUMP")
	viper.AutomaticEnv()
}

func main() {
	Execute()
}
