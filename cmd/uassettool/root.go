package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	outputFile string
	output     io.Writer
)

var rootCmd = &cobra.Command{
	Use:   "uassettool",
	Short: "UE StringTable asset toolkit",
	Long: `uassettool is a command-line tool for inspecting Unreal Engine
.uasset files outside the editor.

It can display asset header metadata, print and search StringTable
assets, convert them to UTF-16 CSV, and compare them between files or
git revisions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = os.Stdout
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&colorizeOutput, "colorize", false, "colorize output with ANSI escapes")

	rootCmd.AddCommand(metaCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(compareGitCmd)
}
