package main

import (
	"fmt"

	"github.com/dirondin/ue-tools/uasset"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <first-file> <second-file>",
	Short: "Compare two StringTable assets",
	Long:  `Compare two StringTable assets by key and report changed, removed and added entries.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	fileA, fileB := args[0], args[1]

	cprintln(fmt.Sprintf("Comparing %q -> %q", fileA, fileB), colorCyan)
	printLegend()

	tableA, err := uasset.ParseStringTableFile(fileA)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", fileA, err)
	}
	tableB, err := uasset.ParseStringTableFile(fileB)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", fileB, err)
	}

	printChanges(uasset.Diff(tableA, tableB))
	return nil
}

func printLegend() {
	cprintln("Legend: ! = different, - = only in first, + = only in second", colorCyan)
}

func printChanges(changes []uasset.Change) {
	for _, c := range changes {
		switch c.Kind {
		case uasset.Changed:
			cprintln(fmt.Sprintf("!: %s = \"%s\" != \"%s\"", c.Key, c.OldValue, c.NewValue), colorYellow)
		case uasset.Removed:
			cprintln(fmt.Sprintf("-: %s = \"%s\"", c.Key, c.OldValue), colorRed)
		case uasset.Added:
			cprintln(fmt.Sprintf("+: %s = \"%s\"", c.Key, c.NewValue), colorGreen)
		}
	}
}
