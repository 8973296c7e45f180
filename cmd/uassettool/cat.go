package main

import (
	"fmt"

	"github.com/dirondin/ue-tools/uasset"
	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "Print a StringTable asset",
	Long:  `Print every key/value entry of a StringTable asset in source order.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCat,
}

func runCat(cmd *cobra.Command, args []string) error {
	path := args[0]

	cprintln(fmt.Sprintf("Catting %q", path), colorCyan)

	table, err := uasset.ParseStringTableFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse string table: %w", err)
	}

	for _, e := range table {
		fmt.Fprintf(output, "%s = \"%s\"\n", colorize(e.Key, colorYellow), colorize(e.Value, colorGreen))
	}

	return nil
}
