package main

import (
	"fmt"

	"github.com/dirondin/ue-tools/internal/export"
	"github.com/dirondin/ue-tools/uasset"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input-file> <output-file>",
	Short: "Convert a StringTable asset to UTF-16 CSV",
	Long: `Convert a StringTable asset to a CSV file with a Key,SourceString
header, encoded as UTF-16 the way the UE localization import expects.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	fileIn, fileOut := args[0], args[1]

	cprintln(fmt.Sprintf("Converting %q -> %q", fileIn, fileOut), colorCyan)

	table, err := uasset.ParseStringTableFile(fileIn)
	if err != nil {
		return fmt.Errorf("failed to parse string table: %w", err)
	}

	if err := export.WriteUTF16(fileOut, export.CSV(table)); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	return nil
}
