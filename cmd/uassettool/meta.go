package main

import (
	"fmt"

	"github.com/dirondin/ue-tools/uasset"
	"github.com/spf13/cobra"
)

var metaCmd = &cobra.Command{
	Use:   "meta <file>",
	Short: "Display asset header metadata",
	Long:  `Display the header metadata of a .uasset file: serializer versions, asset type, data offset, path and GUID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runMeta,
}

func runMeta(cmd *cobra.Command, args []string) error {
	path := args[0]

	cprintln(fmt.Sprintf("Getting meta for %q", path), colorCyan)

	meta, err := uasset.ParseMetaFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse asset: %w", err)
	}

	cprintln(fmt.Sprintf("File version:    %d", meta.FileVersion), colorGreen)
	cprintln(fmt.Sprintf("License version: %d", meta.LicenseVersion), colorGreen)
	cprintln(fmt.Sprintf("Engine version:  %d", meta.EngineVersion), colorGreen)
	cprintln(fmt.Sprintf("Cook version:    %d", meta.CookVersion), colorGreen)
	cprintln(fmt.Sprintf("Asset type:      %d", meta.AssetType), colorGreen)
	cprintln(fmt.Sprintf("Data offset:     %d", meta.DataOffset), colorGreen)
	cprintln(fmt.Sprintf("Folder path:     %s", meta.Path), colorGreen)
	cprintln(fmt.Sprintf("Asset GUID:      %s", meta.AssetGUID), colorGreen)

	return nil
}
