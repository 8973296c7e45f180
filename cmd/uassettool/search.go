package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dirondin/ue-tools/uasset"
	"github.com/spf13/cobra"
)

var (
	searchIgnoreCase  bool
	searchValuesOnly  bool
	searchIncludeKeys []string
	searchExcludeKeys []string
)

var searchCmd = &cobra.Command{
	Use:   "search <path> <pattern>",
	Short: "Search StringTable assets by regex",
	Long: `Search the keys and values of one StringTable asset, or of every
.uasset file in a directory, for a regex pattern. Files that fail to
parse are reported and skipped.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchIgnoreCase, "ignore-case", false, "case-insensitive matching")
	searchCmd.Flags().BoolVar(&searchValuesOnly, "search-only-values", false, "match the pattern against values only")
	searchCmd.Flags().StringSliceVar(&searchIncludeKeys, "include-keys", nil, "only search entries whose key matches one of these patterns")
	searchCmd.Flags().StringSliceVar(&searchExcludeKeys, "exclude-keys", nil, "skip entries whose key matches one of these patterns")
}

func runSearch(cmd *cobra.Command, args []string) error {
	path, pattern := args[0], args[1]

	cprintln(fmt.Sprintf("Searching %q in %q (ignore case = %v, search only in values = %v, exclude keys = %v, include keys = %v)",
		pattern, path, searchIgnoreCase, searchValuesOnly, searchExcludeKeys, searchIncludeKeys), colorCyan)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !info.IsDir() {
		return searchInFile(path, pattern)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".uasset") {
			continue
		}
		// One malformed file must not abort the batch.
		if err := searchInFile(filepath.Join(path, entry.Name()), pattern); err != nil {
			cprintln(fmt.Sprintf("Error while parsing file %q: %v", filepath.Join(path, entry.Name()), err), colorRed)
		}
	}
	return nil
}

func searchInFile(file, pattern string) error {
	table, err := uasset.ParseStringTableFile(file)
	if err != nil {
		return err
	}

	results, err := uasset.Search(table, pattern, uasset.SearchOptions{
		IgnoreCase:  searchIgnoreCase,
		ValuesOnly:  searchValuesOnly,
		IncludeKeys: searchIncludeKeys,
		ExcludeKeys: searchExcludeKeys,
	})
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}

	highlight := pattern
	if searchIgnoreCase {
		highlight = "(?i)" + highlight
	}
	re, err := regexp.Compile(highlight)
	if err != nil {
		return err
	}

	cprintln(fmt.Sprintf("Results in %q:", file), colorYellow)
	for _, e := range results {
		key := e.Key
		if !searchValuesOnly {
			key = colorizePattern(key, re, colorGreen)
		}
		fmt.Fprintf(output, "  %s = \"%s\"\n", key, colorizePattern(e.Value, re, colorGreen))
	}
	return nil
}
