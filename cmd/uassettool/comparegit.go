package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dirondin/ue-tools/internal/gitblob"
	"github.com/dirondin/ue-tools/uasset"
	"github.com/spf13/cobra"
)

var compareGitCmd = &cobra.Command{
	Use:   "compare-git <repo-dir> <file> <revision-A> <revision-B>",
	Short: "Compare a StringTable asset between git revisions",
	Long: `Compare a StringTable asset between two git revisions of the
repository at repo-dir. Use LOCAL as a revision to compare against the
working-tree copy. When file is a directory, every .uasset file in it
is compared.`,
	Args: cobra.ExactArgs(4),
	RunE: runCompareGit,
}

func runCompareGit(cmd *cobra.Command, args []string) error {
	workDir, file, revA, revB := args[0], args[1], args[2], args[3]

	info, err := os.Stat(file)
	if err == nil && info.IsDir() {
		entries, err := os.ReadDir(file)
		if err != nil {
			return fmt.Errorf("failed to read directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".uasset") {
				continue
			}
			path := filepath.Join(file, entry.Name())
			// One malformed file must not abort the batch.
			if err := compareGitFile(workDir, path, revA, revB); err != nil {
				cprintln(fmt.Sprintf("Error while comparing %q: %v", path, err), colorRed)
			}
		}
		return nil
	}

	return compareGitFile(workDir, file, revA, revB)
}

func compareGitFile(workDir, file, revA, revB string) error {
	cprintln(fmt.Sprintf("Comparing %q in %q (revision A = %q, revision B = %q)", file, workDir, revA, revB), colorCyan)
	printLegend()

	tableA, err := readRevision(workDir, file, revA)
	if err != nil {
		return err
	}
	tableB, err := readRevision(workDir, file, revB)
	if err != nil {
		return err
	}

	printChanges(uasset.Diff(tableA, tableB))
	return nil
}

func readRevision(workDir, file, revision string) (uasset.StringTable, error) {
	data, err := gitblob.Read(workDir, file, revision)
	if err != nil {
		return nil, err
	}
	return uasset.ParseStringTable(data)
}
