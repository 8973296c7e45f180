// Package gitblob fetches historical file contents from a git
// repository by shelling out to the user's git binary, so checkout
// filters and attributes apply the same way they do on disk.
package gitblob

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// RevisionLocal selects the working-tree copy instead of a git blob.
const RevisionLocal = "LOCAL"

// Read returns the contents of file at the given revision of the
// repository at workDir. file is relative to workDir; revision is any
// git revision spec, or RevisionLocal for the working-tree copy.
func Read(workDir, file, revision string) ([]byte, error) {
	if revision == RevisionLocal {
		data, err := os.ReadFile(filepath.Join(workDir, file))
		if err != nil {
			return nil, fmt.Errorf("gitblob: failed to read local file: %w", err)
		}
		return data, nil
	}

	// git wants forward slashes regardless of platform.
	posixFile := filepath.ToSlash(file)
	cmd := exec.Command("git", "cat-file", "--filters", fmt.Sprintf("%s:%s", revision, posixFile))
	cmd.Dir = workDir
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("gitblob: git cat-file %s:%s: %s", revision, posixFile, strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("gitblob: git cat-file %s:%s: %w", revision, posixFile, err)
	}
	return out, nil
}
