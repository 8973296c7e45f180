// Package export renders parsed string tables to the CSV/UTF-16 form
// the UE localization pipeline imports.
package export

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dirondin/ue-tools/uasset"
)

// CSV renders a string table as CSV lines with a Key,SourceString
// header. Every field is quoted, matching the form UE's localization
// import expects; the trailing empty string yields a final newline.
func CSV(table uasset.StringTable) []string {
	out := make([]string, 0, len(table)+2)
	out = append(out, "Key,SourceString")
	for _, e := range table {
		out = append(out, fmt.Sprintf("\"%s\",\"%s\"", e.Key, e.Value))
	}
	out = append(out, "")
	return out
}

// WriteUTF16 writes lines to path as UTF-16 with a byte order mark,
// one line per element with LF endings.
func WriteUTF16(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: failed to create output file: %w", err)
	}

	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	w := transform.NewWriter(f, enc)
	for _, line := range lines {
		if _, err := w.Write([]byte(line + "\n")); err != nil {
			f.Close()
			return fmt.Errorf("export: failed to write output file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("export: failed to flush output file: %w", err)
	}
	return f.Close()
}
