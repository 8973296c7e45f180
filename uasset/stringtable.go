package uasset

import (
	"fmt"
	"os"

	"github.com/dirondin/ue-tools/internal/cursor"
)

// Payload layout constants, determined empirically.
const (
	payloadHeaderSkip = 28 // fixed payload header before the GUID
	postGUIDSkip      = 12 // unrelated fields between GUID and table name
)

// Entry is one key/value pair of a string table.
type Entry struct {
	Key   string
	Value string
}

// StringTable is the ordered sequence of entries of one StringTable
// asset. Entries keep their source order and duplicate keys are not
// collapsed; downstream diffing relies on positional order.
type StringTable []Entry

// ParseStringTable decodes the string table payload of a .uasset
// buffer. The asset must be of the StringTable subtype and the GUID
// embedded in the payload must match the header GUID. On any failure
// no entries are returned.
func ParseStringTable(data []byte) (StringTable, error) {
	r := cursor.NewReader(data)
	if err := validate(r); err != nil {
		return nil, &ParseError{Offset: r.Offset(), Message: "validating magic signature", Err: err}
	}
	meta, err := readMeta(r)
	if err != nil {
		return nil, &ParseError{Offset: r.Offset(), Message: "resolving asset header", Err: err}
	}
	table, err := readStringTable(r, meta)
	if err != nil {
		return nil, &ParseError{Offset: r.Offset(), Message: "decoding string table", Err: err}
	}
	return table, nil
}

// ParseStringTableFile decodes the string table of a .uasset file on
// disk.
func ParseStringTableFile(path string) (StringTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("uasset: failed to read file: %w", err)
	}
	return ParseStringTable(data)
}

func readStringTable(r *cursor.Reader, meta *Meta) (StringTable, error) {
	if !meta.IsStringTable() {
		return nil, fmt.Errorf("%w: asset type %d", ErrUnsupportedAssetType, meta.AssetType)
	}

	if err := r.SetOffset(int(meta.DataOffset)); err != nil {
		return nil, err
	}
	if err := r.Skip(payloadHeaderSkip); err != nil {
		return nil, err
	}

	guid, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	if guid != meta.AssetGUID {
		// Strong signal of a wrong data offset or an unsupported layout.
		return nil, fmt.Errorf("%w: header %q, payload %q", ErrGUIDMismatch, meta.AssetGUID, guid)
	}

	if err := r.Skip(postGUIDSkip); err != nil {
		return nil, err
	}
	if _, err := r.ReadString(); err != nil { // table name, unused
		return nil, err
	}

	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}

	// count is trusted from the buffer; a corrupt value fails through
	// the cursor's bounds checks, so no capacity is reserved up front.
	var table StringTable
	for i := int32(0); i < count; i++ {
		key, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		value, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		table = append(table, Entry{Key: key, Value: value})
	}
	return table, nil
}
