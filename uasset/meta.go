package uasset

import (
	"fmt"
	"os"

	"github.com/dirondin/ue-tools/internal/cursor"
)

// Magic is the signature every .uasset file starts with.
const Magic uint32 = 0x9E2A83C1

// AssetTypeStringTable is the asset type discriminator for
// StringTable assets, the only payload this package decodes.
const AssetTypeStringTable uint32 = 1

const (
	// legacyFileVersion selects the alternate header layout.
	legacyFileVersion int32 = -8

	// headerAnchor is the known int32 literal marking the fixed-width
	// header segment that precedes the data offset and path fields.
	headerAnchor int32 = 40
)

// headerLayout identifies which of the two known header layouts a file
// uses. The format carries no field tags, so the layout is inferred
// once from the serializer version and every rewind branch keys off it.
type headerLayout int

const (
	generalLayout headerLayout = iota
	legacyLayout
)

func layoutFor(fileVersion int32) headerLayout {
	if fileVersion == legacyFileVersion {
		return legacyLayout
	}
	return generalLayout
}

// Meta is the header summary of one asset. It is constructed once per
// parse and never mutated.
type Meta struct {
	FileVersion    int32  // serializer version tag
	LicenseVersion uint32
	EngineVersion  uint32
	CookVersion    uint32
	AssetType      uint32 // asset subtype discriminator
	DataOffset     uint32 // absolute offset of the subtype payload
	Path           string // container-relative path
	AssetGUID      string // re-validated against the payload copy
}

// IsStringTable reports whether the asset payload is a StringTable.
func (m *Meta) IsStringTable() bool {
	return m.AssetType == AssetTypeStringTable
}

// ParseMeta parses the header of a .uasset buffer.
func ParseMeta(data []byte) (*Meta, error) {
	r := cursor.NewReader(data)
	if err := validate(r); err != nil {
		return nil, &ParseError{Offset: r.Offset(), Message: "validating magic signature", Err: err}
	}
	meta, err := readMeta(r)
	if err != nil {
		return nil, &ParseError{Offset: r.Offset(), Message: "resolving asset header", Err: err}
	}
	return meta, nil
}

// ParseMetaFile parses the header of a .uasset file on disk.
func ParseMetaFile(path string) (*Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("uasset: failed to read file: %w", err)
	}
	return ParseMeta(data)
}

// validate checks the magic signature and rewinds the reader so
// subsequent parsing starts from the beginning of the buffer.
func validate(r *cursor.Reader) error {
	magic, err := r.ReadU32()
	if err != nil {
		return err
	}
	if magic != Magic {
		return ErrNotUAsset
	}
	r.Reset()
	return nil
}

// readMeta walks the version-dependent header layout. The field order
// and the two rewind branches were determined empirically; values of
// file_version outside the two known layouts yield undefined field
// extraction.
func readMeta(r *cursor.Reader) (*Meta, error) {
	if err := r.Skip(4); err != nil { // magic
		return nil, err
	}
	fileVersion, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	licenseVersion, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	engineVersion, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	layout := layoutFor(fileVersion)

	cookVersion, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if cookVersion == 0 && layout == generalLayout {
		// The general layout has no cook version field; the zero just
		// read belongs to the next field.
		if err := r.Skip(-4); err != nil {
			return nil, err
		}
	}

	if err := r.Skip(4); err != nil {
		return nil, err
	}
	assetType, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	anchor := r.FindI32(headerAnchor)
	if anchor < 0 {
		return nil, ErrAnchorNotFound
	}
	if err := r.SetOffset(anchor + 1); err != nil {
		return nil, err
	}
	if r.FindI32(headerAnchor) >= 0 {
		return nil, fmt.Errorf("%w: ambiguous anchor match", ErrAnchorNotFound)
	}
	if err := r.SetOffset(anchor + 4); err != nil {
		return nil, err
	}

	dataOffset, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	path, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(12); err != nil {
		return nil, err
	}

	probe, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if probe == 0 {
		// An extra field precedes the GUID in this layout.
		if err := r.Skip(4); err != nil {
			return nil, err
		}
	} else {
		if err := r.Skip(-4); err != nil {
			return nil, err
		}
	}

	assetGUID, err := r.ReadString()
	if err != nil {
		return nil, err
	}

	// Leave the buffer ready for an independent payload parse.
	r.Reset()

	return &Meta{
		FileVersion:    fileVersion,
		LicenseVersion: licenseVersion,
		EngineVersion:  engineVersion,
		CookVersion:    cookVersion,
		AssetType:      assetType,
		DataOffset:     dataOffset,
		Path:           path,
		AssetGUID:      assetGUID,
	}, nil
}
