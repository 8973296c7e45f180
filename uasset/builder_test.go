package uasset

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// testAsset describes a synthetic .uasset buffer. The builder lays the
// fields out exactly the way the header heuristic walks them, so tests
// can round-trip through both known layouts.
type testAsset struct {
	fileVersion    int32
	licenseVersion uint32
	engineVersion  uint32

	// cookPresent controls whether a cook version field exists in the
	// header. When false the four bytes after the engine version are
	// the layout padding (read as zero and rewound by the parser).
	cookPresent bool
	cookVersion uint32

	assetType uint32
	path      string
	guid      string

	// probePresent controls the optional field between the header
	// padding and the GUID (signalled by a zero probe value).
	probePresent bool

	tableName string
	entries   []Entry
	wideText  bool // encode entry strings as UTF-16

	// payloadGUID overrides the GUID written into the payload region.
	payloadGUID string
	// countOverride, when non-zero, replaces the entry count written
	// into the payload.
	countOverride int32
}

// built is a synthetic buffer plus the offsets tests need to corrupt
// specific fields.
type built struct {
	data         []byte
	anchorOffset int
	dataOffset   int
}

func buildAsset(a testAsset) built {
	filler := func(b *bytes.Buffer, n int) {
		for i := 0; i < n; i++ {
			b.WriteByte(0xFF)
		}
	}

	var head bytes.Buffer
	writeU32(&head, Magic)
	writeI32(&head, a.fileVersion)
	writeU32(&head, a.licenseVersion)
	writeU32(&head, a.engineVersion)
	if a.cookPresent {
		writeU32(&head, a.cookVersion)
		filler(&head, 4)
	} else {
		writeU32(&head, 0) // read as cook, rewound, then skipped as padding
	}
	writeU32(&head, a.assetType)
	anchorOffset := head.Len()
	writeI32(&head, headerAnchor)

	var rest bytes.Buffer
	writeString(&rest, a.path, false)
	filler(&rest, 12)
	if a.probePresent {
		writeI32(&rest, 0)
		filler(&rest, 4)
	}
	writeString(&rest, a.guid, false)

	dataOffset := head.Len() + 4 + rest.Len()

	var payload bytes.Buffer
	filler(&payload, payloadHeaderSkip)
	payloadGUID := a.guid
	if a.payloadGUID != "" {
		payloadGUID = a.payloadGUID
	}
	writeString(&payload, payloadGUID, false)
	filler(&payload, postGUIDSkip)
	writeString(&payload, a.tableName, false)
	count := int32(len(a.entries))
	if a.countOverride != 0 {
		count = a.countOverride
	}
	writeI32(&payload, count)
	for _, e := range a.entries {
		writeString(&payload, e.Key, a.wideText)
		writeString(&payload, e.Value, a.wideText)
	}

	var buf bytes.Buffer
	buf.Write(head.Bytes())
	writeU32(&buf, uint32(dataOffset))
	buf.Write(rest.Bytes())
	buf.Write(payload.Bytes())

	return built{data: buf.Bytes(), anchorOffset: anchorOffset, dataOffset: dataOffset}
}

func writeU32(b *bytes.Buffer, v uint32) {
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], v)
	b.Write(raw[:])
}

func writeI32(b *bytes.Buffer, v int32) {
	writeU32(b, uint32(v))
}

// writeString encodes a UE length-prefixed, NUL-terminated string.
func writeString(b *bytes.Buffer, s string, wide bool) {
	if wide {
		units := utf16.Encode([]rune(s + "\x00"))
		writeI32(b, int32(-len(units)))
		for _, u := range units {
			b.WriteByte(byte(u))
			b.WriteByte(byte(u >> 8))
		}
		return
	}
	writeI32(b, int32(len(s)+1))
	b.WriteString(s)
	b.WriteByte(0)
}
