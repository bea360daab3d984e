// Binary encoding for index blobs.
//
// The names map (the dominant blob) is stored as compact binary posting
// lists; the meta and files maps are small and stored as gob.
//
// Binary posting list format (little-endian):
//
//	nameCount: uint32
//	per name:
//	  keyLen:   uint16
//	  key:      [keyLen]byte
//	  refCount: uint32
//	  refs:     [refCount]× (FileID:uint32 + Line:uint32)
package bbolt

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"sort"

	"github.com/corey/ktags/internal/ports"
)

// refSize is the byte size of a single encoded TagRef (uint32 + uint32).
const refSize = 8

// encodePostingLists encodes a names map to compact binary format.
// Keys are sorted for deterministic output; a single buffer is pre-allocated.
func encodePostingLists(names map[string][]ports.TagRef) ([]byte, error) {
	totalSize := 4
	for key, refs := range names {
		totalSize += 2 + len(key) + 4 + len(refs)*refSize
	}

	buf := make([]byte, totalSize)
	offset := 0

	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(keys)))
	offset += 4

	for _, key := range keys {
		refs := names[key]

		if len(key) > 65535 {
			return nil, fmt.Errorf("name key too long: %d bytes", len(key))
		}
		binary.LittleEndian.PutUint16(buf[offset:], uint16(len(key)))
		offset += 2
		copy(buf[offset:], key)
		offset += len(key)

		binary.LittleEndian.PutUint32(buf[offset:], uint32(len(refs)))
		offset += 4
		for _, ref := range refs {
			binary.LittleEndian.PutUint32(buf[offset:], ref.FileID)
			offset += 4
			binary.LittleEndian.PutUint32(buf[offset:], ref.Line)
			offset += 4
		}
	}

	return buf, nil
}

// decodePostingLists decodes binary posting lists back to a names map.
// Every read is bounds-checked to avoid panics on corrupt data.
func decodePostingLists(data []byte) (map[string][]ports.TagRef, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("posting list too short: %d bytes", len(data))
	}

	offset := 0
	nameCount := binary.LittleEndian.Uint32(data[offset:])
	offset += 4

	names := make(map[string][]ports.TagRef, nameCount)

	for i := uint32(0); i < nameCount; i++ {
		if offset+2 > len(data) {
			return nil, fmt.Errorf("truncated at name %d key length (offset %d)", i, offset)
		}
		keyLen := int(binary.LittleEndian.Uint16(data[offset:]))
		offset += 2

		if offset+keyLen > len(data) {
			return nil, fmt.Errorf("truncated at name %d key (offset %d, need %d)", i, offset, keyLen)
		}
		key := string(data[offset : offset+keyLen])
		offset += keyLen

		if offset+4 > len(data) {
			return nil, fmt.Errorf("truncated at name %d ref count (offset %d)", i, offset)
		}
		refCount := binary.LittleEndian.Uint32(data[offset:])
		offset += 4

		refsBytes := int(refCount) * refSize
		if offset+refsBytes > len(data) {
			return nil, fmt.Errorf("truncated at name %d refs (offset %d, need %d)", i, offset, refsBytes)
		}

		refs := make([]ports.TagRef, refCount)
		for j := uint32(0); j < refCount; j++ {
			refs[j].FileID = binary.LittleEndian.Uint32(data[offset:])
			offset += 4
			refs[j].Line = binary.LittleEndian.Uint32(data[offset:])
			offset += 4
		}

		names[key] = refs
	}

	return names, nil
}

// encodeGob encodes a value using gob.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob decodes gob-encoded data into target. Target must be a pointer.
func decodeGob(data []byte, target interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(target)
}
