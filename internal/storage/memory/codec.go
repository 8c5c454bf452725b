package memory

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/yndnr/keyval-go/internal/core/domain"
)

// FormatVersion is the snapshot format written by Encode.
const FormatVersion = 1

const (
	fieldFormatVersion protowire.Number = 1
	fieldEntries       protowire.Number = 2

	fieldEntryKey   protowire.Number = 1
	fieldEntryValue protowire.Number = 2
)

// Encode serializes the store. The output is deterministic: entries are
// written in ascending key order and the format version is always present,
// so even an empty store encodes to a non-empty buffer.
func Encode(s *Store) []byte {
	keys := s.Keys()

	b := make([]byte, 0, encodedSizeHint(s))
	b = protowire.AppendTag(b, fieldFormatVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, FormatVersion)

	var entry []byte
	for _, k := range keys {
		entry = entry[:0]
		entry = protowire.AppendTag(entry, fieldEntryKey, protowire.BytesType)
		entry = protowire.AppendString(entry, k)
		entry = protowire.AppendTag(entry, fieldEntryValue, protowire.BytesType)
		entry = protowire.AppendString(entry, s.entries[k])

		b = protowire.AppendTag(b, fieldEntries, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b
}

// Decode parses bytes produced by Encode.
//
// It fails with domain.ErrSnapshotDecode on empty input, truncated or
// malformed wire data, or a missing or unsupported format version. Keys
// and values are taken byte for byte, so any string Encode wrote decodes
// back unchanged, valid UTF-8 or not. A key that appears more than once
// keeps its last value.
func Decode(data []byte) (*Store, error) {
	if len(data) == 0 {
		return nil, domain.ErrSnapshotDecode.WithDetails("0 bytes read")
	}

	s := New()
	var (
		version    uint64
		hasVersion bool
	)

	b := data
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, decodeError("tag", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldFormatVersion && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, decodeError("format_version", protowire.ParseError(n))
			}
			version, hasVersion = v, true
			b = b[n:]

		case num == fieldEntries && typ == protowire.BytesType:
			raw, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, decodeError("entries", protowire.ParseError(n))
			}
			k, v, err := decodeEntry(raw)
			if err != nil {
				return nil, err
			}
			s.entries[k] = v
			b = b[n:]

		case num == fieldFormatVersion || num == fieldEntries:
			return nil, domain.ErrSnapshotDecode.WithDetails(
				fmt.Sprintf("field %d has wire type %d", num, typ))

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, decodeError(fmt.Sprintf("field %d", num), protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if !hasVersion {
		return nil, domain.ErrSnapshotDecode.WithDetails("missing format version")
	}
	if version != FormatVersion {
		return nil, domain.ErrSnapshotDecode.WithDetails(
			fmt.Sprintf("unsupported format version %d", version))
	}
	return s, nil
}

func decodeEntry(b []byte) (key, value string, err error) {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return "", "", decodeError("entry tag", protowire.ParseError(n))
		}
		b = b[n:]

		if (num == fieldEntryKey || num == fieldEntryValue) && typ == protowire.BytesType {
			raw, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return "", "", decodeError("entry field", protowire.ParseError(n))
			}
			if num == fieldEntryKey {
				key = string(raw)
			} else {
				value = string(raw)
			}
			b = b[n:]
			continue
		}
		if num == fieldEntryKey || num == fieldEntryValue {
			return "", "", domain.ErrSnapshotDecode.WithDetails(
				fmt.Sprintf("entry field %d has wire type %d", num, typ))
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return "", "", decodeError("entry field", protowire.ParseError(n))
		}
		b = b[n:]
	}
	return key, value, nil
}

func decodeError(what string, cause error) error {
	return domain.ErrSnapshotDecode.WithDetails(what).WithCause(cause)
}

func encodedSizeHint(s *Store) int {
	size := 2
	for k, v := range s.entries {
		size += len(k) + len(v) + 8
	}
	return size
}
