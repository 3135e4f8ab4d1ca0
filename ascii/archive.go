package ascii

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Archive layout:
//
//	magic    [4]byte "PFAR"
//	version  uint8
//	kind     uint8   (kindIcons | kindSchemes)
//	length   uint32  payload length, little endian
//	checksum uint32  CRC-32 (IEEE) of the payload, little endian
//	payload  [length]byte
//
// Payload integers are uvarints, strings are a uvarint length followed by
// UTF-8 bytes, colors are a kind byte followed by 1 or 3 bytes.
const (
	archiveMagic   = "PFAR"
	archiveVersion = 1
	headerSize     = 4 + 1 + 1 + 4 + 4

	kindIcons   = 1
	kindSchemes = 2
)

// EncodeIcons serializes compiled icons. It refuses icons whose segments
// point outside their palette, so a valid archive never holds one.
func EncodeIcons(icons []IconAsset) ([]byte, error) {
	var w archiveWriter
	w.putUvarint(uint64(len(icons)))
	for _, icon := range icons {
		if err := icon.validate(); err != nil {
			return nil, errors.Wrap(ErrInvalidAsset, err.Error())
		}
		w.putUvarint(uint64(len(icon.Aliases)))
		for _, a := range icon.Aliases {
			w.putString(a)
		}
		w.putColors(icon.Palette)
		w.putUint16(icon.Width)
		w.putUvarint(uint64(len(icon.Segments)))
		for _, s := range icon.Segments {
			w.buf.WriteByte(s.Index)
			w.putString(s.Text)
		}
	}
	return seal(kindIcons, w.buf.Bytes()), nil
}

// EncodeSchemes serializes color schemes in the given order.
func EncodeSchemes(schemes []Scheme) ([]byte, error) {
	var w archiveWriter
	w.putUvarint(uint64(len(schemes)))
	for _, s := range schemes {
		if s.Name == "" || len(s.Colors) == 0 {
			return nil, errors.Wrapf(ErrInvalidAsset, "scheme %q is empty", s.Name)
		}
		w.putString(s.Name)
		w.putColors(s.Colors)
	}
	return seal(kindSchemes, w.buf.Bytes()), nil
}

// DecodeIcons validates and decodes an icon archive.
func DecodeIcons(data []byte) ([]IconAsset, error) {
	payload, err := unseal(kindIcons, data)
	if err != nil {
		return nil, err
	}
	r := archiveReader{buf: payload}
	n := r.count()
	icons := make([]IconAsset, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		var icon IconAsset
		aliases := r.count()
		for j := 0; j < aliases && r.err == nil; j++ {
			icon.Aliases = append(icon.Aliases, r.readString())
		}
		icon.Palette = r.readColors()
		icon.Width = r.readUint16()
		segs := r.count()
		for j := 0; j < segs && r.err == nil; j++ {
			idx := r.readByte()
			icon.Segments = append(icon.Segments, Segment{Index: idx, Text: r.readString()})
		}
		if r.err == nil {
			if err := icon.validate(); err != nil {
				return nil, errors.Wrap(ErrArchiveCorrupt, err.Error())
			}
		}
		icons = append(icons, icon)
	}
	if err := r.finish(); err != nil {
		return nil, err
	}
	return icons, nil
}

// DecodeSchemes validates and decodes a scheme archive.
func DecodeSchemes(data []byte) ([]Scheme, error) {
	payload, err := unseal(kindSchemes, data)
	if err != nil {
		return nil, err
	}
	r := archiveReader{buf: payload}
	n := r.count()
	schemes := make([]Scheme, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		s := Scheme{Name: r.readString(), Colors: r.readColors()}
		if r.err == nil && (s.Name == "" || len(s.Colors) == 0) {
			return nil, errors.Wrapf(ErrArchiveCorrupt, "scheme %d is empty", i)
		}
		schemes = append(schemes, s)
	}
	if err := r.finish(); err != nil {
		return nil, err
	}
	return schemes, nil
}

func seal(kind byte, payload []byte) []byte {
	out := make([]byte, headerSize, headerSize+len(payload))
	copy(out, archiveMagic)
	out[4] = archiveVersion
	out[5] = kind
	binary.LittleEndian.PutUint32(out[6:], uint32(len(payload)))
	binary.LittleEndian.PutUint32(out[10:], crc32.ChecksumIEEE(payload))
	return append(out, payload...)
}

// unseal checks the header and checksum and returns the payload.
func unseal(kind byte, data []byte) ([]byte, error) {
	if len(data) < headerSize {
		return nil, errors.Wrapf(ErrArchiveCorrupt, "%d bytes is shorter than the header", len(data))
	}
	if string(data[:4]) != archiveMagic {
		return nil, errors.Wrap(ErrArchiveCorrupt, "bad magic")
	}
	if data[4] != archiveVersion {
		return nil, errors.Wrapf(ErrArchiveCorrupt, "unsupported version %d", data[4])
	}
	if data[5] != kind {
		return nil, errors.Wrapf(ErrArchiveCorrupt, "archive kind %d, want %d", data[5], kind)
	}
	length := binary.LittleEndian.Uint32(data[6:])
	if uint64(length) != uint64(len(data)-headerSize) {
		return nil, errors.Wrapf(ErrArchiveCorrupt, "payload length %d, have %d bytes", length, len(data)-headerSize)
	}
	payload := data[headerSize:]
	if crc32.ChecksumIEEE(payload) != binary.LittleEndian.Uint32(data[10:]) {
		return nil, errors.Wrap(ErrArchiveCorrupt, "checksum mismatch")
	}
	return payload, nil
}

type archiveWriter struct {
	buf bytes.Buffer
}

func (w *archiveWriter) putUvarint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	w.buf.Write(tmp[:binary.PutUvarint(tmp[:], v)])
}

func (w *archiveWriter) putUint16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	w.buf.Write(tmp[:])
}

func (w *archiveWriter) putString(s string) {
	w.putUvarint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *archiveWriter) putColors(cs []Color) {
	w.putUvarint(uint64(len(cs)))
	for _, c := range cs {
		w.buf.WriteByte(byte(c.kind))
		switch c.kind {
		case KindRGB:
			w.buf.Write([]byte{c.r, c.g, c.b})
		case KindANSI:
			w.buf.WriteByte(c.index)
		default:
			w.buf.WriteByte(byte(c.named))
		}
	}
}

// archiveReader bounds-checks every read. The first failure sticks in err
// and every later read returns a zero value.
type archiveReader struct {
	buf []byte
	off int
	err error
}

func (r *archiveReader) fail(format string, args ...interface{}) {
	if r.err == nil {
		r.err = errors.Wrapf(ErrArchiveCorrupt, "offset %d: "+format, append([]interface{}{r.off}, args...)...)
	}
}

func (r *archiveReader) remaining() int { return len(r.buf) - r.off }

func (r *archiveReader) uvarint() uint64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Uvarint(r.buf[r.off:])
	if n <= 0 {
		r.fail("bad varint")
		return 0
	}
	r.off += n
	return v
}

// count reads an element count. Every element takes at least one byte, so a
// count above the remaining length is corrupt and never allocated.
func (r *archiveReader) count() int {
	v := r.uvarint()
	if r.err == nil && v > uint64(r.remaining()) {
		r.fail("count %d exceeds %d remaining bytes", v, r.remaining())
		return 0
	}
	return int(v)
}

func (r *archiveReader) readByte() byte {
	if r.err != nil {
		return 0
	}
	if r.remaining() < 1 {
		r.fail("truncated")
		return 0
	}
	b := r.buf[r.off]
	r.off++
	return b
}

func (r *archiveReader) readUint16() uint16 {
	if r.err != nil {
		return 0
	}
	if r.remaining() < 2 {
		r.fail("truncated")
		return 0
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v
}

func (r *archiveReader) readString() string {
	n := r.uvarint()
	if r.err != nil {
		return ""
	}
	if n > uint64(r.remaining()) {
		r.fail("string of %d bytes exceeds %d remaining", n, r.remaining())
		return ""
	}
	s := string(r.buf[r.off : r.off+int(n)])
	r.off += int(n)
	if !utf8.ValidString(s) {
		r.fail("invalid UTF-8")
		return ""
	}
	return s
}

func (r *archiveReader) readColors() []Color {
	n := r.count()
	cs := make([]Color, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		switch kind := ColorKind(r.readByte()); kind {
		case KindNamed:
			named := Named(r.readByte())
			if named >= namedCount {
				r.fail("unknown named color %d", named)
			}
			cs = append(cs, NamedColor(named))
		case KindRGB:
			red, green, blue := r.readByte(), r.readByte(), r.readByte()
			cs = append(cs, RGB(red, green, blue))
		case KindANSI:
			cs = append(cs, ANSI(r.readByte()))
		default:
			r.fail("unknown color kind %d", kind)
		}
	}
	return cs
}

func (r *archiveReader) finish() error {
	if r.err != nil {
		return r.err
	}
	if r.remaining() != 0 {
		return errors.Wrapf(ErrArchiveCorrupt, "%d trailing bytes", r.remaining())
	}
	return nil
}
