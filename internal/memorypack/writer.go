package memorypack

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Writer encodes fields in the layout Reader expects.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a Writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: bytes.NewBuffer(make([]byte, 0, capacity))}
}

// WriteByte writes a single byte.
func (w *Writer) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

// WriteBool writes 1 or 0.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
		return
	}
	w.buf.WriteByte(0)
}

// WriteInt16 writes an int16 (2 bytes, LE).
func (w *Writer) WriteInt16(v int16) {
	w.buf.Write(binary.LittleEndian.AppendUint16(nil, uint16(v)))
}

// WriteInt32 writes an int32 (4 bytes, LE).
func (w *Writer) WriteInt32(v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	w.buf.Write(b[:])
}

// WriteInt64 writes an int64 (8 bytes, LE).
func (w *Writer) WriteInt64(v int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	w.buf.Write(b[:])
}

// WriteFloat32 writes a float32 (4 bytes, LE).
func (w *Writer) WriteFloat32(v float32) {
	w.WriteInt32(int32(math.Float32bits(v)))
}

// WriteFloat64 writes a float64 (8 bytes, LE).
func (w *Writer) WriteFloat64(v float64) {
	w.WriteInt64(int64(math.Float64bits(v)))
}

// WriteString writes a UTF-8 string with its byte length.
func (w *Writer) WriteString(s string) {
	w.WriteInt32(int32(len(s)))
	w.buf.WriteString(s)
}

// WriteObjectHeader writes the member count of an object.
func (w *Writer) WriteObjectHeader(members int) {
	w.buf.WriteByte(byte(members))
}

// WriteNullObject writes a nil object.
func (w *Writer) WriteNullObject() {
	w.buf.WriteByte(NullObject)
}

// WriteCollectionHeader writes the element count of a collection.
func (w *Writer) WriteCollectionHeader(count int) {
	w.WriteInt32(int32(count))
}

// WriteStrings writes a string collection; nil is written as a nil
// collection.
func (w *Writer) WriteStrings(ss []string) {
	if ss == nil {
		w.WriteInt32(NullLength)
		return
	}
	w.WriteCollectionHeader(len(ss))
	for _, s := range ss {
		w.WriteString(s)
	}
}

// WriteBytes writes raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.Write(b)
}

// Bytes returns the encoded data.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the encoded length.
func (w *Writer) Len() int {
	return w.buf.Len()
}
