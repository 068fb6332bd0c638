package catalog

import (
	"fmt"

	"github.com/udisondev/bacy/internal/memorypack"
)

// DecodeMediaCatalog parses a serialized media catalog.
func DecodeMediaCatalog(data []byte) (*MediaCatalog, error) {
	r := memorypack.NewReader(data)
	if err := readCatalogHeader(r); err != nil {
		return nil, fmt.Errorf("media catalog: %w", err)
	}

	n, ok, err := r.ReadCollectionHeader()
	if err != nil {
		return nil, fmt.Errorf("media catalog: %w", err)
	}
	c := &MediaCatalog{Table: make(map[string]Media, n)}
	if !ok {
		return c, nil
	}
	for i := range n {
		key, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("media entry %d key: %w", i, err)
		}
		m, err := readMedia(r)
		if err != nil {
			return nil, fmt.Errorf("media entry %q: %w", key, err)
		}
		c.Table[key] = m
	}
	return c, nil
}

// DecodeTableCatalog parses a serialized table catalog.
func DecodeTableCatalog(data []byte) (*TableCatalog, error) {
	r := memorypack.NewReader(data)
	if err := readCatalogHeader(r); err != nil {
		return nil, fmt.Errorf("table catalog: %w", err)
	}

	n, ok, err := r.ReadCollectionHeader()
	if err != nil {
		return nil, fmt.Errorf("table catalog: %w", err)
	}
	c := &TableCatalog{Table: make(map[string]Table, n)}
	if !ok {
		return c, nil
	}
	for i := range n {
		key, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("table entry %d key: %w", i, err)
		}
		t, err := readTable(r)
		if err != nil {
			return nil, fmt.Errorf("table entry %q: %w", key, err)
		}
		c.Table[key] = t
	}
	return c, nil
}

// Encode serializes the catalog. Entries are written in key order.
func (c *MediaCatalog) Encode() []byte {
	w := memorypack.NewWriter(64 + 64*len(c.Table))
	w.WriteObjectHeader(catalogMembers)
	w.WriteCollectionHeader(len(c.Table))
	for _, k := range c.Keys() {
		m := c.Table[k]
		w.WriteString(k)
		w.WriteObjectHeader(mediaMembers)
		w.WriteString(m.Path)
		w.WriteString(m.FileName)
		w.WriteInt64(m.Bytes)
		w.WriteInt64(m.Crc)
		w.WriteBool(m.IsPrologue)
		w.WriteBool(m.IsSplitDownload)
		w.WriteInt32(m.MediaType)
	}
	return w.Bytes()
}

// Encode serializes the catalog. Entries are written in key order.
func (c *TableCatalog) Encode() []byte {
	w := memorypack.NewWriter(64 + 64*len(c.Table))
	w.WriteObjectHeader(catalogMembers)
	w.WriteCollectionHeader(len(c.Table))
	for _, k := range c.Keys() {
		t := c.Table[k]
		w.WriteString(k)
		w.WriteObjectHeader(tableMembers)
		w.WriteString(t.Name)
		w.WriteInt64(t.Size)
		w.WriteInt64(t.Crc)
		w.WriteBool(t.IsInBuild)
		w.WriteBool(t.IsChanged)
		w.WriteBool(t.IsPrologue)
		w.WriteBool(t.IsSplitDownload)
		w.WriteStrings(t.Includes)
	}
	return w.Bytes()
}

func readCatalogHeader(r *memorypack.Reader) error {
	n, ok, err := r.ReadObjectHeader()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("null catalog")
	}
	if n != catalogMembers {
		return fmt.Errorf("unexpected member count %d", n)
	}
	return nil
}

func readMedia(r *memorypack.Reader) (Media, error) {
	var m Media
	if err := expectMembers(r, mediaMembers); err != nil {
		return m, err
	}

	var err error
	if m.Path, err = r.ReadString(); err != nil {
		return m, err
	}
	if m.FileName, err = r.ReadString(); err != nil {
		return m, err
	}
	if m.Bytes, err = r.ReadInt64(); err != nil {
		return m, err
	}
	if m.Crc, err = r.ReadInt64(); err != nil {
		return m, err
	}
	if m.IsPrologue, err = r.ReadBool(); err != nil {
		return m, err
	}
	if m.IsSplitDownload, err = r.ReadBool(); err != nil {
		return m, err
	}
	if m.MediaType, err = r.ReadInt32(); err != nil {
		return m, err
	}
	return m, nil
}

func readTable(r *memorypack.Reader) (Table, error) {
	var t Table
	if err := expectMembers(r, tableMembers); err != nil {
		return t, err
	}

	var err error
	if t.Name, err = r.ReadString(); err != nil {
		return t, err
	}
	if t.Size, err = r.ReadInt64(); err != nil {
		return t, err
	}
	if t.Crc, err = r.ReadInt64(); err != nil {
		return t, err
	}
	if t.IsInBuild, err = r.ReadBool(); err != nil {
		return t, err
	}
	if t.IsChanged, err = r.ReadBool(); err != nil {
		return t, err
	}
	if t.IsPrologue, err = r.ReadBool(); err != nil {
		return t, err
	}
	if t.IsSplitDownload, err = r.ReadBool(); err != nil {
		return t, err
	}
	if t.Includes, err = r.ReadStrings(); err != nil {
		return t, err
	}
	return t, nil
}

func expectMembers(r *memorypack.Reader, want int) error {
	n, ok, err := r.ReadObjectHeader()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("null object")
	}
	if n != want {
		return fmt.Errorf("expected %d members, got %d", want, n)
	}
	return nil
}
