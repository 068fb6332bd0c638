package catalog

// Diff lists the keys that differ between two catalogs.
type Diff struct {
	Added   []string
	Removed []string
	Changed []string
}

// Empty reports whether the catalogs are equivalent by CRC.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// DiffMedia compares old and cur by key and CRC. Keys are sorted.
func DiffMedia(old, cur *MediaCatalog) Diff {
	var d Diff
	for _, k := range cur.Keys() {
		prev, ok := old.Table[k]
		switch {
		case !ok:
			d.Added = append(d.Added, k)
		case prev.Crc != cur.Table[k].Crc:
			d.Changed = append(d.Changed, k)
		}
	}
	for _, k := range old.Keys() {
		if _, ok := cur.Table[k]; !ok {
			d.Removed = append(d.Removed, k)
		}
	}
	return d
}

// DiffTables compares old and cur by key and CRC. Keys are sorted.
func DiffTables(old, cur *TableCatalog) Diff {
	var d Diff
	for _, k := range cur.Keys() {
		prev, ok := old.Table[k]
		switch {
		case !ok:
			d.Added = append(d.Added, k)
		case prev.Crc != cur.Table[k].Crc:
			d.Changed = append(d.Changed, k)
		}
	}
	for _, k := range old.Keys() {
		if _, ok := cur.Table[k]; !ok {
			d.Removed = append(d.Removed, k)
		}
	}
	return d
}
