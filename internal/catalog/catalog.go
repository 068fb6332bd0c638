// Package catalog decodes the client's media and table catalogs.
package catalog

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	mediaMembers   = 7
	tableMembers   = 8
	catalogMembers = 1
)

// Media describes one media resource.
type Media struct {
	Path            string `json:"Path"`
	FileName        string `json:"FileName"`
	Bytes           int64  `json:"Bytes"`
	Crc             int64  `json:"Crc"`
	IsPrologue      bool   `json:"IsPrologue"`
	IsSplitDownload bool   `json:"IsSplitDownload"`
	MediaType       int32  `json:"MediaType"`
}

// URL joins base and the media path.
func (m Media) URL(base string) string {
	return joinURL(base, m.Path)
}

// Table describes one table bundle.
type Table struct {
	Name            string   `json:"Name"`
	Size            int64    `json:"Size"`
	Crc             int64    `json:"Crc"`
	IsInBuild       bool     `json:"IsInBuild"`
	IsChanged       bool     `json:"IsChanged"`
	IsPrologue      bool     `json:"IsPrologue"`
	IsSplitDownload bool     `json:"IsSplitDownload"`
	Includes        []string `json:"Includes"`
}

// URL joins base and the table name.
func (t Table) URL(base string) string {
	return joinURL(base, t.Name)
}

// MediaCatalog maps a resource key to its media entry.
type MediaCatalog struct {
	Table map[string]Media `json:"Table"`
}

// TableCatalog maps a bundle key to its table entry.
type TableCatalog struct {
	Table map[string]Table `json:"Table"`
}

// Keys returns the catalog keys in sorted order.
func (c *MediaCatalog) Keys() []string {
	return slices.Sorted(maps.Keys(c.Table))
}

// Keys returns the catalog keys in sorted order.
func (c *TableCatalog) Keys() []string {
	return slices.Sorted(maps.Keys(c.Table))
}

// ToJSON exports the catalog with PascalCase keys.
func (c *MediaCatalog) ToJSON() ([]byte, error) {
	return toJSON(c)
}

// ToJSON exports the catalog with PascalCase keys.
func (c *TableCatalog) ToJSON() ([]byte, error) {
	return toJSON(c)
}

func toJSON(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}
	return b, nil
}

func joinURL(base, p string) string {
	if base == "" {
		return p
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}
