package catalog

import (
	"encoding/json"
	"fmt"
)

// Packing is the bundle packing manifest published next to the catalogs.
type Packing struct {
	Milestone      string  `json:"Milestone"`
	PatchVersion   int64   `json:"PatchVersion"`
	FullPatchPacks []Patch `json:"FullPatchPacks"`
	UpdatePacks    []Patch `json:"UpdatePacks"`
}

// Patch is one downloadable pack.
type Patch struct {
	PackName        string  `json:"PackName"`
	PackSize        int64   `json:"PackSize"`
	Crc             int64   `json:"Crc"`
	IsPrologue      bool    `json:"IsPrologue"`
	IsSplitDownload bool    `json:"IsSplitDownload"`
	BundleFiles     []Asset `json:"BundleFiles"`
}

// Asset is a bundle inside a pack.
type Asset struct {
	Name            string `json:"Name"`
	Size            int64  `json:"Size"`
	IsPrologue      bool   `json:"IsPrologue"`
	Crc             int64  `json:"Crc"`
	IsSplitDownload bool   `json:"IsSplitDownload"`
}

// DecodePacking parses a packing manifest.
func DecodePacking(data []byte) (*Packing, error) {
	var p Packing
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("packing manifest: %w", err)
	}
	return &p, nil
}

// Size returns the total byte size of the full patch packs.
func (p *Packing) Size() int64 {
	var n int64
	for _, pk := range p.FullPatchPacks {
		n += pk.PackSize
	}
	return n
}
