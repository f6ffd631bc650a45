package assets

import (
	"encoding/json"
	"math"
	"time"
)

// ManifestVersion identifies the manifest schema emitted alongside each page.
const ManifestVersion = "1.0.0"

// Manifest summarizes every asset referenced by one built page.
type Manifest struct {
	GeneratedAt        string       `json:"generatedAt"`
	Version            string       `json:"version"`
	TotalAssets        int          `json:"totalAssets"`
	TotalOriginalSize  int64        `json:"totalOriginalSize"`
	TotalOptimizedSize int64        `json:"totalOptimizedSize"`
	SavingsPercent     float64      `json:"savingsPercent"`
	Assets             []*Asset     `json:"assets"`
	ByType             map[Type]int `json:"byType"`
}

// BuildManifest aggregates assets and computes size savings. ByType counts
// every asset exactly once; every known type appears even when its count is
// zero, so consumers can index without presence checks.
func BuildManifest(assets []*Asset, generatedAt time.Time) Manifest {
	manifest := Manifest{
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		Version:     ManifestVersion,
		Assets:      make([]*Asset, 0, len(assets)),
		ByType: map[Type]int{
			TypeImage:  0,
			TypeVideo:  0,
			TypeFont:   0,
			TypeScript: 0,
			TypeStyle:  0,
			TypeOther:  0,
		},
	}
	for _, asset := range assets {
		if asset == nil {
			continue
		}
		manifest.Assets = append(manifest.Assets, asset)
		manifest.TotalAssets++
		manifest.TotalOriginalSize += asset.OriginalSize
		manifest.TotalOptimizedSize += asset.OptimizedSize
		manifest.ByType[asset.Type]++
	}
	manifest.SavingsPercent = SavingsPercent(manifest.TotalOriginalSize, manifest.TotalOptimizedSize)
	return manifest
}

// SavingsPercent computes rounded size savings, defined as 0 when the
// original size is unknown so the result is always finite.
func SavingsPercent(originalSize, optimizedSize int64) float64 {
	if originalSize <= 0 {
		return 0
	}
	saved := float64(originalSize-optimizedSize) / float64(originalSize) * 100
	return math.Round(saved)
}

// Encode renders the manifest as indented JSON for writing to disk.
func (m Manifest) Encode() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
