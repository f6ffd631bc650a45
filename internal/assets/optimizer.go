package assets

import (
	"strings"

	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

// OptimizeOptions controls the optimization pass.
type OptimizeOptions struct {
	OptimizeImages    bool
	MaxImageWidth     int
	ImageQuality      int
	GenerateWebP      bool
	GenerateAVIF      bool
	InlineSmallAssets bool
	InlineThreshold   int64
}

func DefaultOptimizeOptions() OptimizeOptions {
	return OptimizeOptions{
		OptimizeImages:    true,
		MaxImageWidth:     1920,
		ImageQuality:      85,
		GenerateWebP:      true,
		GenerateAVIF:      false,
		InlineSmallAssets: true,
		InlineThreshold:   4096,
	}
}

// Optimizer augments extracted assets with optimized URLs, alternate format
// targets, and inlining decisions. It never mutates its input records.
type Optimizer struct {
	options OptimizeOptions
	logger  interfaces.Logger
}

func NewOptimizer(options OptimizeOptions, logger interfaces.Logger) *Optimizer {
	return &Optimizer{
		options: options,
		logger:  logger,
	}
}

// Optimize returns one augmented copy per input asset, preserving order.
func (o *Optimizer) Optimize(assets []*Asset) []*Asset {
	result := make([]*Asset, 0, len(assets))
	for _, asset := range assets {
		if asset == nil {
			continue
		}
		result = append(result, o.optimizeOne(asset))
	}
	return result
}

func (o *Optimizer) optimizeOne(asset *Asset) *Asset {
	optimized := asset.Clone()
	if strings.TrimSpace(optimized.OptimizedURL) == "" {
		optimized.OptimizedURL = optimized.OriginalURL
	}
	if optimized.OptimizedSize == 0 {
		optimized.OptimizedSize = optimized.OriginalSize
	}

	if optimized.Type == TypeImage && o.options.OptimizeImages {
		o.addAlternateFormats(optimized)
	}

	// Any asset with a known size under the threshold is eligible, regardless
	// of type; embedding happens downstream.
	if o.options.InlineSmallAssets &&
		optimized.OriginalSize > 0 &&
		optimized.OriginalSize < o.options.InlineThreshold {
		optimized.Inlined = true
	}

	return optimized
}

// addAlternateFormats registers webp and avif targets by extension
// substitution. SVG and already-converted formats are left alone.
func (o *Optimizer) addAlternateFormats(asset *Asset) {
	ext := urlExtension(asset.OriginalURL)
	switch ext {
	case "jpg", "jpeg", "png", "gif":
	default:
		return
	}
	if o.options.GenerateWebP && !hasFormat(asset.AlternateFormats, "webp") {
		asset.AlternateFormats = append(asset.AlternateFormats, AlternateFormat{
			Format: "webp",
			URL:    replaceExtension(asset.OptimizedURL, "webp"),
		})
	}
	if o.options.GenerateAVIF && !hasFormat(asset.AlternateFormats, "avif") {
		asset.AlternateFormats = append(asset.AlternateFormats, AlternateFormat{
			Format: "avif",
			URL:    replaceExtension(asset.OptimizedURL, "avif"),
		})
	}
}

func hasFormat(formats []AlternateFormat, format string) bool {
	for _, entry := range formats {
		if entry.Format == format {
			return true
		}
	}
	return false
}

func replaceExtension(url, ext string) string {
	base := url
	suffix := ""
	if idx := strings.IndexAny(base, "?#"); idx >= 0 {
		suffix = base[idx:]
		base = base[:idx]
	}
	dot := strings.LastIndex(base, ".")
	slash := strings.LastIndex(base, "/")
	if dot < 0 || dot < slash {
		return url
	}
	return base[:dot+1] + ext + suffix
}
