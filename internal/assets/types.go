package assets

import "strings"

// Type classifies a referenced resource by its role in the page.
type Type string

const (
	TypeImage  Type = "image"
	TypeVideo  Type = "video"
	TypeFont   Type = "font"
	TypeScript Type = "script"
	TypeStyle  Type = "style"
	TypeOther  Type = "other"
)

// AlternateFormat records one additional encoding generated for an asset.
type AlternateFormat struct {
	Format string `json:"format"`
	URL    string `json:"url"`
	Size   int64  `json:"size,omitempty"`
}

// Asset is a deduplicated, content-addressed record of one referenced external
// resource. Two byte-identical OriginalURL strings always resolve to a single
// Asset whose UsedBy set accumulates every referencing component id. Assets
// are created fresh per build and are never mutated by the URL rewriter.
type Asset struct {
	ID               string            `json:"id"`
	OriginalURL      string            `json:"original_url"`
	OptimizedURL     string            `json:"optimized_url"`
	Type             Type              `json:"type"`
	MimeType         string            `json:"mime_type"`
	OriginalSize     int64             `json:"original_size,omitempty"`
	OptimizedSize    int64             `json:"optimized_size,omitempty"`
	Width            int               `json:"width,omitempty"`
	Height           int               `json:"height,omitempty"`
	AlternateFormats []AlternateFormat `json:"alternate_formats,omitempty"`
	Inlined          bool              `json:"inlined,omitempty"`
	DataURI          string            `json:"data_uri,omitempty"`
	UsedBy           []string          `json:"used_by"`
}

// Clone returns a deep copy so optimization never aliases extractor output.
func (a *Asset) Clone() *Asset {
	if a == nil {
		return nil
	}
	cloned := *a
	cloned.AlternateFormats = append([]AlternateFormat(nil), a.AlternateFormats...)
	cloned.UsedBy = append([]string(nil), a.UsedBy...)
	return &cloned
}

// ResolvedURL is the address the rewriter substitutes for the original
// reference: the data URI when the asset was inlined, else the optimized URL,
// else the original.
func (a *Asset) ResolvedURL() string {
	if a == nil {
		return ""
	}
	if a.Inlined && strings.TrimSpace(a.DataURI) != "" {
		return a.DataURI
	}
	if strings.TrimSpace(a.OptimizedURL) != "" {
		return a.OptimizedURL
	}
	return a.OriginalURL
}

var extensionTypes = map[string]Type{
	"jpg":   TypeImage,
	"jpeg":  TypeImage,
	"png":   TypeImage,
	"gif":   TypeImage,
	"webp":  TypeImage,
	"avif":  TypeImage,
	"svg":   TypeImage,
	"ico":   TypeImage,
	"mp4":   TypeVideo,
	"webm":  TypeVideo,
	"ogv":   TypeVideo,
	"mov":   TypeVideo,
	"woff":  TypeFont,
	"woff2": TypeFont,
	"ttf":   TypeFont,
	"otf":   TypeFont,
	"eot":   TypeFont,
	"js":    TypeScript,
	"mjs":   TypeScript,
	"css":   TypeStyle,
}

var extensionMIMEs = map[string]string{
	"jpg":   "image/jpeg",
	"jpeg":  "image/jpeg",
	"png":   "image/png",
	"gif":   "image/gif",
	"webp":  "image/webp",
	"avif":  "image/avif",
	"svg":   "image/svg+xml",
	"ico":   "image/x-icon",
	"mp4":   "video/mp4",
	"webm":  "video/webm",
	"ogv":   "video/ogg",
	"mov":   "video/quicktime",
	"woff":  "font/woff",
	"woff2": "font/woff2",
	"ttf":   "font/ttf",
	"otf":   "font/otf",
	"eot":   "application/vnd.ms-fontobject",
	"js":    "application/javascript",
	"mjs":   "application/javascript",
	"css":   "text/css",
	"json":  "application/json",
	"pdf":   "application/pdf",
}

// urlExtension extracts the lowercase file extension from a URL, ignoring
// query strings and fragments.
func urlExtension(url string) string {
	trimmed := url
	if idx := strings.IndexAny(trimmed, "?#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	slash := strings.LastIndex(trimmed, "/")
	dot := strings.LastIndex(trimmed, ".")
	if dot < 0 || dot < slash || dot == len(trimmed)-1 {
		return ""
	}
	return strings.ToLower(trimmed[dot+1:])
}

func classify(url string) (Type, string) {
	ext := urlExtension(url)
	if ext == "" {
		return TypeOther, "application/octet-stream"
	}
	assetType, ok := extensionTypes[ext]
	if !ok {
		assetType = TypeOther
	}
	mime, ok := extensionMIMEs[ext]
	if !ok {
		mime = "application/octet-stream"
	}
	return assetType, mime
}
