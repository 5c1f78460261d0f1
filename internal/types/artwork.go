package types

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder registration
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// ArtworkType categorizes the purpose/content of a picture.
//
// Values follow the ID3v2 APIC picture type table, which FLAC PICTURE
// blocks share. See: https://id3.org/id3v2.4.0-frames (APIC frame)
type ArtworkType uint8

const (
	ArtworkOther             ArtworkType = iota // Other
	ArtworkIcon                                 // File icon (32x32 PNG)
	ArtworkOtherIcon                            // Other file icon
	ArtworkFrontCover                           // Front cover
	ArtworkBackCover                            // Back cover
	ArtworkLeaflet                              // Leaflet page
	ArtworkMedia                                // Media (CD/vinyl label)
	ArtworkLeadArtist                           // Lead artist/performer/soloist
	ArtworkArtist                               // Artist/performer
	ArtworkConductor                            // Conductor
	ArtworkBand                                 // Band/orchestra
	ArtworkComposer                             // Composer
	ArtworkLyricist                             // Lyricist/text writer
	ArtworkRecordingLocation                    // Recording location
	ArtworkDuringRecording                      // During recording
	ArtworkDuringPerformance                    // During performance
	ArtworkVideoCapture                         // Movie/video screen capture
	ArtworkBrightFish                           // A bright colored fish
	ArtworkIllustration                         // Illustration
	ArtworkBandLogotype                         // Band/artist logotype
	ArtworkPublisherLogotype                    // Publisher/studio logotype
)

var artworkTypeNames = [...]string{
	"Other",
	"File icon",
	"Other file icon",
	"Front cover",
	"Back cover",
	"Leaflet page",
	"Media",
	"Lead artist",
	"Artist",
	"Conductor",
	"Band",
	"Composer",
	"Lyricist",
	"Recording location",
	"During recording",
	"During performance",
	"Video capture",
	"Bright colored fish",
	"Illustration",
	"Band logotype",
	"Publisher logotype",
}

func (t ArtworkType) String() string {
	if int(t) < len(artworkTypeNames) {
		return artworkTypeNames[t]
	}
	return fmt.Sprintf("Type %d", uint8(t))
}

// Picture is an embedded image selected for a record.
type Picture struct {
	MIMEType    string // "image/jpeg", "image/png", ...
	Description string
	Data        []byte
	Type        ArtworkType
}

// String returns a human-readable description of the picture.
//
// Example output: "Front cover (JPEG, 245KB)"
func (p Picture) String() string {
	return fmt.Sprintf("%s (%s, %s)", p.Type, mimeToFormat(p.MIMEType), formatSize(len(p.Data)))
}

// Dimensions decodes only the image header and returns its pixel size.
// JPEG, PNG, GIF, BMP and WebP are understood.
func (p Picture) Dimensions() (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(p.Data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s header: %w", p.MIMEType, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Thumbnail decodes the picture and rescales it to fit within
// maxWidth x maxHeight, preserving aspect ratio. Images that already fit
// are re-encoded unchanged. The result is always JPEG.
func (p Picture) Thumbnail(maxWidth, maxHeight int) ([]byte, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("thumbnail bounds must be positive, got %dx%d", maxWidth, maxHeight)
	}

	img, _, err := image.Decode(bytes.NewReader(p.Data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.MIMEType, err)
	}

	bounds := img.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for the picture's MIME type,
// or ".bin" when the type is not an image.
func (p Picture) Extension() string {
	switch mime := strings.ToLower(p.MIMEType); mime {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	case "image/webp":
		return ".webp"
	case "image/tiff":
		return ".tiff"
	case "image/unknown", "image/":
		return ".bin"
	default:
		if ext, ok := strings.CutPrefix(mime, "image/"); ok {
			return "." + ext
		}
		return ".bin"
	}
}

// fitWithin scales width x height down to fit the box, keeping the ratio.
// Neither side drops below one pixel.
func fitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}

	return max(width, 1), max(height, 1)
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// mimeToFormat converts MIME type to short format name.
func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/webp":
		return "WebP"
	default:
		return "Image"
	}
}
