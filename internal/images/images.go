package images

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp" // WebP decoder registration
)

// DefaultDir is the images directory name under the working directory.
const DefaultDir = "images"

// DefaultExtensions is the allow-list of image file extensions.
var DefaultExtensions = []string{"gif", "webp", "png", "jpg", "jpeg"}

// File is one image in the listing.
type File struct {
	Name   string
	Size   int64
	Width  int // 0 when dimensions were not decoded
	Height int
}

// SizeKB returns the size in kilobytes rounded to the nearest integer.
func (f File) SizeKB() int64 {
	return int64(math.Round(float64(f.Size) / 1024))
}

// Dimensions returns "WxH", or "?" when the header could not be decoded.
func (f File) Dimensions() string {
	if f.Width == 0 && f.Height == 0 {
		return "?"
	}
	return fmt.Sprintf("%dx%d", f.Width, f.Height)
}

// Listing is the result of scanning an images directory.
type Listing struct {
	Dir   string
	Found bool // false when the directory does not exist
	Files []File
}

// Options controls a scan.
type Options struct {
	// Extensions overrides DefaultExtensions. Entries are matched
	// case-insensitively and may carry a leading dot.
	Extensions []string
	// Dimensions decodes each image header to fill Width and Height.
	Dimensions bool
	Logger     *slog.Logger
}

// Scan lists the image files directly inside dir. A missing directory is
// not an error; the returned Listing has Found set to false.
func Scan(dir string, opts Options) (*Listing, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	exts := normalizeExtensions(opts.Extensions)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Listing{Dir: dir}, nil
		}
		return nil, fmt.Errorf("reading images directory %s: %w", dir, err)
	}

	listing := &Listing{Dir: dir, Found: true}
	for _, entry := range entries {
		if !matches(entry.Name(), exts) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		// Stat follows symlinks: a link reports its target's size and type.
		info, err := os.Stat(path)
		if err != nil {
			logger.Debug("skipping unreadable image entry", "path", path, "error", err)
			continue
		}
		if info.IsDir() {
			continue
		}

		f := File{Name: entry.Name(), Size: info.Size()}
		if opts.Dimensions {
			w, h, err := DecodeDimensions(path)
			if err != nil {
				logger.Debug("image header not decodable", "path", path, "error", err)
			} else {
				f.Width, f.Height = w, h
			}
		}
		listing.Files = append(listing.Files, f)
	}
	return listing, nil
}

// Match reports whether name has one of the allowed extensions.
// A nil exts uses DefaultExtensions.
func Match(name string, exts []string) bool {
	return matches(name, normalizeExtensions(exts))
}

func matches(name string, exts map[string]bool) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return ext != "" && exts[ext]
}

func normalizeExtensions(exts []string) map[string]bool {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(e)), ".")
		if e != "" {
			set[e] = true
		}
	}
	return set
}

// DecodeDimensions reads only the image header at path and returns its size.
func DecodeDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding header of %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
