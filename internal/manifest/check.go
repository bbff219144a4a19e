package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Record error messages.
const (
	MsgMissingID         = "missing id"
	MsgMissingTitle      = "missing title"
	MsgMissingImageURL   = "missing image URL (gifUrl or webpUrl)"
	MsgMissingUploadDate = "missing uploadDate"
	// MsgURLNotString is formatted with the offending key.
	MsgURLNotString = "%s must be a string"
)

// Result is the outcome of checking one work.
type Result struct {
	Position int // 1-based position in the works array
	Title    string
	Errors   []string
}

// Valid reports whether the work had no errors.
func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Check validates a single work. Required fields are checked first, then URL
// values that are not strings, then image URLs starting with localPrefix are
// resolved against dir and must exist on disk. Every problem is collected;
// nothing short-circuits.
func Check(dir, localPrefix string, position int, w Work) Result {
	var errs []string

	if w.ID == "" {
		errs = append(errs, MsgMissingID)
	}
	if w.Title == "" {
		errs = append(errs, MsgMissingTitle)
	}
	if w.GIFURL == "" && w.WebPURL == "" {
		errs = append(errs, MsgMissingImageURL)
	}
	if w.UploadDate == "" {
		errs = append(errs, MsgMissingUploadDate)
	}

	for _, key := range w.NonStringURLs {
		errs = append(errs, fmt.Sprintf(MsgURLNotString, key))
	}

	if msg := checkLocalFile(dir, localPrefix, "GIF", w.GIFURL); msg != "" {
		errs = append(errs, msg)
	}
	if msg := checkLocalFile(dir, localPrefix, "WebP", w.WebPURL); msg != "" {
		errs = append(errs, msg)
	}

	return Result{
		Position: position,
		Title:    w.DisplayTitle(),
		Errors:   errs,
	}
}

// checkLocalFile returns a not-found message when url is a local image path
// that does not exist under dir. External URLs are not checked.
func checkLocalFile(dir, localPrefix, kind, url string) string {
	if url == "" || localPrefix == "" || !strings.HasPrefix(url, localPrefix) {
		return ""
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(url))); err != nil {
		return fmt.Sprintf("%s file not found: %s", kind, url)
	}
	return ""
}
