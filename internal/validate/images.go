package validate

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/freedance-video/workscheck/internal/config"
	"github.com/freedance-video/workscheck/internal/images"
	"github.com/freedance-video/workscheck/internal/report"
)

// ImagesReport summarizes one images directory check.
type ImagesReport struct {
	Found bool
	Files []images.File
	Err   error // directory could not be read; reported as a warning
}

// Passed is always true: the images check is informational.
func (i *ImagesReport) Passed() bool { return true }

// ValidateImages lists the images directory described by s and writes the
// report to w. It always returns true.
func ValidateImages(w io.Writer, s config.Settings) bool {
	return CheckImages(newWriter(w, s), s).Passed()
}

// CheckImages lists the images directory and reports to r.
func CheckImages(r *report.Writer, s config.Settings) *ImagesReport {
	r.Section("Images check: " + s.ImagesDir)

	listing, err := images.Scan(s.ImagesPath(), images.Options{
		Extensions: s.Extensions,
		Dimensions: s.Dimensions,
		Logger:     slog.Default(),
	})
	if err != nil {
		r.Status(report.KindWarn, "%v", err)
		return &ImagesReport{Found: true, Err: err}
	}
	if !listing.Found {
		r.Status(report.KindInfo, "%s does not exist, no images yet", s.ImagesDir)
		return &ImagesReport{}
	}

	r.Status(report.KindInfo, "found %s image file(s)", report.Count(len(listing.Files)))
	if len(listing.Files) > 0 {
		if s.Table {
			imagesTable(r, listing.Files, s.Dimensions)
		} else {
			for _, f := range listing.Files {
				r.Detail("%s", describe(f, s.Dimensions))
			}
		}
	}
	return &ImagesReport{Found: true, Files: listing.Files}
}

func describe(f images.File, dimensions bool) string {
	if dimensions {
		return fmt.Sprintf("%s (%d KB, %s)", f.Name, f.SizeKB(), f.Dimensions())
	}
	return fmt.Sprintf("%s (%d KB)", f.Name, f.SizeKB())
}

func imagesTable(r *report.Writer, files []images.File, dimensions bool) {
	headers := []string{"File", "Size"}
	aligns := []report.Align{report.AlignLeft, report.AlignRight}
	if dimensions {
		headers = append(headers, "Dimensions")
		aligns = append(aligns, report.AlignRight)
	}

	rows := make([][]string, 0, len(files))
	for _, f := range files {
		row := []string{f.Name, fmt.Sprintf("%d KB", f.SizeKB())}
		if dimensions {
			row = append(row, f.Dimensions())
		}
		rows = append(rows, row)
	}
	r.Table(headers, rows, aligns)
}
