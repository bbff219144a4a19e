package validate

import (
	"io"

	"github.com/freedance-video/workscheck/internal/branding"
	"github.com/freedance-video/workscheck/internal/config"
	"github.com/freedance-video/workscheck/internal/report"
)

// Banner messages printed after a full run.
const (
	PassedBanner = "All checks passed, safe to deploy!"
	FailedBanner = "Validation failed, fix the errors above and retry."
)

// Result is the combined outcome of a full run.
type Result struct {
	Manifest *ManifestReport
	Images   *ImagesReport
}

// Passed reports whether both checks succeeded.
func (r *Result) Passed() bool {
	return r.Manifest.Passed() && r.Images.Passed()
}

// Run performs both checks, always running each regardless of the other's
// outcome, prints the final banner and returns the combined result.
func Run(w io.Writer, s config.Settings) bool {
	return RunChecks(newWriter(w, s), s).Passed()
}

// RunChecks is Run with an explicit report writer.
func RunChecks(r *report.Writer, s config.Settings) *Result {
	r.Line("%s", branding.DisplayName())
	r.Blank()

	res := &Result{}
	res.Manifest = CheckManifest(r, s)
	r.Blank()
	res.Images = CheckImages(r, s)
	r.Blank()

	if res.Passed() {
		r.Banner(true, PassedBanner)
	} else {
		r.Banner(false, FailedBanner)
	}
	return res
}
