package validate

import (
	"errors"
	"io"

	"github.com/freedance-video/workscheck/internal/config"
	"github.com/freedance-video/workscheck/internal/manifest"
	"github.com/freedance-video/workscheck/internal/report"
)

// ManifestReport summarizes one manifest check.
type ManifestReport struct {
	Found    bool  // false when the manifest file does not exist
	Err      error // read, parse or structure error; nil otherwise
	Total    int
	Valid    int
	Invalid  int
	Failures []manifest.Result
}

// Passed reports whether the manifest check succeeded.
func (m *ManifestReport) Passed() bool {
	return m.Err == nil && m.Invalid == 0
}

// ValidateManifest checks the works manifest described by s and writes the
// report to w. It returns true when the manifest is absent or every work is
// valid.
func ValidateManifest(w io.Writer, s config.Settings) bool {
	return CheckManifest(newWriter(w, s), s).Passed()
}

// CheckManifest checks the works manifest and reports to r as it goes. Each
// invalid work is reported as soon as it has been checked.
func CheckManifest(r *report.Writer, s config.Settings) *ManifestReport {
	r.Section("Manifest check: " + s.ManifestFile)

	m, err := manifest.Load(s.ManifestPath())
	if err != nil {
		return reportLoadError(r, s, err)
	}

	rep := &ManifestReport{Found: true, Total: len(m.Works)}
	r.Status(report.KindInfo, "found %s work(s)", report.Count(rep.Total))

	for i, work := range m.Works {
		result := manifest.Check(s.Dir, s.LocalPrefix, i+1, work)
		if result.Valid() {
			rep.Valid++
			continue
		}
		rep.Invalid++
		rep.Failures = append(rep.Failures, result)
		r.Status(report.KindFail, "work %d (%s):", result.Position, result.Title)
		for _, msg := range result.Errors {
			r.Detail("%s", msg)
		}
	}

	r.Status(report.KindInfo, "valid works: %s", report.Count(rep.Valid))
	r.Status(report.KindInfo, "invalid works: %s", report.Count(rep.Invalid))
	if rep.Invalid > 0 {
		r.Status(report.KindFail, "%s invalid work(s), fix them and retry", report.Count(rep.Invalid))
	} else {
		r.Status(report.KindOK, "all works are valid")
	}
	return rep
}

func reportLoadError(r *report.Writer, s config.Settings, err error) *ManifestReport {
	var (
		parseErr     *manifest.ParseError
		structureErr *manifest.StructureError
	)

	switch {
	case errors.Is(err, manifest.ErrNotFound):
		r.Status(report.KindInfo, "%s does not exist, nothing to validate yet", s.ManifestFile)
		return &ManifestReport{}
	case errors.As(err, &structureErr):
		r.Status(report.KindFail, "%v", structureErr)
		for _, issue := range structureErr.Issues {
			if issue.Path != "" {
				r.Detail("%s: %s", issue.Path, issue.Message)
			} else {
				r.Detail("%s", issue.Message)
			}
		}
	case errors.As(err, &parseErr):
		r.Status(report.KindFail, "%v", parseErr)
	default:
		r.Status(report.KindFail, "%v", err)
	}
	return &ManifestReport{Found: true, Err: err}
}

func newWriter(w io.Writer, s config.Settings) *report.Writer {
	return report.New(w, report.ShouldColor(s.Color, w))
}
