// Package validate runs the works checks and reports them. ValidateManifest
// and ValidateImages are usable as a library: they return a boolean outcome
// and stream report lines to the supplied writer (io.Discard silences them).
// Run combines both checks the way the command line does.
package validate
