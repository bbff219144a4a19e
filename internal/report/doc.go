// Package report renders human-readable check output: indented status lines
// in the "[ OK ] ..." style, detail bullets, banners and tables. Colour is
// applied only when requested or when writing to a terminal.
package report
