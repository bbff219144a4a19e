// Package images lists the image assets in the project's images directory.
// The listing is flat (non-recursive) and filtered by file extension.
package images
