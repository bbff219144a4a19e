// Package manifest loads the works manifest (works.json), checks its
// top-level shape against an embedded JSON Schema and validates each work
// record for required fields and locally referenced image files.
package manifest
