package forms

import "regexp"

// MaxFileUploadSizeBytes caps a single attachment upload.
const MaxFileUploadSizeBytes = 300 * 1024 * 1024

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9()_,.-]`)

// SanitizeFilename replaces every character outside [a-zA-Z0-9()_,.-] with an
// underscore so the name is safe to forward in headers and store on disk.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}
