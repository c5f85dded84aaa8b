// Package media inspects the image and video references attached to tasks. A reference is either
// a plain URL or an inline base64 data URI as produced by the browser's FileReader.
package media

import "strings"

const (
	KindImage = "image"
	KindVideo = "video"

	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

func IsDataURI(ref string) bool {
	return strings.HasPrefix(ref, dataPrefix)
}

// ContentType returns the MIME type of a base64 data URI, or "" for anything else.
func ContentType(ref string) string {
	if !IsDataURI(ref) {
		return ""
	}

	end := strings.Index(ref, base64Marker)
	if end < len(dataPrefix) {
		return ""
	}

	return ref[len(dataPrefix):end]
}

// Matches reports whether ref may be stored as media of kind. URLs are not inspected; a data URI
// must be base64 encoded and carry a kind/* content type.
func Matches(ref, kind string) bool {
	if !IsDataURI(ref) {
		return true
	}

	return strings.HasPrefix(ContentType(ref), kind+"/")
}
