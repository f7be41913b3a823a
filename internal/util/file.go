package util

import (
	"path"
	"strings"
)

// AttachmentObjectKey derives the storage key for a workshop type document:
// the type name with spaces replaced by underscores, then the base filename.
// External consumers rely on this layout, do not change it.
func AttachmentObjectKey(workshopTypeName, fileName string) string {
	dir := strings.ReplaceAll(workshopTypeName, " ", "_")
	return path.Join(dir, path.Base(fileName))
}
