// Package storage implements service.ObjectStorage on GridFS and on gocloud buckets.
package storage

import (
	"path/filepath"
	"regexp"
	"strings"

	"kampuskart/internal/domain/service"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Object keys are <uuid><ext>; anything else is rejected before it reaches a
// backend, which keeps request paths out of the bucket namespace.
var refPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}(\.[a-z0-9]{1,8})?$`)

func newRef(info service.ObjectInfo) string {
	return uuid.NewString() + extension(info)
}

func extension(info service.ObjectInfo) string {
	ext := strings.ToLower(filepath.Ext(info.OriginalName))
	if ext != "" && refPattern.MatchString(uuid.Nil.String()+ext) {
		return ext
	}

	if mtype := mimetype.Lookup(info.ContentType); mtype != nil {
		return mtype.Extension()
	}

	return ""
}

func validRef(ref string) bool {
	return refPattern.MatchString(ref)
}
