// Package exifdate resolves the date a photo was taken, preferring EXIF
// capture metadata and degrading to filesystem or wall-clock time.
package exifdate

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"go.uber.org/zap"
)

// EXIF stores timestamps without a timezone; they are interpreted as the
// literal local value.
const exifTimeLayout = "2006:01:02 15:04:05"

// tagPriority is the fixed probe order: original capture time first, then
// the digitized copy, then the generic image timestamp.
var tagPriority = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
	exif.DateTime,
}

type Resolver struct {
	logger *zap.Logger
}

func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve never fails. If the file's metadata cannot be read at all, the
// failure is logged and the current time stands in; if metadata is readable
// but carries no usable capture tag, the file's mtime is used silently.
func (r *Resolver) Resolve(path string) time.Time {
	f, err := os.Open(path)
	if err != nil {
		r.logger.Warn("Cannot read image metadata",
			zap.String("path", path),
			zap.Error(err))
		return time.Now()
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		r.logger.Warn("Cannot parse EXIF metadata",
			zap.String("path", path),
			zap.Error(err))
		return time.Now()
	}

	if t, ok := captureTime(x); ok {
		return t
	}

	fi, err := os.Stat(path)
	if err != nil {
		r.logger.Warn("Cannot stat file",
			zap.String("path", path),
			zap.Error(err))
		return time.Now()
	}
	return fi.ModTime()
}

// captureTime returns the first parseable capture timestamp in priority
// order. A tag that is present but malformed does not abort the probe.
func captureTime(x *exif.Exif) (time.Time, bool) {
	for _, name := range tagPriority {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		s, err := tag.StringVal()
		if err != nil {
			continue
		}
		t, err := time.ParseInLocation(exifTimeLayout, s, time.Local)
		if err != nil {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}
