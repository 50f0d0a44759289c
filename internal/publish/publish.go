package publish

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/oklog/ulid/v2"
)

// ErrPublish wraps every storage failure.
var ErrPublish = errors.New("publish failed")

const jpegQuality = 90

// Publisher stores one page image under key and returns its public URL.
type Publisher interface {
	Publish(ctx context.Context, key string, img image.Image) (string, error)
}

// ObjectKey names a page image of storeID generated at now.
func ObjectKey(storeID string, now time.Time) string {
	return fmt.Sprintf("pos/store/%s/purchase-table/purchase-table-%s-%s.jpg",
		strings.TrimSpace(storeID), now.Format("20060102150405"), strings.ToLower(ulid.Make().String()))
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
