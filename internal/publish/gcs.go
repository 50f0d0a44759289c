package publish

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	gcs "cloud.google.com/go/storage"
)

const contentTypeJPEG = "image/jpeg"

// GCSPublisher uploads page images to a Cloud Storage bucket.
type GCSPublisher struct {
	client     *gcs.Client
	bucket     string
	publicBase string
}

// NewGCSPublisher returns a publisher for bucket. URLs are built from
// publicBase, defaulting to the bucket's storage.googleapis.com address.
func NewGCSPublisher(client *gcs.Client, bucket, publicBase string) (*GCSPublisher, error) {
	if client == nil {
		return nil, errors.New("gcs publisher: client is required")
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("gcs publisher: bucket is required")
	}
	if strings.TrimSpace(publicBase) == "" {
		publicBase = "https://storage.googleapis.com/" + bucket
	}
	return &GCSPublisher{client: client, bucket: bucket, publicBase: publicBase}, nil
}

func (p *GCSPublisher) Publish(ctx context.Context, key string, img image.Image) (string, error) {
	w := p.client.Bucket(p.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentTypeJPEG
	if err := encodeJPEG(w, img); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("%w: encode %s: %v", ErrPublish, key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: upload gs://%s/%s: %v", ErrPublish, p.bucket, key, err)
	}
	return p.URL(key), nil
}

// URL is the public address of key.
func (p *GCSPublisher) URL(key string) string {
	return joinURL(p.publicBase, key)
}
