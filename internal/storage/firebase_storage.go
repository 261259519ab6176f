package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"

	"lankadrive-backend/internal/logger"
)

// FirebaseStorage stores documents and car photos in a Firebase Cloud
// Storage bucket.
type FirebaseStorage struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

func NewFirebaseStorage(ctx context.Context, app *firebase.App, bucketName string) (*FirebaseStorage, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase storage client: %w", err)
	}

	var bucket *gcs.BucketHandle
	if bucketName != "" {
		bucket, err = client.Bucket(bucketName)
	} else {
		bucket, err = client.DefaultBucket()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open storage bucket: %w", err)
	}

	return &FirebaseStorage{bucket: bucket, bucketName: bucketName}, nil
}

func (s *FirebaseStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	logger.ExternalServiceCall("firebase-storage", "Upload", "key", key)

	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		logger.ExternalServiceResult("firebase-storage", "Upload", err, "key", key)
		return "", fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		logger.ExternalServiceResult("firebase-storage", "Upload", err, "key", key)
		return "", fmt.Errorf("failed to finalize object %s: %w", key, err)
	}

	logger.ExternalServiceResult("firebase-storage", "Upload", nil, "key", key)
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, url.PathEscape(key)), nil
}

func (s *FirebaseStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *FirebaseStorage) DeleteByURL(ctx context.Context, objectURL string) error {
	u, err := url.Parse(objectURL)
	if err != nil {
		return fmt.Errorf("unparseable object url %s: %w", objectURL, err)
	}
	key := strings.TrimPrefix(u.Path, "/"+s.bucketName+"/")
	if key == u.Path || key == "" {
		return fmt.Errorf("object url %s does not belong to bucket %s", objectURL, s.bucketName)
	}
	return s.Delete(ctx, key)
}
