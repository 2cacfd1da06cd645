package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lahmah_server/lib"
	"lahmah_server/structs"

	"github.com/MonkyMars/gecho"
)

// StorageService writes uploaded objects to local disk, one directory per
// bucket under the configured root, and hands back the public URL they
// resolve under.
type StorageService struct {
	logger *gecho.Logger
	config *structs.Config
}

func NewStorageService(logger *gecho.Logger, cfg *structs.Config) *StorageService {
	return &StorageService{
		logger: logger,
		config: cfg,
	}
}

// StoredObject describes a completed upload
type StoredObject struct {
	Bucket    string `json:"bucket"`
	Name      string `json:"name"`
	PublicURL string `json:"public_url"`
}

// Save stores the object under a randomized basename that keeps the
// original extension, so concurrent uploads of files with the same name
// never collide.
func (ss *StorageService) Save(bucket, originalName string, content io.Reader) (*StoredObject, error) {
	if bucket == "" {
		bucket = ss.config.Storage.DefaultBucket
	}
	if !validBucketName(bucket) {
		return nil, fmt.Errorf("invalid bucket name %q", bucket)
	}

	name, err := lib.RandomObjectName(originalName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate object name: %w", err)
	}

	dir := filepath.Join(ss.config.Storage.Root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare bucket %s: %w", bucket, err)
	}

	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create object %s: %w", name, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write object %s: %w", name, err)
	}

	ss.logger.Info("Stored object",
		gecho.Field("bucket", bucket),
		gecho.Field("name", name),
	)

	return &StoredObject{
		Bucket:    bucket,
		Name:      name,
		PublicURL: ss.PublicURL(bucket, name),
	}, nil
}

// Delete removes an object; a missing object is not an error.
func (ss *StorageService) Delete(bucket, name string) error {
	if !validBucketName(bucket) || name != filepath.Base(name) {
		return fmt.Errorf("invalid object path %s/%s", bucket, name)
	}
	err := os.Remove(filepath.Join(ss.config.Storage.Root, bucket, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PublicURL returns the URL an object is served under
func (ss *StorageService) PublicURL(bucket, name string) string {
	base := strings.TrimSuffix(ss.config.Storage.PublicBaseURL, "/")
	return base + "/" + bucket + "/" + name
}

// Root exposes the storage root for the static file handler
func (ss *StorageService) Root() string {
	return ss.config.Storage.Root
}

// validBucketName permits simple lowercase identifiers so a bucket can
// never escape the storage root.
func validBucketName(bucket string) bool {
	if bucket == "" {
		return false
	}
	for _, r := range bucket {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
