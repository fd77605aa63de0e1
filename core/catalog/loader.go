package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"econ-cdn/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageLoader reads the catalog sources from object storage.
// It remembers the ETags of the last successful load and reports ErrNotModified
// while they stay the same.
type StorageLoader struct {
	client storage.Client
	bucket string
	cfg    Config

	mu    sync.Mutex
	etags map[string]string
}

// NewStorageLoader creates a loader for the objects named in cfg.
func NewStorageLoader(client storage.Client, bucket string, cfg Config) *StorageLoader {
	return &StorageLoader{client: client, bucket: bucket, cfg: cfg}
}

// Load implements Loader.
func (l *StorageLoader) Load(ctx context.Context) (Sources, error) {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.Timeout())
	defer cancel()

	etags, err := l.stat(ctx)
	if err != nil {
		return Sources{}, err
	}

	l.mu.Lock()
	unchanged := l.etags != nil && sameETags(l.etags, etags)
	l.mu.Unlock()
	if unchanged {
		return Sources{}, ErrNotModified
	}

	itemsData, err := l.read(ctx, l.cfg.ItemsGameObject)
	if err != nil {
		return Sources{}, err
	}
	items, err := DecodeTree(itemsData)
	if err != nil {
		return Sources{}, fmt.Errorf("%s: %w", l.cfg.ItemsGameObject, err)
	}

	locData, err := l.read(ctx, l.cfg.LocalizationObject)
	if err != nil {
		return Sources{}, err
	}
	loc, err := DecodeTree(locData)
	if err != nil {
		return Sources{}, fmt.Errorf("%s: %w", l.cfg.LocalizationObject, err)
	}

	manifestData, err := l.read(ctx, l.cfg.ManifestObject)
	if err != nil {
		return Sources{}, err
	}
	manifest, err := ParseManifest(bytes.NewReader(manifestData))
	if err != nil {
		return Sources{}, fmt.Errorf("%s: %w", l.cfg.ManifestObject, err)
	}

	l.mu.Lock()
	l.etags = etags
	l.mu.Unlock()

	return Sources{ItemsGame: items, Localization: loc, Manifest: manifest}, nil
}

// Reset forgets the remembered ETags so the next Load reads every object.
func (l *StorageLoader) Reset() {
	l.mu.Lock()
	l.etags = nil
	l.mu.Unlock()
}

// stat returns the ETag of every source object, failing when one is missing.
func (l *StorageLoader) stat(ctx context.Context) (map[string]string, error) {
	etags := make(map[string]string, 3)
	for _, name := range l.cfg.Objects() {
		opts := minio.ListObjectsOptions{
			Prefix:    name,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range l.client.ListObjects(ctx, l.bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", name, obj.Err)
			}
			if obj.Key == name {
				etags[name] = obj.ETag
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("catalog object %s not found in bucket %s", name, l.bucket)
		}
	}
	return etags, nil
}

func (l *StorageLoader) read(ctx context.Context, name string) ([]byte, error) {
	obj, err := l.client.GetObject(ctx, l.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func sameETags(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if v == "" || b[k] != v {
			return false
		}
	}
	return true
}
