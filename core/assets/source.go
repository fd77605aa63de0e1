package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"econ-cdn/core/metrics"
	"econ-cdn/core/storage"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrNotFound reports that no asset exists at a resource path.
var ErrNotFound = errors.New("asset not found")

// Source returns the bytes of the asset at a resource path.
type Source interface {
	Asset(resourcePath string) ([]byte, error)
}

// MemorySource is a Source backed by a map of resource path to bytes.
type MemorySource map[string][]byte

// Asset implements Source.
func (m MemorySource) Asset(resourcePath string) ([]byte, error) {
	data, ok := m[resourcePath]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

// StorageSource reads assets from object storage.
type StorageSource struct {
	client  storage.Client
	bucket  string
	prefix  string
	timeout time.Duration
	cache   *expirable.LRU[string, []byte]
	logger  *zap.Logger
}

// NewStorageSource creates a Source reading <prefix><resource path> from bucket.
func NewStorageSource(client storage.Client, bucket string, cfg Config, logger *zap.Logger) *StorageSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = 4096
	}
	return &StorageSource{
		client:  client,
		bucket:  bucket,
		prefix:  cfg.Prefix,
		timeout: cfg.fetchTimeout(),
		cache:   expirable.NewLRU[string, []byte](size, nil, cfg.cacheTTL()),
		logger:  logger,
	}
}

// Asset implements Source. Misses are not cached so newly uploaded assets show up
// without waiting for the TTL.
func (s *StorageSource) Asset(resourcePath string) ([]byte, error) {
	if data, ok := s.cache.Get(resourcePath); ok {
		metrics.AssetCache.WithLabelValues(metrics.ResultHit).Inc()
		return data, nil
	}
	metrics.AssetCache.WithLabelValues(metrics.ResultMiss).Inc()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	data, err := s.fetch(ctx, s.prefix+strings.TrimPrefix(resourcePath, "/"))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("Asset retrieval failed", zap.String("path", resourcePath), zap.Error(err))
		}
		return nil, err
	}

	s.cache.Add(resourcePath, data)
	return data, nil
}

func (s *StorageSource) fetch(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, classify(objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, classify(objectName, err)
	}
	return data, nil
}

// classify maps storage "no such key" responses to ErrNotFound.
func classify(objectName string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%s: %w", objectName, ErrNotFound)
	}
	return fmt.Errorf("failed to read %s: %w", objectName, err)
}

// Purge drops every cached payload.
func (s *StorageSource) Purge() {
	s.cache.Purge()
}
