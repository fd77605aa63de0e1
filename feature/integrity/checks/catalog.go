package checks

import (
	"context"
	"errors"
	"fmt"

	"econ-cdn/core/catalog"
	"econ-cdn/core/storage"

	"github.com/minio/minio-go/v7"
)

// CatalogReport is the result of a catalog check.
type CatalogReport struct {
	MissingObjects []string       `json:"missing_objects"`
	Valid          bool           `json:"valid"`
	Section        string         `json:"section,omitempty"`
	Key            string         `json:"key,omitempty"`
	Error          string         `json:"error,omitempty"`
	Stats          *catalog.Stats `json:"stats,omitempty"`
}

// CheckCatalog verifies that every catalog object exists and that the sources
// normalize into a snapshot. The snapshot is built for inspection only and is never
// published.
func CheckCatalog(ctx context.Context, client storage.Client, bucket string, cfg catalog.Config) (*CatalogReport, error) {
	report := &CatalogReport{MissingObjects: []string{}}

	for _, name := range cfg.Objects() {
		opts := minio.ListObjectsOptions{
			Prefix:    name,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", name, obj.Err)
			}
			if obj.Key == name {
				found = true
				break
			}
		}
		if !found {
			report.MissingObjects = append(report.MissingObjects, name)
		}
	}
	if len(report.MissingObjects) > 0 {
		report.Error = "catalog objects are missing"
		return report, nil
	}

	src, err := catalog.NewStorageLoader(client, bucket, cfg).Load(ctx)
	if err != nil {
		report.Error = err.Error()
		return report, nil
	}

	snap, err := catalog.Normalize(src)
	if err != nil {
		var ie *catalog.IntegrityError
		if errors.As(err, &ie) {
			report.Section = ie.Section
			report.Key = ie.Key
		}
		report.Error = err.Error()
		return report, nil
	}

	stats := snap.Stats()
	report.Valid = true
	report.Stats = &stats
	return report, nil
}
