// internal/app/system/uploads/uploads.go
package uploads

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Info contains metadata about an uploaded file.
type Info struct {
	Path        string
	FileName    string
	Size        int64
	ContentType string
}

// Upload stores a file under prefix with a unique path and returns the
// upload info. The path is generated as: <prefix>/YYYY/MM/uuid-filename.
func Upload(ctx context.Context, store storage.Store, prefix, filename string, reader io.Reader, size int64, contentType string) (Info, error) {
	now := time.Now().UTC()
	dateDir := fmt.Sprintf("%s/%04d/%02d", prefix, now.Year(), now.Month())
	uniqueName := fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeFilename(filename))
	path := filepath.ToSlash(filepath.Join(dateDir, uniqueName))

	opts := &storage.PutOptions{
		ContentType: contentType,
	}
	if err := store.Put(ctx, path, reader, opts); err != nil {
		return Info{}, fmt.Errorf("failed to upload file: %w", err)
	}

	return Info{
		Path:        path,
		FileName:    filename,
		Size:        size,
		ContentType: contentType,
	}, nil
}

// Cleanup deletes previously uploaded blobs after a failed document
// write, so storage does not accumulate orphans. Delete failures are
// logged and not returned; the blobs are unreferenced either way.
func Cleanup(ctx context.Context, store storage.Store, log *zap.Logger, paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := store.Delete(ctx, p); err != nil {
			log.Warn("failed to delete orphaned upload", zap.String("path", p), zap.Error(err))
		}
	}
}

// sanitizeFilename removes or replaces characters that could be problematic in filenames.
func sanitizeFilename(filename string) string {
	// Get just the filename, not any path components. Base maps "" and
	// path-only inputs to "." or "..", which are not usable names.
	filename = filepath.Base(filename)
	if filename == "." || filename == ".." || filename == "/" {
		return "file"
	}

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		// Truncate but preserve extension if present
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
