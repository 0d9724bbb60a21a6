// internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"atletku_backend/internals/configs"
)

var (
	// batas ukuran uploader di controller (tetap dipakai sebagai guard ringan)
	MaxImageUploadSize = int64(5 * 1024 * 1024)
	MaxVideoUploadSize = int64(100 * 1024 * 1024)
)

type OSSService struct {
	bucket *oss.Bucket
	prefix string // contoh: "uploads/"
}

// NewOSSServiceFromEnv membuat service dari ENV (OSS_ENDPOINT, OSS_BUCKET, OSS_ACCESS_KEY_*)
func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	if configs.OSSEndpoint == "" || configs.OSSBucket == "" {
		return nil, errors.New("OSS belum dikonfigurasi (cek OSS_ENDPOINT / OSS_BUCKET)")
	}
	client, err := oss.New(configs.OSSEndpoint, configs.OSSAccessKeyID, configs.OSSAccessSecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(configs.OSSBucket)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}
	return &OSSService{bucket: bucket, prefix: strings.TrimPrefix(prefix, "/")}, nil
}

// objectKey membangun key unik: <prefix><dir>/<uuid><ext>
func (s *OSSService) objectKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext
	dir = strings.Trim(dir, "/")
	if dir == "" {
		return s.prefix + name
	}
	return s.prefix + dir + "/" + name
}

// UploadBytesToDir mengunggah byte mentah dan mengembalikan objectKey
func (s *OSSService) UploadBytesToDir(ctx context.Context, dir, filename, contentType string, data []byte) (string, error) {
	key := s.objectKey(dir, filename)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.CacheControl("public, max-age=31536000"),
	}
	if err := s.bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("oss put %s: %w", key, err)
	}
	return key, nil
}

// UploadFromFormFileToDir mengunggah file multipart apa adanya (tanpa re-encode)
func (s *OSSService) UploadFromFormFileToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("buka file: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", "", fmt.Errorf("baca file: %w", err)
	}

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	key, err := s.UploadBytesToDir(ctx, dir, fh.Filename, ct, buf.Bytes())
	if err != nil {
		return "", "", err
	}
	return key, ct, nil
}

// PublicURL mengembalikan URL publik dari objectKey
func (s *OSSService) PublicURL(key string) string {
	endpoint := strings.TrimPrefix(configs.OSSEndpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return fmt.Sprintf("https://%s.%s/%s", configs.OSSBucket, endpoint, escapeKeepSlash(key))
}

// KeyFromPublicURL membalikkan PublicURL → objectKey (untuk delete)
func (s *OSSService) KeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil {
		return "", err
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", errors.New("URL tidak mengandung object key")
	}
	return key, nil
}

func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := s.KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.bucket.DeleteObject(key, oss.WithContext(ctx))
}

func escapeKeepSlash(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// WithUploadTimeout membungkus ctx dengan timeout upload standar
func WithUploadTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 60*time.Second)
}
