package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"quiz_backend/internal/config"
	"quiz_backend/internal/util"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider is the read side of the illustration store. Keys are
// forwarded verbatim; any sanitization is the storage layer's business.
type StorageProvider interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// LocalStorageProvider serves illustrations from a directory, for development.
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Fetch(ctx context.Context, key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(p.Config.LocalPath, key))
}

// MinioStorageProvider reads from a MinIO/S3-compatible bucket.
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	if cfg.MinioBucket == "" {
		return nil, util.ErrBucketNotConfigured
	}
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Region: cfg.MinioRegion,
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Fetch(ctx context.Context, key string) ([]byte, error) {
	obj, err := p.Client.GetObject(ctx, p.Config.MinioBucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

// OSSStorageProvider reads from an Aliyun OSS bucket.
type OSSStorageProvider struct {
	Config *config.StorageConfig
	Client *oss.Client
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	if cfg.OSSBucket == "" {
		return nil, util.ErrBucketNotConfigured
	}
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{Config: cfg, Client: client}, nil
}

func (p *OSSStorageProvider) Fetch(ctx context.Context, key string) ([]byte, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return nil, err
	}

	body, err := bucket.GetObject(key)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

// StorageService fronts the configured provider for illustration fetches.
type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	var provider StorageProvider
	var err error

	switch cfg.Storage.Type {
	case "minio":
		provider, err = NewMinioStorageProvider(&cfg.Storage)
	case "oss":
		provider, err = NewOSSStorageProvider(&cfg.Storage)
	default:
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}
	if err != nil {
		return nil, err
	}

	return &StorageService{Provider: provider}, nil
}

func (s *StorageService) Fetch(ctx context.Context, key string) ([]byte, error) {
	return s.Provider.Fetch(ctx, key)
}
