package storage

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/reagentlab/tracker/internal/config"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/repo"
)

type minioStore struct {
	client *minio.Client
	bucket string
}

// New returns nil when no storage endpoint is configured; documents are then only streamed back.
func New(ctx context.Context) repo.ObjectStore {
	conf := config.Global().Storage
	if conf.Endpoint == "" {
		return nil
	}
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		logger.Errorf(ctx, "init minio client endpoint: %s err: %+v", conf.Endpoint, err)
		return nil
	}
	return &minioStore{client: client, bucket: conf.Bucket}
}

func (m *minioStore) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
}

func (m *minioStore) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := m.ensureBucket(ctx); err != nil {
		logger.Errorf(ctx, "ensure bucket %s err: %+v", m.bucket, err)
		return "", code.DocumentStoreErr.WithErr(err)
	}
	info, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.Errorf(ctx, "put object %s err: %+v", key, err)
		return "", code.DocumentStoreErr.WithErr(err)
	}
	return m.bucket + "/" + info.Key, nil
}

func (m *minioStore) Ping(ctx context.Context) error {
	if _, err := m.client.BucketExists(ctx, m.bucket); err != nil {
		return code.DocumentStoreErr.WithErr(err)
	}
	return nil
}
