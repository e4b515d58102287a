package util

import (
	"bytes"
	"context"
	"fmt"

	"github.com/campusflow/cert-api/common"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var minioClient *minio.Client

// InitMinIO connects the optional object-storage mirror. The mirror keeps an
// off-host copy of rendered certificates; the local certificate directory
// remains the source of truth for resolution and repair.
func InitMinIO() error {
	if common.Config.MinIoEnabled == nil || !*common.Config.MinIoEnabled {
		return nil
	}

	if common.Config.MinIoEndpoint == nil || common.Config.MinIoAccessKey == nil || common.Config.MinIoSecretKey == nil {
		return fmt.Errorf("MinIO configuration is incomplete")
	}

	client, err := minio.New(*common.Config.MinIoEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(*common.Config.MinIoAccessKey, *common.Config.MinIoSecretKey, ""),
		Secure: true,
	})

	if err != nil {
		return fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	minioClient = client
	common.MinIOClient = client
	return nil
}

// MirrorEnabled reports whether the object-storage mirror is configured.
func MirrorEnabled() bool {
	return minioClient != nil
}

// MirrorCertificate uploads a rendered certificate to the mirror bucket under
// its file name.
func MirrorCertificate(ctx context.Context, fileName string, data []byte) error {
	if minioClient == nil {
		return fmt.Errorf("MinIO client not initialized")
	}

	bucketName := *common.Config.BucketCertificate

	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	_, err = minioClient.PutObject(ctx, bucketName, fileName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/pdf",
	})

	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	return nil
}

// RemoveMirroredCertificate deletes the mirrored copy on administrative
// certificate deletion.
func RemoveMirroredCertificate(ctx context.Context, fileName string) error {
	if minioClient == nil {
		return fmt.Errorf("MinIO client not initialized")
	}

	err := minioClient.RemoveObject(ctx, *common.Config.BucketCertificate, fileName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
