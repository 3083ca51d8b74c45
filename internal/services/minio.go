package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"tokobuku_backend/internal/config"
)

var MinioClient *minio.Client

// ConnectMinio is optional: without MINIO_ENDPOINT image uploads answer 503
// and the rest of the API works normally.
func ConnectMinio() {
	endpoint := config.Get("MINIO_ENDPOINT", "")
	if endpoint == "" {
		log.Println("⚠️  MINIO_ENDPOINT not set — image upload disabled")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Get("MINIO_ACCESS_KEY", ""), config.Get("MINIO_SECRET_KEY", ""), ""),
		Secure: config.Get("MINIO_USE_SSL", "") == "true",
	})
	if err != nil {
		log.Println("⚠️  MinIO not available:", err)
		return
	}

	bucket := config.Get("MINIO_BUCKET", "toko-buku")
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Println("⚠️  MinIO not available:", err)
		return
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Println("⚠️  MinIO bucket creation failed:", err)
			return
		}
		log.Println("🪣 Bucket created:", bucket)
	}

	MinioClient = client
	log.Println("✅ Connected to MinIO:", endpoint)
}

// UploadFile stores one multipart file under a random object name and returns
// its public URL.
func UploadFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if MinioClient == nil {
		return "", fmt.Errorf("minio not initialized")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := config.Get("MINIO_BUCKET", "toko-buku")
	objectName := fmt.Sprintf("products/%s%s", uuid.New().String(), filepath.Ext(file.Filename))

	_, err = MinioClient.PutObject(ctx, bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if config.Get("MINIO_USE_SSL", "") == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, config.Get("MINIO_ENDPOINT", ""), bucket, objectName), nil
}
