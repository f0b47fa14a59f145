package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dayumcodes/Calorie-Tracker-App/config"
)

// ImageService stores uploaded images (profile pictures, recipe photos)
// under random names. Files go to the local upload directory by default,
// or to S3 when a bucket is configured.
type ImageService struct {
	uploadDir string
	s3Config  *config.S3Config
}

// NewImageService creates a new ImageService instance. s3Config may be nil
// for local disk storage.
func NewImageService(uploadDir string, s3Config *config.S3Config) *ImageService {
	return &ImageService{
		uploadDir: uploadDir,
		s3Config:  s3Config,
	}
}

// Store writes the image and returns an opaque reference for it: a full
// URL for S3 objects, a bare file name for local files.
func (s *ImageService) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", invalidInput("image data is empty")
	}
	ext := extensionFor(contentType)
	if ext == "" {
		return "", invalidInput("unsupported image type %q", contentType)
	}
	fileName := uuid.New().String() + ext

	if s.s3Config != nil {
		_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.s3Config.BucketName),
			Key:         aws.String(fileName),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload to S3: %w", err)
		}
		publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
		log.Printf("Uploaded image to S3: %s", publicURL)
		return publicURL, nil
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.uploadDir, fileName), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return fileName, nil
}

// Resolve turns a stored reference into a URL clients can fetch. S3
// references are already URLs; local file names are served under /uploads.
func (s *ImageService) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return "/uploads/" + ref
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
