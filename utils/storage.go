package utils

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// Storage hands out presigned PUT URLs so clients upload gig images and
// request attachments straight to the object store.
type Storage struct {
	client     *s3.S3
	bucket     string
	publicBase string
	presignTTL time.Duration
}

type StorageConfig struct {
	AccessKey  string
	SecretKey  string
	Bucket     string
	Region     string
	Endpoint   string
	PublicBase string
	PresignTTL time.Duration
}

func NewStorage(cfg StorageConfig) (*Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(cfg.Region),
		Endpoint:    aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 session: %w", err)
	}
	ttl := cfg.PresignTTL
	if ttl == 0 {
		ttl = 15 * time.Minute
	}
	return &Storage{
		client:     s3.New(sess),
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBase, "/"),
		presignTTL: ttl,
	}, nil
}

// PresignUpload builds a unique object key under the given folder and signs
// a PUT for it. Returns the upload URL, the final public URL and the key.
func (s *Storage) PresignUpload(folder, fileName, contentType string) (uploadURL, publicURL, key string, err error) {
	key = fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), strings.ToLower(path.Ext(fileName)))

	req, _ := s.client.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	uploadURL, err = req.Presign(s.presignTTL)
	if err != nil {
		return "", "", "", fmt.Errorf("presign upload: %w", err)
	}
	return uploadURL, fmt.Sprintf("%s/%s", s.publicBase, key), key, nil
}
