// AngelaMos | 2026
// storage.go

package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/angelamos/streamora/internal/config"
)

// Storage brokers presigned URLs against the object store. Media bytes
// never transit this service: clients PUT straight to the bucket and
// play back from it.
type Storage struct {
	presigner *s3.PresignClient
	bucket    string
	publicURL string
	urlExpire time.Duration
}

func NewStorage(ctx context.Context, cfg config.StorageConfig) (*Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// MinIO and most S3-compatibles want path-style addressing.
			o.UsePathStyle = true
		}
	})

	urlExpire := cfg.URLExpire
	if urlExpire <= 0 {
		urlExpire = 15 * time.Minute
	}

	return &Storage{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		urlExpire: urlExpire,
	}, nil
}

type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
}

// PresignUpload mints a one-shot PUT URL under a date-partitioned key
// and the stable URL the object will have after the client uploads it.
func (s *Storage) PresignUpload(
	ctx context.Context,
	folder, ext string,
) (*UploadTarget, error) {
	key := objectKey(folder, ext)

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.urlExpire))
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &UploadTarget{
		UploadURL: req.URL,
		FileURL:   s.publicURL + "/" + key,
		Key:       key,
	}, nil
}

// KeyForURL maps a stored public object URL back to its bucket key.
// URLs hosted outside the bucket's public base report false.
func (s *Storage) KeyForURL(fileURL string) (string, bool) {
	if s.publicURL == "" {
		return "", false
	}

	key, ok := strings.CutPrefix(fileURL, s.publicURL+"/")
	if !ok || key == "" {
		return "", false
	}

	return key, true
}

func (s *Storage) PresignPlayback(
	ctx context.Context,
	key string,
) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.urlExpire))
	if err != nil {
		return "", fmt.Errorf("presign playback: %w", err)
	}

	return req.URL, nil
}

func objectKey(folder, ext string) string {
	now := time.Now().UTC()
	name := uuid.New().String()
	if ext != "" {
		name += "." + strings.TrimPrefix(ext, ".")
	}
	return fmt.Sprintf("%s/%04d/%02d/%s",
		folder, now.Year(), now.Month(), name)
}
