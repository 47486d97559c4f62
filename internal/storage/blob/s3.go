// Package blob stores candidate pictures in an S3-compatible bucket.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"path"
	"path/filepath"
	"strings"

	"ats-api/config"
	"ats-api/internal/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"
)

// S3Store implements storage.ImageStore on top of S3 or an S3-compatible
// service such as MinIO.
type S3Store struct {
	client        *s3.Client
	bucket        string
	region        string
	endpoint      string
	publicBaseURL string
}

var _ storage.ImageStore = (*S3Store)(nil)

// NewS3Store builds a client from the storage configuration. When an
// endpoint is set, path-style addressing is used.
func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:        client,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		endpoint:      strings.TrimRight(cfg.Endpoint, "/"),
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload writes body under key, overwriting any existing object.
func (s *S3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	if key == "" {
		return fmt.Errorf("%w: object key cannot be empty", storage.ErrValidation)
	}
	if body == nil {
		return fmt.Errorf("%w: body cannot be nil", storage.ErrValidation)
	}
	if contentType == "" {
		contentType = ContentTypeFor(key)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"bucket": s.bucket, "key": key}).WithError(err).Error("failed to put object")
		var netErr net.Error
		if errors.As(err, &netErr) {
			return fmt.Errorf("%w: %w", storage.ErrTransport, err)
		}
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}

	logrus.WithFields(logrus.Fields{"bucket": s.bucket, "key": key}).Info("object uploaded")
	return nil
}

// PublicURL returns the address at which key can be fetched anonymously.
func (s *S3Store) PublicURL(key string) string {
	switch {
	case s.publicBaseURL != "":
		return s.publicBaseURL + "/" + key
	case s.endpoint != "":
		return s.endpoint + "/" + path.Join(s.bucket, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	}
}

// ImageKey names a candidate picture after the candidate, keeping the
// extension of the uploaded file. It fails when the file has no extension.
func ImageKey(candidateID, filename string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: file %q has no extension", storage.ErrValidation, filename)
	}
	return candidateID + "." + strings.ToLower(ext), nil
}

// DetectContentType sniffs the leading bytes of an upload. Content that is
// not a recognised image is typed by the filename extension instead. r is
// rewound before returning.
func DetectContentType(r io.ReadSeeker, filename string) (string, error) {
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload: %w", err)
	}
	if strings.HasPrefix(mtype.String(), "image/") {
		return mtype.String(), nil
	}
	return ContentTypeFor(filename), nil
}

// ContentTypeFor guesses a MIME type from the key's extension.
func ContentTypeFor(key string) string {
	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
