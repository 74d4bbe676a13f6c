package publish

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/imageio"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 10 * time.Second

// Publisher uploads rendered images to an S3-compatible bucket
type Publisher struct {
	client s3iface.S3API
	bucket string
	prefix string
	cdnURL string
	logger core.Logger
}

// NewS3Publisher creates a publisher backed by a real S3 session
func NewS3Publisher(cfg config.PublishConfig, logger core.Logger) (*Publisher, error) {
	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewPublisher(s3.New(sess), cfg, logger), nil
}

// NewPublisher creates a publisher around an existing S3 client
func NewPublisher(client s3iface.S3API, cfg config.PublishConfig, logger core.Logger) *Publisher {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Publisher{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		cdnURL: cfg.CDNURL,
		logger: logger,
	}
}

// Key returns the object key for a file name
func (p *Publisher) Key(name string) string {
	return path.Join(p.prefix, name)
}

// URL returns where an uploaded object can be reached
func (p *Publisher) URL(key string) string {
	if p.cdnURL != "" {
		return strings.TrimSuffix(p.cdnURL, "/") + "/" + key
	}
	return fmt.Sprintf("s3://%s/%s", p.bucket, key)
}

// Publish uploads data under the prefixed name and returns its URL
func (p *Publisher) Publish(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := p.Key(name)
	size := int64(len(data))
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Printf("Uploaded %s to S3 (%d bytes)\n", key, size)
	return p.URL(key), nil
}

// PublishImage encodes img in the given format and uploads it
func (p *Publisher) PublishImage(ctx context.Context, name string, img image.Image, format imageio.Format) (string, error) {
	var buf bytes.Buffer
	if err := imageio.Encode(&buf, img, format); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return p.Publish(ctx, name, buf.Bytes(), format.ContentType())
}
