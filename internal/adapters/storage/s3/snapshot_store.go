package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"pet-health/internal/domain/store"
)

// API es el subconjunto del cliente S3 que usamos (permite un fake en tests).
type API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Config struct {
	Region    string
	Bucket    string
	Endpoint  string // opcional (p.ej. MinIO)
	PathStyle bool
	Prefix    string // opcional, p.ej. "pet-health/"
}

// SnapshotStore guarda cada colección como el objeto <prefix><key>.json.
type SnapshotStore struct {
	client API
	bucket string
	prefix string
}

// New construye el cliente con la cadena de credenciales por defecto de AWS.
func New(ctx context.Context, cfg Config) (*SnapshotStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

func NewWithClient(client API, bucket, prefix string) *SnapshotStore {
	return &SnapshotStore{client: client, bucket: bucket, prefix: prefix}
}

func (s *SnapshotStore) objectKey(key string) string {
	return s.prefix + strings.TrimSpace(key) + ".json"
}

func (s *SnapshotStore) Load(ctx context.Context, key string) (store.Snapshot, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return store.Snapshot{Version: store.SnapshotVersion, Key: key}, nil
		}
		return store.Snapshot{}, fmt.Errorf("s3 get %s: %w", key, err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("s3 read %s: %w", key, err)
	}
	return store.UnmarshalSnapshot(b)
}

func (s *SnapshotStore) Save(ctx context.Context, snap store.Snapshot) error {
	payload, err := store.MarshalSnapshot(snap)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(snap.Key)),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", snap.Key, err)
	}
	return nil
}
