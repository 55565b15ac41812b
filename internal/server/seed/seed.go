// Package seed fills an empty record store with mock customers read from a
// JSON file or an S3 object.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/custkeeper/internal/customer"
	"github.com/dmitrijs2005/custkeeper/internal/logging"
)

const s3Scheme = "s3://"

// S3Config holds the connection settings used for s3:// sources.
type S3Config struct {
	Region   string
	User     string
	Password string
	Endpoint string
}

var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
		return c.GetObject(ctx, in, optFns...)
	}
)

// Store is the part of the record store seeding needs.
type Store interface {
	Count(ctx context.Context) (int, error)
}

// Adder persists one record, normally the mutation gateway.
type Adder interface {
	Add(ctx context.Context, r customer.Record) (customer.Record, error)
}

// Seeder loads mock data once, on startup.
type Seeder struct {
	source string
	s3     S3Config
	logger logging.Logger
}

func NewSeeder(source string, s3cfg S3Config, l logging.Logger) *Seeder {
	return &Seeder{source: source, s3: s3cfg, logger: l.With("module", "seed")}
}

// Run adds the seed records through adder when store is empty and returns
// how many were added. A missing seed file is not an error. Records that
// fail validation are skipped.
func (s *Seeder) Run(ctx context.Context, store Store, adder Adder) (int, error) {
	if s.source == "" {
		return 0, nil
	}

	n, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count error: %w", err)
	}
	if n > 0 {
		s.logger.Info(ctx, "Store is not empty, skipping seed", "records", n)
		return 0, nil
	}

	recs, err := s.Load(ctx)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Warn(ctx, "Seed file not found", "source", s.source)
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	added := 0
	for _, r := range recs {
		if _, err := adder.Add(ctx, r); err != nil {
			if kind, _ := customer.FailureKindOf(err); kind == customer.Invalid {
				s.logger.Warn(ctx, "Skipping invalid seed record", "name", r.FullName(), "error", err)
				continue
			}
			return added, fmt.Errorf("seed error: %w", err)
		}
		added++
	}

	s.logger.Info(ctx, "Store seeded", "records", added, "source", s.source)
	return added, nil
}

// Load reads and decodes the seed records.
func (s *Seeder) Load(ctx context.Context) ([]customer.Record, error) {
	var (
		body io.ReadCloser
		err  error
	)
	if strings.HasPrefix(s.source, s3Scheme) {
		body, err = s.openS3(ctx)
	} else {
		body, err = os.Open(s.source)
	}
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var recs []customer.Record
	if err := json.NewDecoder(body).Decode(&recs); err != nil {
		return nil, fmt.Errorf("seed decode error: %w", err)
	}
	for i := range recs {
		recs[i].ID = ""
	}
	return recs, nil
}

func parseS3URL(src string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(src, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 source %q, want s3://bucket/key", src)
	}
	return bucket, key, nil
}

func (s *Seeder) openS3(ctx context.Context) (io.ReadCloser, error) {
	bucket, key, err := parseS3URL(s.source)
	if err != nil {
		return nil, err
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.s3.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.s3.User,
			s.s3.Password,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.s3.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.s3.Endpoint)
			o.UsePathStyle = true
		}
	})

	out, err := getObject(client, ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get error: %w", err)
	}
	return out.Body, nil
}
