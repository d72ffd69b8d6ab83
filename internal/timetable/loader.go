package timetable

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"nexttrain.org/internal/logging"
)

// Format selects how raw timetable bytes are decoded.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatGTFS Format = "gtfs"
)

// S3Client is the subset of the S3 API the loader needs.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Loader fetches a timetable from a local path, an http(s) URL or an
// s3://bucket/key location and decodes it.
type Loader struct {
	HTTPClient *http.Client
	// S3 is created from the default AWS credential chain on first use when nil.
	S3     S3Client
	Logger *slog.Logger
}

// Load fetches and decodes the timetable at location.
func (l *Loader) Load(ctx context.Context, location string, format Format) (*Timetable, error) {
	start := time.Now()

	data, err := l.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	tt, err := Parse(data, ResolveFormat(format, location))
	if err != nil {
		return nil, fmt.Errorf("error loading timetable from %s: %w", location, err)
	}

	logging.LogOperation(l.Logger, "timetable_loaded",
		slog.String("location", location),
		slog.Int("trips", tt.Len()),
		slog.Int("stations", len(tt.stations)),
		slog.Duration("duration", time.Since(start)))

	return tt, nil
}

// ResolveFormat turns FormatAuto into a concrete format based on the
// location's extension.
func ResolveFormat(format Format, location string) Format {
	if format != FormatAuto && format != "" {
		return format
	}
	path := location
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		path = u.Path
	}
	if strings.HasSuffix(strings.ToLower(path), ".zip") {
		return FormatGTFS
	}
	return FormatJSON
}

// Parse decodes data in the given concrete format.
func Parse(data []byte, format Format) (*Timetable, error) {
	switch format {
	case FormatJSON:
		return ParseJSON(data)
	case FormatGTFS:
		return ParseGTFS(data)
	default:
		return nil, fmt.Errorf("unsupported timetable format %q", format)
	}
}

// Fetch returns the raw bytes stored at location.
func (l *Loader) Fetch(ctx context.Context, location string) ([]byte, error) {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return l.fetchHTTP(ctx, location)
	case strings.HasPrefix(location, "s3://"):
		return l.fetchS3(ctx, location)
	default:
		b, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("error reading local timetable file: %w", err)
		}
		return b, nil
	}
}

func (l *Loader) fetchHTTP(ctx context.Context, location string) ([]byte, error) {
	client := l.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating timetable request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading timetable: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, l.Logger, "timetable_http_body")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading timetable: unexpected status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading timetable response: %w", err)
	}
	return b, nil
}

func (l *Loader) fetchS3(ctx context.Context, location string) ([]byte, error) {
	bucket, key, err := splitS3Location(location)
	if err != nil {
		return nil, err
	}

	if l.S3 == nil {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("error loading AWS configuration: %w", err)
		}
		l.S3 = s3.NewFromConfig(cfg)
	}

	out, err := l.S3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error getting timetable object from S3: %w", err)
	}
	defer logging.SafeCloseWithLogging(out.Body, l.Logger, "timetable_s3_body")

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading timetable object from S3: %w", err)
	}
	return b, nil
}

func splitS3Location(location string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(location, "s3://")
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 location %q, expected s3://bucket/key", location)
	}
	return bucket, key, nil
}
