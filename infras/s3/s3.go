package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"

	"slotbook/config"
	"slotbook/infras/otel"
	"slotbook/shared/constant"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"

	errorCodePreconditionFailed  = "PreconditionFailed"
	errorCodeConditionalConflict = "ConditionalRequestConflict"
	errorCodeNoSuchKey           = "NoSuchKey"
	errorCodeNotFound            = "NotFound"
)

var (
	// ErrNotFound is returned by GetObject when the key does not exist yet.
	ErrNotFound = errors.New("s3 object not found")

	// ErrPreconditionFailed is returned by PutObject when the object changed since it was read.
	ErrPreconditionFailed = errors.New("s3 object precondition failed")
)

// Object is the body of an object together with the ETag it was read at.
type Object struct {
	Body []byte
	ETag string
}

type S3 interface {
	GetObject(ctx context.Context, key string) (object Object, err error)
	// PutObject writes body under key. An empty etag means the key must not exist yet,
	// otherwise the write only succeeds if the stored ETag still equals etag.
	PutObject(ctx context.Context, key, etag, contentType string, body []byte) (newETag string, err error)
}

type s3Impl struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) GetObject(ctx context.Context, key string) (object Object, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".GetObject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := svc.Config.External.S3.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
	})

	output, err := svc.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) || hasErrorCode(err, errorCodeNoSuchKey, errorCodeNotFound) {
			return Object{}, ErrNotFound
		}

		log.Error().Err(err).Str("key", key).Msg("failed to get object from S3")

		return Object{}, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer output.Body.Close()

	body, err := io.ReadAll(output.Body)
	if err != nil {
		return Object{}, fmt.Errorf("failed to read object body: %w", err)
	}

	return Object{Body: body, ETag: aws.ToString(output.ETag)}, nil
}

func (svc *s3Impl) PutObject(ctx context.Context, key, etag, contentType string, body []byte) (newETag string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".PutObject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := svc.Config.External.S3.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
	})

	reader := bytes.NewReader(body)
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	}

	if etag == constant.Empty {
		input.IfNoneMatch = aws.String(constant.Asterix)
	} else {
		input.IfMatch = aws.String(etag)
	}

	output, err := svc.Client.PutObject(ctx, input)
	if err != nil {
		if isPreconditionFailure(err) {
			return constant.Empty, ErrPreconditionFailed
		}

		log.Error().Err(err).Str("key", key).Msg("failed to put object to S3")

		return constant.Empty, fmt.Errorf("failed to put object to S3: %w", err)
	}

	return aws.ToString(output.ETag), nil
}

func isPreconditionFailure(err error) bool {
	if hasErrorCode(err, errorCodePreconditionFailed, errorCodeConditionalConflict) {
		return true
	}

	var responseErr interface{ HTTPStatusCode() int }
	if errors.As(err, &responseErr) {
		status := responseErr.HTTPStatusCode()

		return status == http.StatusPreconditionFailed || status == http.StatusConflict
	}

	return false
}

func hasErrorCode(err error, codes ...string) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	for _, code := range codes {
		if apiErr.ErrorCode() == code {
			return true
		}
	}

	return false
}

func New(config *config.Config, otel otel.Otel) S3 {
	endpoint := config.External.S3.APIEndpoint
	accessKeyID := config.External.S3.AccessKeyID
	secretAccessKey := config.External.S3.SecretAccessKey

	staticProvider := credentials.NewStaticCredentialsProvider(
		accessKeyID,
		secretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)

	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != constant.Empty {
			o.BaseEndpoint = aws.String(endpoint)
		}

		o.UsePathStyle = true
		o.Region = config.External.S3.Region
	})

	return &s3Impl{
		Client: s3Client,
		Config: config,
		otel:   otel,
	}
}
