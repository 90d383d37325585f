package s3store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Ricky294/perdict/driver/internal/aws/awsx"
	"github.com/Ricky294/perdict/driver/internal/aws/s3x"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// document is an implementation of [store.Document] that reads and writes
// a single S3 object.
type document struct {
	client    *s3.Client
	onRequest func(any) []func(*s3.Options)
	name      string
	bucket    string
	key       string
}

func (d *document) Name() string {
	return d.name
}

func (d *document) Load(ctx context.Context) ([]byte, error) {
	out, err := awsx.Do(
		ctx,
		d.client.GetObject,
		d.onRequest,
		&s3.GetObjectInput{
			Bucket: aws.String(d.bucket),
			Key:    aws.String(d.key),
		},
	)
	if err != nil {
		if s3x.IsNotExists(err) || s3x.IsNotExistsCode(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot get document object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read document object: %w", err)
	}

	return data, nil
}

func (d *document) Save(ctx context.Context, data []byte) error {
	if _, err := awsx.Do(
		ctx,
		d.client.PutObject,
		d.onRequest,
		&s3.PutObjectInput{
			Bucket: aws.String(d.bucket),
			Key:    aws.String(d.key),
			Body:   bytes.NewReader(data),
		},
	); err != nil {
		return fmt.Errorf("cannot put document object: %w", err)
	}

	return nil
}

func (d *document) Close() error {
	return nil
}
