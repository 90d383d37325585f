// Package s3store provides an implementation of [store.Store] that keeps
// each document in an S3 object.
package s3store

import (
	"context"
	"net/url"

	"github.com/Ricky294/perdict/driver/internal/aws/s3x"
	"github.com/Ricky294/perdict/internal/syncx"
	"github.com/Ricky294/perdict/store"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// documentStore is an implementation of [store.Store] that persists to an
// S3 bucket.
type documentStore struct {
	Client    *s3.Client
	Bucket    string
	OnRequest func(any) []func(*s3.Options)

	createBucketOnce syncx.SucceedOnce
}

// New returns a new [store.Store] that uses the given S3 client to store
// each document as an object in the given bucket.
func New(
	client *s3.Client,
	bucket string,
	options ...Option,
) store.Store {
	if bucket == "" {
		panic("bucket name must not be empty")
	}

	s := &documentStore{
		Client: client,
		Bucket: bucket,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// Option is a functional option that changes the behavior of [New].
type Option func(*documentStore)

// WithRequestHook is an [Option] that configures fn as a pre-request hook.
//
// Before each S3 API request, fn is passed a pointer to the input struct,
// e.g. [s3.GetObjectInput], which it may modify in-place. It may be called
// with any S3 request type. The types of requests used may change in any
// version without notice.
//
// Any functions returned by fn will be applied to the request's options
// before the request is sent.
func WithRequestHook(fn func(any) []func(*s3.Options)) Option {
	return func(s *documentStore) {
		s.OnRequest = fn
	}
}

// Open returns the document with the given name.
func (s *documentStore) Open(ctx context.Context, name string) (store.Document, error) {
	if err := s.createBucketOnce.Do(ctx, s.createBucket); err != nil {
		return nil, err
	}

	return &document{
		client:    s.Client,
		onRequest: s.OnRequest,
		name:      name,
		bucket:    s.Bucket,
		key:       "document/" + url.PathEscape(name),
	}, nil
}

func (s *documentStore) createBucket(ctx context.Context) error {
	return s3x.CreateBucketIfNotExists(
		ctx,
		s.Client,
		s.Bucket,
		s.OnRequest,
	)
}
