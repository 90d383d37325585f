// Package dynamostore provides an implementation of [store.Store] that
// keeps each document in a DynamoDB item.
package dynamostore

import (
	"context"

	"github.com/Ricky294/perdict/driver/internal/aws/dynamox"
	"github.com/Ricky294/perdict/internal/syncx"
	"github.com/Ricky294/perdict/store"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	// nameAttr is the name of the partition-key attribute that holds the
	// document name.
	nameAttr = "Name"

	// dataAttr is the name of the attribute that holds the document's
	// serialized content.
	dataAttr = "Data"
)

// documentStore is an implementation of [store.Store] that persists to a
// DynamoDB table.
type documentStore struct {
	Client    *dynamodb.Client
	Table     string
	OnRequest func(any) []func(*dynamodb.Options)

	createTableOnce syncx.SucceedOnce
}

// New returns a new [store.Store] that uses the given DynamoDB client to
// store each document as an item in the given table.
func New(
	client *dynamodb.Client,
	table string,
	options ...Option,
) store.Store {
	if table == "" {
		panic("table name must not be empty")
	}

	s := &documentStore{
		Client: client,
		Table:  table,
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
// Before each DynamoDB API request, fn is passed a pointer to the input
// struct, e.g. [dynamodb.GetItemInput], which it may modify in-place. It
// may be called with any DynamoDB request type. The types of requests used
// may change in any version without notice.
//
// Any functions returned by fn will be applied to the request's options
// before the request is sent.
func WithRequestHook(fn func(any) []func(*dynamodb.Options)) Option {
	return func(s *documentStore) {
		s.OnRequest = fn
	}
}

// Open returns the document with the given name.
func (s *documentStore) Open(ctx context.Context, name string) (store.Document, error) {
	if err := s.createTableOnce.Do(ctx, s.createTable); err != nil {
		return nil, err
	}

	return &document{
		client:    s.Client,
		onRequest: s.OnRequest,
		table:     s.Table,
		name:      name,
	}, nil
}

func (s *documentStore) createTable(ctx context.Context) error {
	return dynamox.CreateTableIfNotExists(
		ctx,
		s.Client,
		s.Table,
		nameAttr,
		s.OnRequest,
	)
}
