package store

import "context"

// WithNamePrefix returns a [Store] that adds the given prefix to all
// document names.
func WithNamePrefix(s Store, prefix string) Store {
	return prefixedStore{s, prefix}
}

// prefixedStore is a [Store] that adds a prefix to all document names.
type prefixedStore struct {
	Store
	prefix string
}

func (s prefixedStore) Open(ctx context.Context, name string) (Document, error) {
	doc, err := s.Store.Open(ctx, s.prefix+name)
	if err != nil {
		return nil, err
	}

	return prefixedDocument{doc, name}, nil
}

// prefixedDocument is a [Document] opened by a [prefixedStore].
type prefixedDocument struct {
	Document
	name string
}

func (d prefixedDocument) Name() string {
	return d.name
}
