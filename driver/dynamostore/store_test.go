package dynamostore_test

import (
	"testing"

	"github.com/Ricky294/perdict"
	"github.com/Ricky294/perdict/driver/internal/aws/dynamox"
	. "github.com/Ricky294/perdict/driver/dynamostore"
	"github.com/Ricky294/perdict/internal/xtesting"
	"github.com/Ricky294/perdict/store"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestStore(t *testing.T) {
	client, table := setup(t)
	perdict.RunTests(
		t,
		func(t *testing.T) store.Store {
			return New(client, table)
		},
	)
}

func BenchmarkStore(b *testing.B) {
	client, table := setup(b)
	perdict.RunBenchmarks(
		b,
		New(client, table),
	)
}

func setup(t testing.TB) (*dynamodb.Client, string) {
	client := dynamox.NewTestClient(t)
	table := "document"

	ctx := xtesting.ContextForCleanup(t)
	t.Cleanup(func() {
		if err := dynamox.DeleteTableIfExists(ctx, client, table); err != nil {
			t.Error(err)
		}
	})

	return client, table
}
