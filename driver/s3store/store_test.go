package s3store_test

import (
	"testing"

	"github.com/Ricky294/perdict"
	"github.com/Ricky294/perdict/driver/internal/aws/s3x"
	. "github.com/Ricky294/perdict/driver/s3store"
	"github.com/Ricky294/perdict/internal/xtesting"
	"github.com/Ricky294/perdict/store"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestStore(t *testing.T) {
	client, bucket := setup(t)
	perdict.RunTests(
		t,
		func(t *testing.T) store.Store {
			return New(client, bucket)
		},
	)
}

func BenchmarkStore(b *testing.B) {
	client, bucket := setup(b)
	perdict.RunBenchmarks(
		b,
		New(client, bucket),
	)
}

func setup(t testing.TB) (*s3.Client, string) {
	client := s3x.NewTestClient(t)
	bucket := xtesting.UniqueName("bucket")

	ctx := xtesting.ContextForCleanup(t)
	t.Cleanup(func() {
		if err := s3x.DeleteBucketIfExists(ctx, client, bucket, nil); err != nil {
			t.Error(err)
		}
	})

	return client, bucket
}
