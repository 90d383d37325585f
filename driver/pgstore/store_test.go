package pgstore_test

import (
	"context"
	"testing"

	"github.com/Ricky294/perdict"
	. "github.com/Ricky294/perdict/driver/pgstore"
	"github.com/Ricky294/perdict/store"
	"github.com/dogmatiq/sqltest"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	database, err := sqltest.NewDatabase(ctx, sqltest.PGXDriver, sqltest.PostgreSQL)
	if err != nil {
		t.Fatal(err)
	}

	db, err := database.Open()
	if err != nil {
		t.Fatal(err)
	}

	if err := CreateSchema(ctx, db); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatal(err)
		}

		if err := database.Close(); err != nil {
			t.Fatal(err)
		}
	})

	perdict.RunTests(
		t,
		func(t *testing.T) store.Store {
			return &Store{
				DB: db,
			}
		},
	)
}
