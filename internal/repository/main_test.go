//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/pos-service/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithMongoDB(context.Background(), m))
}

// setupTestDB connects to the shared container with a database unique to t.
func setupTestDB(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.SharedURI(), testutil.DBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Database.Drop(context.Background())
		_ = db.Close(context.Background())
	})
	return db
}
