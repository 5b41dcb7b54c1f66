package repository

import (
	"context"
	"testing"

	"vibe-commerce/internal/database"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// setupTestDB starts a disposable MongoDB container and returns a database
// handle. Each test gets its own container so tests never share state.
func setupTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := database.Connect(ctx, uri, "testdb")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Disconnect(context.Background(), db)
	})

	return db
}
