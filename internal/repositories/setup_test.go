package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/fittracker/internal/mongodb"
)

// setupMongoContainer starts a throwaway MongoDB and returns a database with
// the service indexes in place.
func setupMongoContainer(t *testing.T) (*mongo.Database, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	uri := fmt.Sprintf("mongodb://%s:%s/fittracker_test", host, port.Port())

	var (
		client *mongo.Client
		db     *mongo.Database
	)
	for i := 0; i < 10; i++ {
		client, db, err = mongodb.Connect(ctx, uri, 5*time.Second)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, mongodb.EnsureIndexes(ctx, db))

	teardown := func() {
		client.Disconnect(context.Background())
		container.Terminate(context.Background())
	}

	return db, teardown
}
