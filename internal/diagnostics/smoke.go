package diagnostics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/fittracker/internal/mongodb"
)

// ScratchCollection receives the throwaway document written by SmokeTest.
const ScratchCollection = "connection_test"

// SmokeResult describes a successful SmokeTest run.
type SmokeResult struct {
	ServerVersion string
	Database      string
	ScratchID     any
	Collections   []string
}

// SmokeTest connects to uri, reads the server version, writes and deletes a
// scratch document and lists the collections of the configured database.
func SmokeTest(ctx context.Context, uri string, timeout time.Duration) (*SmokeResult, error) {
	client, db, err := mongodb.Connect(ctx, uri, timeout)
	if err != nil {
		return nil, err
	}
	defer client.Disconnect(context.Background())

	return smokeTest(ctx, db)
}

func smokeTest(ctx context.Context, db *mongo.Database) (*SmokeResult, error) {
	res := &SmokeResult{Database: db.Name()}

	var info struct {
		Version string `bson:"version"`
	}
	if err := db.RunCommand(ctx, bson.D{{Key: "buildInfo", Value: 1}}).Decode(&info); err != nil {
		return nil, fmt.Errorf("build info: %w", err)
	}
	res.ServerVersion = info.Version

	coll := db.Collection(ScratchCollection)
	inserted, err := coll.InsertOne(ctx, bson.D{
		{Key: "test", Value: "connection_successful"},
		{Key: "timestamp", Value: time.Now()},
	})
	if err != nil {
		return nil, fmt.Errorf("write scratch document: %w", err)
	}
	res.ScratchID = inserted.InsertedID

	if _, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: inserted.InsertedID}}); err != nil {
		return nil, fmt.Errorf("delete scratch document: %w", err)
	}

	res.Collections, err = db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	return res, nil
}

// Hints maps a connection failure to the settings worth checking.
func Hints(err error) []string {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "authentication failed"):
		return []string{
			"username and password are correct",
			"the database user exists in Atlas",
			"the user has proper permissions",
		}
	case strings.Contains(msg, "network"), strings.Contains(msg, "timeout"), strings.Contains(msg, "timed out"):
		return []string{
			"Atlas network access allows this host (or 0.0.0.0/0)",
			"your internet connection",
		}
	case strings.Contains(msg, "ssl"), strings.Contains(msg, "tls"), strings.Contains(msg, "x509"):
		return []string{"the connection string includes the correct TLS options"}
	}
	return nil
}
