// Package mongo contains the concrete implementation of the persistence
// layer using the official MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"accounts/config"
	"accounts/internal/domain/lifecycle"
	"accounts/internal/infra/persistence/model"
)

// Params holds the dependencies for the store handle, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New constructs the database handle: it connects, verifies the connection
// with a ping, ensures the unique email index, and registers disconnect on
// shutdown. The handle is injected explicitly; there is no package-level
// connection state.
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo == nil {
		return nil, errors.New("mongo configuration must be provided")
	}

	connectCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo")
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongo")
	}

	db := client.Database(params.Config.Mongo.Database)

	// Email uniqueness is ultimately enforced here, not by the service's
	// pre-insert check: concurrent creates can both pass the check, and
	// only the index makes the second insert fail.
	if err := ensureEmailIndex(connectCtx, db); err != nil {
		return nil, err
	}

	params.Logger.Info("Connected to mongo", slog.String("database", params.Config.Mongo.Database))

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Disconnecting from mongo")

			return errors.Wrap(client.Disconnect(shutdownCtx), "failed to disconnect from mongo")
		},
	})

	return db, nil
}

func ensureEmailIndex(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(model.UserModel{}.CollectionName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to ensure unique email index")
	}

	return nil
}
