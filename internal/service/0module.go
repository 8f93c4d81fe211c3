package service

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/lotto-stats/backend/internal/pkg/archiver"
	"github.com/lotto-stats/backend/internal/repo"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		drawSource,
		drawWriter,
		snapshotSaver,
		objectStore,
		messagePublisher,

		NewDraw,
		NewStats,
		NewImport,
		NewHealth,
		NewPublish,
	))
}

func drawSource(r *repo.Draw) DrawSource {
	return r
}

func drawWriter(r *repo.Draw) DrawWriter {
	return r
}

func snapshotSaver(r *repo.Snapshot) SnapshotSaver {
	return r
}

// objectStore keeps a nil client a nil interface.
func objectStore(client *s3.Client) archiver.ObjectStore {
	if client == nil {
		return nil
	}
	return client
}

func messagePublisher(nc *nats.Conn) MessagePublisher {
	return nc
}
