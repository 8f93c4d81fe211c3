package archiver

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FileExt                = ".jsonl.gz"
	LocalTempDirPattern    = "lottostats-archiver-*"
	ArchiverChanBufferSize = 16
)

var ErrFileAlreadyExists = errors.New("file already exists")

// ObjectStore is the subset of the S3 API the archiver uploads with.
type ObjectStore interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archiver streams values sent to WriterCh into a gzipped JSON lines file
// and uploads it to <S3Prefix><Dir>/<RealmName>.jsonl.gz.
type Archiver struct {
	S3Client ObjectStore
	S3Bucket string

	// S3Prefix has no leading slash but typically a trailing one, e.g. "snapshots/".
	S3Prefix string

	RealmName string

	dir          string
	localTempDir string
	writerCh     chan any
	logger       *zerolog.Logger
}

func (a *Archiver) initLogger() {
	if a.logger == nil {
		logger := log.With().
			Str("module", "archiver").
			Str("realm", a.RealmName).
			Logger()
		a.logger = &logger
	}
}

// Key is the object key of the archive once Prepare was called.
func (a *Archiver) Key() string {
	return a.S3Prefix + a.dir + "/" + a.RealmName + FileExt
}

// Prepare readies the archiver to write under dir. It fails with
// ErrFileAlreadyExists when the object is already uploaded.
func (a *Archiver) Prepare(ctx context.Context, dir string) error {
	a.initLogger()

	a.logger.Info().Str("dir", dir).Msg("preparing archiver")
	a.dir = dir
	a.writerCh = make(chan any, ArchiverChanBufferSize)

	if err := a.assertS3FileNonExistence(ctx); err != nil {
		return errors.Wrap(err, "failed to assertFileNonExistence")
	}

	tempDir, err := os.MkdirTemp("", LocalTempDirPattern)
	if err != nil {
		return errors.Wrap(err, "failed to create temporary directory")
	}
	a.localTempDir = tempDir
	a.logger.Trace().Str("localTempDir", a.localTempDir).Msg("created local temp dir")

	return nil
}

func (a *Archiver) assertS3FileNonExistence(ctx context.Context) error {
	key := a.Key()
	object, err := a.S3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) && ae.ErrorCode() == "NotFound" {
			return nil
		}
		return errors.Wrap(err, "failed to invoke HeadObject")
	}
	return errors.Wrapf(ErrFileAlreadyExists, "file %q already exists in s3 with LastModified %q", key, object.LastModified)
}

// Caller MUST close the channel when it's done
func (a *Archiver) WriterCh() chan<- any {
	return a.writerCh
}

// Collect drains WriterCh, then uploads and cleans up. It must run once, on
// a different goroutine from the one sending to WriterCh.
func (a *Archiver) Collect(ctx context.Context) error {
	defer a.Cleanup()

	if err := a.archiveToLocalFile(ctx); err != nil {
		return errors.Wrap(err, "failed to archiveToLocalFile")
	}
	if err := a.uploadToS3(ctx); err != nil {
		return errors.Wrap(err, "failed to uploadToS3")
	}
	a.logger.Info().Str("key", a.Key()).Msg("archive uploaded")
	return nil
}

func (a *Archiver) localFilePath() string {
	return filepath.Join(a.localTempDir, a.RealmName+FileExt)
}

func (a *Archiver) archiveToLocalFile(ctx context.Context) error {
	file, err := os.OpenFile(a.localFilePath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	encoder := json.NewEncoder(gzipWriter)

	for {
		select {
		case <-ctx.Done():
			gzipWriter.Close()
			return ctx.Err()
		case item, ok := <-a.writerCh:
			if !ok {
				return gzipWriter.Close()
			}
			if err := encoder.Encode(item); err != nil {
				gzipWriter.Close()
				return errors.Wrap(err, "failed to encode item")
			}
		}
	}
}

func (a *Archiver) uploadToS3(ctx context.Context) error {
	file, err := os.Open(a.localFilePath())
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return Put(ctx, a.S3Client, a.S3Bucket, a.Key(), file, "application/gzip")
}

func (a *Archiver) Cleanup() error {
	if a.localTempDir == "" {
		return nil
	}
	if err := os.RemoveAll(a.localTempDir); err != nil {
		return errors.Wrap(err, "failed to remove temporary directory")
	}
	return nil
}

// Put uploads body under key.
func Put(ctx context.Context, client ObjectStore, bucket, key string, body io.Reader, contentType string) error {
	if _, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:            aws.String(bucket),
		Key:               aws.String(key),
		Body:              body,
		ContentType:       aws.String(contentType),
		ChecksumAlgorithm: types.ChecksumAlgorithmSha256,
	}); err != nil {
		return errors.Wrapf(err, "failed to invoke PutObject for %s", key)
	}
	return nil
}

// PutBytes is Put for an in-memory body.
func PutBytes(ctx context.Context, client ObjectStore, bucket, key string, body []byte, contentType string) error {
	return Put(ctx, client, bucket, key, bytes.NewReader(body), contentType)
}
