package archiver

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type memoryObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryObjectStore() *memoryObjectStore {
	return &memoryObjectStore{objects: map[string][]byte{}}
}

func (m *memoryObjectStore) HeadObject(_ context.Context, params *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[*params.Key]; !ok {
		return nil, &smithy.GenericAPIError{Code: "NotFound"}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (m *memoryObjectStore) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[*params.Key] = b
	return &s3.PutObjectOutput{}, nil
}

func TestArchiverRoundTrip(t *testing.T) {
	store := newMemoryObjectStore()
	a := &Archiver{S3Client: store, S3Bucket: "b", S3Prefix: "snapshots/", RealmName: "draws"}
	ctx := context.Background()

	require.NoError(t, a.Prepare(ctx, "01J0000000"))
	assert.Equal(t, "snapshots/01J0000000/draws.jsonl.gz", a.Key())

	go func() {
		ch := a.WriterCh()
		for i := 1; i <= 3; i++ {
			ch <- map[string]int{"draw_number": i}
		}
		close(ch)
	}()
	require.NoError(t, a.Collect(ctx))

	gz, err := gzip.NewReader(bytes.NewReader(store.objects[a.Key()]))
	require.NoError(t, err)
	scanner := bufio.NewScanner(gz)
	var indexes []int64
	for scanner.Scan() {
		indexes = append(indexes, gjson.GetBytes(scanner.Bytes(), "draw_number").Int())
	}
	assert.Equal(t, []int64{1, 2, 3}, indexes)

	again := &Archiver{S3Client: store, S3Bucket: "b", S3Prefix: "snapshots/", RealmName: "draws"}
	assert.ErrorIs(t, again.Prepare(ctx, "01J0000000"), ErrFileAlreadyExists)
}

func TestPutBytes(t *testing.T) {
	store := newMemoryObjectStore()
	require.NoError(t, PutBytes(context.Background(), store, "b", "k.json", []byte(`{}`), "application/json"))
	assert.Equal(t, []byte(`{}`), store.objects["k.json"])
}
