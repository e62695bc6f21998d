package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"pet-health/internal/adapters/storage/storagetest"
	"pet-health/internal/domain/store"
)

// fakeS3 guarda objetos en memoria por bucket/key.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.putErr != nil {
		return nil, f.putErr
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = b
	return &s3.PutObjectOutput{}, nil
}

func TestSnapshotStore(t *testing.T) {
	fake := newFakeS3()
	storagetest.Run(t, NewWithClient(fake, "pets", "pet-health/"))

	if _, ok := fake.objects["pets/pet-health/pet_health_weight.json"]; !ok {
		t.Fatalf("expected prefixed object key, got %v", keys(fake.objects))
	}
}

func TestSnapshotStore_PutError(t *testing.T) {
	fake := newFakeS3()
	fake.putErr = errors.New("access denied")

	s := NewWithClient(fake, "pets", "")
	err := s.Save(context.Background(), storeSnapshot("pet_health_visits"))
	if err == nil || !errors.Is(err, fake.putErr) {
		t.Fatalf("expected wrapped put error, got %v", err)
	}
}

func TestNew_RequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatalf("expected error without bucket")
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func storeSnapshot(key string) store.Snapshot {
	return store.Snapshot{Version: store.SnapshotVersion, Key: key}
}
