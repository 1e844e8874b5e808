package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	TestAccessKey = "minioadmin"
	TestSecretKey = "minioadmin"
	BucketName    = "temp-bucket-for-tests"
)

func setupMinio(t *testing.T) *minio.Client {
	t.Helper()

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     TestAccessKey,
			"MINIO_ROOT_PASSWORD": TestSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start container:", err)
	}

	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	client, err := New(&ClientConfig{
		AccessKey: TestAccessKey,
		SecretKey: TestSecretKey,
		Endpoint:  endpoint,
	})
	if err != nil {
		t.Fatal("Failed to create minio client:", err)
	}

	require.NoError(t, client.EnsureBucket(ctx, BucketName, 5*time.Second))
	// second call must be a no-op
	require.NoError(t, client.EnsureBucket(ctx, BucketName, 5*time.Second))

	return client.MinioClient
}

type corruptReader struct {
	source []byte
	failAt int
	read   int
}

func (r *corruptReader) Read(p []byte) (int, error) {
	if r.read >= r.failAt {
		return 0, errors.New("simulated read error")
	}

	end := r.failAt
	if end > len(r.source) {
		end = len(r.source)
	}

	n := copy(p, r.source[r.read:end])
	r.read += n

	return n, nil
}

func TestUploadFile(t *testing.T) {
	client := setupMinio(t)

	uploader := NewUploader(client, &UploaderConfig{
		Timeout: 3000,
		Bucket:  BucketName,
		Prefix:  "uploads",
	})
	uploader.now = func() time.Time { return time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC) }

	smallFile := []byte("hello, world!")
	largeFile := bytes.Repeat([]byte("x"), 1024*1024*17) // 17MB

	tests := []struct {
		name             string
		body             io.Reader
		fileSize         int64
		expectError      bool
		expectedErrorMsg string
	}{
		{
			name:     "small valid file",
			body:     bytes.NewReader(smallFile),
			fileSize: int64(len(smallFile)),
		},
		{
			name:     "large file multiple parts",
			body:     bytes.NewReader(largeFile),
			fileSize: int64(len(largeFile)),
		},
		{
			name:        "body shorter than declared",
			body:        bytes.NewReader(smallFile),
			fileSize:    int64(len(smallFile)) + 5,
			expectError: true,
		},
		{
			name:             "body longer than declared",
			body:             bytes.NewReader(smallFile),
			fileSize:         int64(len(smallFile)) - 5,
			expectError:      true,
			expectedErrorMsg: "file size mismatch",
		},
		{
			name:        "corrupted stream",
			body:        &corruptReader{source: smallFile, failAt: 5},
			fileSize:    int64(len(smallFile)),
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stored, err := uploader.UploadFile(context.Background(), tc.body, tc.fileSize, "cat.txt", "text/plain")
			if tc.expectError {
				require.Error(t, err)
				if tc.expectedErrorMsg != "" {
					assert.Contains(t, err.Error(), tc.expectedErrorMsg)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.fileSize, stored.Size)
			assert.Equal(t, BucketName, stored.Bucket)
			assert.Equal(t, "cat.txt", stored.Filename)
			assert.True(t, strings.HasPrefix(stored.ObjectKey, "uploads/2026/10/"), stored.ObjectKey)
			assert.True(t, strings.HasSuffix(stored.ObjectKey, "/cat.txt"), stored.ObjectKey)

			stat, err := client.StatObject(context.Background(), BucketName, stored.ObjectKey, minio.StatObjectOptions{})
			require.NoError(t, err, "expected object %s to exist in MinIO", stored.ObjectKey)
			assert.Equal(t, tc.fileSize, stat.Size)
			assert.Equal(t, "text/plain", stat.ContentType)
		})
	}
}

func TestReaderAndRemover(t *testing.T) {
	client := setupMinio(t)
	ctx := context.Background()

	uploader := NewUploader(client, &UploaderConfig{Timeout: 3000, Bucket: BucketName})
	reader := NewReader(client, &ReaderConfig{Timeout: 3000})
	remover := NewRemover(client, &RemoverConfig{Timeout: 3000})

	content := []byte("stored bytes")
	stored, err := uploader.UploadFile(ctx, bytes.NewReader(content), int64(len(content)), "a.txt", "text/plain")
	require.NoError(t, err)

	rc, err := reader.Open(ctx, stored.Bucket, stored.ObjectKey)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, content, got)

	require.NoError(t, remover.Remove(ctx, stored))

	_, err = client.StatObject(ctx, stored.Bucket, stored.ObjectKey, minio.StatObjectOptions{})
	assert.Error(t, err)
}

func TestValidateFileSize(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateFileSize(10, 10, false))
	assert.Error(t, validateFileSize(9, 10, false))
	assert.Error(t, validateFileSize(10, 10, true))
}
