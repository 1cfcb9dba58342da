package minio_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"med-voice/internal/adapters/storage/minio"
	"med-voice/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
	testBucket    = "recordings"
)

func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     testAccessKey,
			"MINIO_ROOT_PASSWORD": testSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	minioContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := minioContainer.Host(ctx)
	require.NoError(t, err)

	port, err := minioContainer.MappedPort(ctx, "9000")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("%s:%s", host, port.Port())

	cleanup := func() {
		if err := minioContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	time.Sleep(500 * time.Millisecond) // wait for container to be up
	return endpoint, cleanup
}

func createAdapter(t *testing.T, endpoint string, ctx context.Context) *minio.Adapter {
	t.Helper()
	cfg := config.MinioConfig{
		Endpoint:   endpoint,
		AccessKey:  testAccessKey,
		SecretKey:  testSecretKey,
		BucketName: testBucket,
		UseSSL:     false,
	}

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	adapter, err := minio.NewAdapter(ctx, cfg, discardLogger)

	require.NoError(t, err)
	require.NotNil(t, adapter)

	return adapter
}

func TestAdapter_UploadDownloadRemove(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()

	adapter := createAdapter(t, endpoint, ctx)

	localPath := filepath.Join(t.TempDir(), "merged.webm")
	require.NoError(t, os.WriteFile(localPath, []byte("audio-bytes"), 0o644))

	// upload returns a retrievable URL
	url, err := adapter.Upload(ctx, localPath, "audio/merged.webm", "audio/webm")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("http://%s/%s/audio/merged.webm", endpoint, testBucket), url)

	// download round-trips the content
	downloadPath := filepath.Join(t.TempDir(), "downloaded.webm")
	require.NoError(t, adapter.Download(ctx, "audio/merged.webm", downloadPath))
	content, err := os.ReadFile(downloadPath)
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(content))

	// remove makes a later download fail
	require.NoError(t, adapter.Remove(ctx, "audio/merged.webm"))
	err = adapter.Download(ctx, "audio/merged.webm", filepath.Join(t.TempDir(), "gone.webm"))
	assert.Error(t, err)
}

func TestAdapter_Upload_MissingLocalFile(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()

	adapter := createAdapter(t, endpoint, ctx)

	_, err := adapter.Upload(ctx, "/nonexistent/file.webm", "audio/file.webm", "audio/webm")
	assert.Error(t, err)
}

func TestNewAdapter_CreatesBucketOnce(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()

	// a second adapter against the same bucket must not fail
	createAdapter(t, endpoint, ctx)
	createAdapter(t, endpoint, ctx)
}
