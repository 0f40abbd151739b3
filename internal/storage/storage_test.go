package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/uploads/"})
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "cv/abc.pdf", strings.NewReader("%PDF-1.4"), "application/pdf"))

	exists, err := s.Exists(ctx, "cv/abc.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := s.Get(ctx, "cv/abc.pdf")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	url, err := s.GetURL(ctx, "cv/abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/cv/abc.pdf", url)

	require.NoError(t, s.Delete(ctx, "cv/abc.pdf"))
	exists, err = s.Exists(ctx, "cv/abc.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	// повторное удаление не ошибка
	assert.NoError(t, s.Delete(ctx, "cv/abc.pdf"))
}

func TestLocalStorage_StaysInsideBasePath(t *testing.T) {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	url, err := s.GetURL(context.Background(), "../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/etc/passwd", url)

	_, err = s.GetURL(context.Background(), "..")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestNewStorage(t *testing.T) {
	s, err := NewStorage(Config{Type: "local", BasePath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	_, err = NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)

	_, err = NewStorage(Config{Type: "s3"})
	assert.Error(t, err, "bucket is required")
}

func TestS3BaseURL(t *testing.T) {
	assert.Equal(t, "https://cvs.s3.eu-central-1.amazonaws.com", s3BaseURL(Config{Bucket: "cvs"}, "eu-central-1"))
	assert.Equal(t, "http://minio:9000/cvs", s3BaseURL(Config{Bucket: "cvs", Endpoint: "http://minio:9000/"}, "us-east-1"))
	assert.Equal(t, "https://cdn.example.com", s3BaseURL(Config{Bucket: "cvs", BaseURL: "https://cdn.example.com/"}, "us-east-1"))
}
