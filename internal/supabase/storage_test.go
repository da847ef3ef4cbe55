package supabase_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"streetart-capture/internal/supabase"
)

func TestStorageClient_PublicURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://example.supabase.co/", "anon-key", "user_added_images")
	require.NoError(t, err)

	url := client.PublicURL("1700000000123-image.jpg")
	assert.Equal(t, "https://example.supabase.co/storage/v1/object/public/user_added_images/1700000000123-image.jpg", url)
}

func TestStorageClient_RequiresBucket(t *testing.T) {
	_, err := supabase.NewStorageClient("https://example.supabase.co", "anon-key", "")
	assert.Error(t, err)
}

func TestStorageClient_Upload(t *testing.T) {
	var (
		gotPath   string
		gotMethod string
		gotBody   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Key":"user_added_images/1-image.jpg"}`))
	}))
	defer srv.Close()

	client, err := supabase.NewStorageClient(srv.URL, "anon-key", "user_added_images")
	require.NoError(t, err)

	err = client.Upload(context.Background(), "1-image.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/storage/v1/object/user_added_images/1-image.jpg", gotPath)
	assert.Equal(t, "jpeg-bytes", string(gotBody))
}
