package cryogena

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(
		WithEndpoint(server.URL),
		WithCredentialSource(StaticCredential("test-token")),
	)
}

func TestClient_UploadFilesMultipartLayout(t *testing.T) {
	var (
		operations string
		fileMap    string
		partNames  []string
		partBodies []string
		auth       string
	)

	client := uploadClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseMultipartForm(1<<20))

		operations = r.FormValue("operations")
		fileMap = r.FormValue("map")
		for i := 0; ; i++ {
			key := fmt.Sprintf("%d", i)
			fileHeaders, ok := r.MultipartForm.File[key]
			if !ok {
				break
			}
			require.Len(t, fileHeaders, 1)
			partNames = append(partNames, fileHeaders[0].Filename)
			file, err := fileHeaders[0].Open()
			require.NoError(t, err)
			content, err := io.ReadAll(file)
			require.NoError(t, err)
			file.Close()
			partBodies = append(partBodies, string(content))
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data": {"uploadFile": {"success": true, "message": "2 file(s) uploaded"}}}`)
	})

	folderID := "folder-1"
	result, err := client.UploadFiles(context.Background(), UploadRequest{
		Files: []UploadPart{
			{Name: "a.txt", Content: strings.NewReader("alpha")},
			{Name: "b.txt", Content: strings.NewReader("beta")},
		},
		FolderID: &folderID,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "2 file(s) uploaded", result.Message)
	assert.Equal(t, "Bearer test-token", auth)

	var ops struct {
		Query     string `json:"query"`
		Variables struct {
			Files    []interface{} `json:"files"`
			FolderID *string       `json:"folderId"`
		} `json:"variables"`
	}
	require.NoError(t, json.Unmarshal([]byte(operations), &ops))
	assert.Contains(t, ops.Query, "uploadFile")
	require.Len(t, ops.Variables.Files, 2)
	assert.Nil(t, ops.Variables.Files[0])
	assert.Nil(t, ops.Variables.Files[1])
	require.NotNil(t, ops.Variables.FolderID)
	assert.Equal(t, "folder-1", *ops.Variables.FolderID)

	var bindings map[string][]string
	require.NoError(t, json.Unmarshal([]byte(fileMap), &bindings))
	assert.Equal(t, map[string][]string{
		"0": {"variables.files.0"},
		"1": {"variables.files.1"},
	}, bindings)

	assert.Equal(t, []string{"a.txt", "b.txt"}, partNames)
	assert.Equal(t, []string{"alpha", "beta"}, partBodies)
}

func TestClient_UploadFilesRootTarget(t *testing.T) {
	var operations string
	client := uploadClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		operations = r.FormValue("operations")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data": {"uploadFile": {"success": true, "message": "1 file(s) uploaded"}}}`)
	})

	_, err := client.UploadFiles(context.Background(), UploadRequest{
		Files: []UploadPart{{Name: "a.txt", Content: strings.NewReader("alpha")}},
	})
	require.NoError(t, err)

	var ops struct {
		Variables struct {
			FolderID *string `json:"folderId"`
		} `json:"variables"`
	}
	require.NoError(t, json.Unmarshal([]byte(operations), &ops))
	assert.Nil(t, ops.Variables.FolderID)
}

func TestClient_UploadFilesRequiresFiles(t *testing.T) {
	requests := int32(0)
	client := uploadClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	})

	_, err := client.UploadFiles(context.Background(), UploadRequest{})

	assert.Error(t, err)
	assert.Zero(t, atomic.LoadInt32(&requests))
}

func TestClient_UploadFilesRemoteError(t *testing.T) {
	client := uploadClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"errors": [{"message": "File too large"}]}`)
	})

	_, err := client.UploadFiles(context.Background(), UploadRequest{
		Files: []UploadPart{{Name: "a.txt", Content: strings.NewReader("alpha")}},
	})
	require.Error(t, err)

	assert.True(t, IsRemoteError(err))
	assert.Contains(t, err.Error(), "File too large")
}

func TestClient_UploadFilesTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	client := NewClient(
		WithEndpoint(endpoint),
		WithCredentialSource(StaticCredential("test-token")),
	)

	_, err := client.UploadFiles(context.Background(), UploadRequest{
		Files: []UploadPart{{Name: "a.txt", Content: strings.NewReader("alpha")}},
	})
	require.Error(t, err)

	assert.True(t, IsTransportError(err))
}

func TestClient_UploadFilesReportedFailure(t *testing.T) {
	client := uploadClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data": {"uploadFile": {"success": false, "message": "Insufficient credits"}}}`)
	})

	result, err := client.UploadFiles(context.Background(), UploadRequest{
		Files: []UploadPart{{Name: "a.txt", Content: strings.NewReader("alpha")}},
	})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "Insufficient credits", result.Message)
}
