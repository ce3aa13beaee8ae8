package cryogena

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// UploadFiles sends one uploadFile mutation carrying N raw file parts,
// encoded per the GraphQL multipart request convention: an `operations`
// part with the mutation and a null placeholder per file, a `map` part
// binding each file part to its variable path, then the file parts keyed
// by their stringified index. The multipart boundary declaration comes
// from the multipart writer; the only other header the client adds is the
// bearer credential.
func (c *Client) UploadFiles(ctx context.Context, req UploadRequest) (CommandResult, error) {
	if _, err := c.credential(); err != nil {
		return CommandResult{}, err
	}
	if len(req.Files) == 0 {
		return CommandResult{}, fmt.Errorf("at least one file is required")
	}

	body, contentType, err := encodeUploadBody(req)
	if err != nil {
		return CommandResult{}, fmt.Errorf("failed to encode upload body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, body)
	if err != nil {
		return CommandResult{}, fmt.Errorf("failed to create upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return CommandResult{}, fmt.Errorf("failed to execute upload request: %w", &TransportError{Err: err})
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return CommandResult{}, fmt.Errorf("failed to read upload response: %w", &TransportError{Err: err})
	}

	var envelope struct {
		Data struct {
			UploadFile CommandResult `json:"uploadFile"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return CommandResult{}, fmt.Errorf("failed to decode upload response: %w",
			&RemoteError{Message: fmt.Sprintf("upload failed with status %d", resp.StatusCode)})
	}

	if len(envelope.Errors) > 0 {
		return CommandResult{}, fmt.Errorf("upload rejected: %w", &RemoteError{Message: envelope.Errors[0].Message})
	}
	if resp.StatusCode >= 400 {
		return CommandResult{}, fmt.Errorf("upload rejected: %w",
			&RemoteError{Message: fmt.Sprintf("upload failed with status %d", resp.StatusCode)})
	}

	return envelope.Data.UploadFile, nil
}

// encodeUploadBody builds the multipart body and returns it with the
// generated content type (including the boundary).
func encodeUploadBody(req UploadRequest) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	operations := map[string]interface{}{
		"query": uploadFileMutation,
		"variables": map[string]interface{}{
			"files":    make([]interface{}, len(req.Files)),
			"folderId": req.FolderID,
		},
	}
	operationsJSON, err := json.Marshal(operations)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal operations: %w", err)
	}
	if err := writer.WriteField("operations", string(operationsJSON)); err != nil {
		return nil, "", fmt.Errorf("failed to write operations part: %w", err)
	}

	fileMap := make(map[string][]string, len(req.Files))
	for i := range req.Files {
		index := strconv.Itoa(i)
		fileMap[index] = []string{"variables.files." + index}
	}
	mapJSON, err := json.Marshal(fileMap)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal file map: %w", err)
	}
	if err := writer.WriteField("map", string(mapJSON)); err != nil {
		return nil, "", fmt.Errorf("failed to write map part: %w", err)
	}

	for i, file := range req.Files {
		part, err := writer.CreateFormFile(strconv.Itoa(i), file.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part %d: %w", i, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write file part %d: %w", i, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return buf, writer.FormDataContentType(), nil
}
