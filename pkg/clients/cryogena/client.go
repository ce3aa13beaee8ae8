package cryogena

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hasura/go-graphql-client"
)

// CredentialSource provides the bearer credential. It is consulted fresh
// at the start of every remote call; an error short-circuits the call
// before anything reaches the network and is returned to the caller
// unchanged.
type CredentialSource interface {
	Credential() (string, error)
}

// StaticCredential adapts a fixed token string to CredentialSource.
type StaticCredential string

func (s StaticCredential) Credential() (string, error) {
	if s == "" {
		return "", fmt.Errorf("no credential configured")
	}
	return string(s), nil
}

// ClientInterface defines the operations of the Cryogena namespace API.
type ClientInterface interface {
	// Read operations
	UserFiles(ctx context.Context) ([]File, error)
	UserFolders(ctx context.Context) ([]Folder, error)
	FolderContents(ctx context.Context, folderID string) (FolderContents, error)
	FolderInfo(ctx context.Context, folderID string) (FolderInfo, error)
	BinContents(ctx context.Context) (BinContents, error)

	// Workspace mutations
	CreateFolder(ctx context.Context, name string, parentID *string) (Folder, error)
	RenameFile(ctx context.Context, fileID, newName string) (CommandResult, error)
	RenameFolder(ctx context.Context, folderID, newName string) (CommandResult, error)
	DeleteFile(ctx context.Context, fileID string) (CommandResult, error)
	DeleteFolder(ctx context.Context, folderID string) (CommandResult, error)
	MoveFile(ctx context.Context, fileID string, folderID *string) (CommandResult, error)
	MoveFolder(ctx context.Context, folderID string, parentID *string) (CommandResult, error)

	// Bin mutations
	DeleteFileForever(ctx context.Context, fileID string) (CommandResult, error)
	DeleteFolderForever(ctx context.Context, folderID string) (CommandResult, error)

	// Upload (multipart)
	UploadFiles(ctx context.Context, req UploadRequest) (CommandResult, error)
}

// Client talks to the Cryogena GraphQL API. All operations are terminal
// per invocation: no retries, no caching.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	gql        *graphql.Client
}

var _ ClientInterface = (*Client)(nil)

// NewClient creates a new Cryogena client with the given options.
func NewClient(options ...ClientOption) *Client {
	config := DefaultConfig()
	for _, option := range options {
		option(config)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	authed := &http.Client{
		Timeout: httpClient.Timeout,
		Transport: &bearerTransport{
			source:    config.CredentialSource,
			userAgent: config.UserAgent,
			base:      base,
		},
	}

	return &Client{
		config:     config,
		httpClient: authed,
		gql:        graphql.NewClient(config.Endpoint, authed),
	}
}

// bearerTransport injects the Authorization header, reading the
// credential from the source on every request.
type bearerTransport struct {
	source    CredentialSource
	userAgent string
	base      http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.source == nil {
		return nil, fmt.Errorf("credential source is required")
	}
	token, err := t.source.Credential()
	if err != nil {
		return nil, err
	}

	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+token)
	if t.userAgent != "" {
		cloned.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(cloned)
}

// credential checks the credential before any network activity happens.
// The source's error is handed back untouched so callers can recognize a
// missing session and redirect to login.
func (c *Client) credential() (string, error) {
	if c.config.CredentialSource == nil {
		return "", fmt.Errorf("credential source is required")
	}
	return c.config.CredentialSource.Credential()
}

// UserFiles lists the non-deleted files at the root of the namespace.
func (c *Client) UserFiles(ctx context.Context) ([]File, error) {
	if _, err := c.credential(); err != nil {
		return nil, err
	}

	var resp struct {
		UserFiles []File `json:"userFiles"`
	}
	if err := c.gql.Exec(ctx, userFilesQuery, &resp, nil); err != nil {
		return nil, fmt.Errorf("failed to fetch user files: %w", classifyError(err))
	}
	return resp.UserFiles, nil
}

// UserFolders lists the non-deleted folders at the root of the namespace.
func (c *Client) UserFolders(ctx context.Context) ([]Folder, error) {
	if _, err := c.credential(); err != nil {
		return nil, err
	}

	var resp struct {
		UserFolders []Folder `json:"userFolders"`
	}
	if err := c.gql.Exec(ctx, userFoldersQuery, &resp, nil); err != nil {
		return nil, fmt.Errorf("failed to fetch user folders: %w", classifyError(err))
	}
	return resp.UserFolders, nil
}

// FolderContents lists the files and subfolders of one folder.
func (c *Client) FolderContents(ctx context.Context, folderID string) (FolderContents, error) {
	if _, err := c.credential(); err != nil {
		return FolderContents{}, err
	}
	if folderID == "" {
		return FolderContents{}, fmt.Errorf("folder ID is required")
	}

	vars := map[string]interface{}{
		"folderId": folderID,
	}

	var resp struct {
		FolderContents FolderContents `json:"folderContents"`
	}
	if err := c.gql.Exec(ctx, folderContentsQuery, &resp, vars); err != nil {
		return FolderContents{}, fmt.Errorf("failed to fetch folder contents: %w", classifyError(err))
	}
	return resp.FolderContents, nil
}

// FolderInfo fetches the metadata of one folder.
func (c *Client) FolderInfo(ctx context.Context, folderID string) (FolderInfo, error) {
	if _, err := c.credential(); err != nil {
		return FolderInfo{}, err
	}
	if folderID == "" {
		return FolderInfo{}, fmt.Errorf("folder ID is required")
	}

	vars := map[string]interface{}{
		"folderId": folderID,
	}

	var resp struct {
		FolderInfo FolderInfo `json:"folderInfo"`
	}
	if err := c.gql.Exec(ctx, folderInfoQuery, &resp, vars); err != nil {
		return FolderInfo{}, fmt.Errorf("failed to fetch folder info: %w", classifyError(err))
	}
	return resp.FolderInfo, nil
}

// BinContents lists the soft-deleted files and folders.
func (c *Client) BinContents(ctx context.Context) (BinContents, error) {
	if _, err := c.credential(); err != nil {
		return BinContents{}, err
	}

	var resp struct {
		BinContents BinContents `json:"binContents"`
	}
	if err := c.gql.Exec(ctx, binContentsQuery, &resp, nil); err != nil {
		return BinContents{}, fmt.Errorf("failed to fetch bin contents: %w", classifyError(err))
	}
	return resp.BinContents, nil
}

// CreateFolder creates a folder under parentID, or at the root when
// parentID is nil, and returns the server-assigned folder.
func (c *Client) CreateFolder(ctx context.Context, name string, parentID *string) (Folder, error) {
	if _, err := c.credential(); err != nil {
		return Folder{}, err
	}
	if name == "" {
		return Folder{}, fmt.Errorf("folder name is required")
	}

	vars := map[string]interface{}{
		"name":     name,
		"parentId": parentID,
	}

	var resp struct {
		CreateFolder struct {
			Folder Folder `json:"folder"`
		} `json:"createFolder"`
	}
	if err := c.gql.Exec(ctx, createFolderMutation, &resp, vars); err != nil {
		return Folder{}, fmt.Errorf("failed to create folder: %w", classifyError(err))
	}
	return resp.CreateFolder.Folder, nil
}

// RenameFile renames one file.
func (c *Client) RenameFile(ctx context.Context, fileID, newName string) (CommandResult, error) {
	if _, err := c.credential(); err != nil {
		return CommandResult{}, err
	}
	if fileID == "" {
		return CommandResult{}, fmt.Errorf("file ID is required")
	}
	if newName == "" {
		return CommandResult{}, fmt.Errorf("new name is required")
	}

	vars := map[string]interface{}{
		"fileId":  fileID,
		"newName": newName,
	}

	var resp struct {
		RenameFile CommandResult `json:"renameFile"`
	}
	if err := c.gql.Exec(ctx, renameFileMutation, &resp, vars); err != nil {
		return CommandResult{}, fmt.Errorf("failed to rename file: %w", classifyError(err))
	}
	return resp.RenameFile, nil
}

// RenameFolder renames one folder.
func (c *Client) RenameFolder(ctx context.Context, folderID, newName string) (CommandResult, error) {
	if _, err := c.credential(); err != nil {
		return CommandResult{}, err
	}
	if folderID == "" {
		return CommandResult{}, fmt.Errorf("folder ID is required")
	}
	if newName == "" {
		return CommandResult{}, fmt.Errorf("new name is required")
	}

	vars := map[string]interface{}{
		"folderId": folderID,
		"newName":  newName,
	}

	var resp struct {
		RenameFolder CommandResult `json:"renameFolder"`
	}
	if err := c.gql.Exec(ctx, renameFolderMutation, &resp, vars); err != nil {
		return CommandResult{}, fmt.Errorf("failed to rename folder: %w", classifyError(err))
	}
	return resp.RenameFolder, nil
}

// DeleteFile moves one file to the bin.
func (c *Client) DeleteFile(ctx context.Context, fileID string) (CommandResult, error) {
	if _, err := c.credential(); err != nil {
		return CommandResult{}, err
	}
	if fileID == "" {
		return CommandResult{}, fmt.Errorf("file ID is required")
	}

	vars := map[string]interface{}{
		"fileId": fileID,
	}

	var resp struct {
		DeleteFile CommandResult `json:"deleteFile"`
	}
	if err := c.gql.Exec(ctx, deleteFileMutation, &resp, vars); err != nil {
		return CommandResult{}, fmt.Errorf("failed to delete file: %w", classifyError(err))
	}
	return resp.DeleteFile, nil
}

// DeleteFolder moves one folder to the bin.
func (c *Client) DeleteFolder(ctx context.Context, folderID string) (CommandResult, error) {
	if _, err := c.credential(); err != nil {
		return CommandResult{}, err
	}
	if folderID == "" {
		return CommandResult{}, fmt.Errorf("folder ID is required")
	}

	vars := map[string]interface{}{
		"folderId": folderID,
	}

	var resp struct {
		DeleteFolder CommandResult `json:"deleteFolder"`
	}
	if err := c.gql.Exec(ctx, deleteFolderMutation, &resp, vars); err != nil {
		return CommandResult{}, fmt.Errorf("failed to delete folder: %w", classifyError(err))
	}
	return resp.DeleteFolder, nil
}

// MoveFile moves one file into folderID, or to the root when nil.
func (c *Client) MoveFile(ctx context.Context, fileID string, folderID *string) (CommandResult, error) {
	if _, err := c.credential(); err != nil {
		return CommandResult{}, err
	}
	if fileID == "" {
		return CommandResult{}, fmt.Errorf("file ID is required")
	}

	vars := map[string]interface{}{
		"fileId":   fileID,
		"folderId": folderID,
	}

	var resp struct {
		MoveFile CommandResult `json:"moveFile"`
	}
	if err := c.gql.Exec(ctx, moveFileMutation, &resp, vars); err != nil {
		return CommandResult{}, fmt.Errorf("failed to move file: %w", classifyError(err))
	}
	return resp.MoveFile, nil
}

// MoveFolder moves one folder under parentID, or to the root when nil.
func (c *Client) MoveFolder(ctx context.Context, folderID string, parentID *string) (CommandResult, error) {
	if _, err := c.credential(); err != nil {
		return CommandResult{}, err
	}
	if folderID == "" {
		return CommandResult{}, fmt.Errorf("folder ID is required")
	}

	vars := map[string]interface{}{
		"folderId": folderID,
		"parentId": parentID,
	}

	var resp struct {
		MoveFolder CommandResult `json:"moveFolder"`
	}
	if err := c.gql.Exec(ctx, moveFolderMutation, &resp, vars); err != nil {
		return CommandResult{}, fmt.Errorf("failed to move folder: %w", classifyError(err))
	}
	return resp.MoveFolder, nil
}

// DeleteFileForever permanently destroys one file already in the bin.
func (c *Client) DeleteFileForever(ctx context.Context, fileID string) (CommandResult, error) {
	if _, err := c.credential(); err != nil {
		return CommandResult{}, err
	}
	if fileID == "" {
		return CommandResult{}, fmt.Errorf("file ID is required")
	}

	vars := map[string]interface{}{
		"fileId": fileID,
	}

	var resp struct {
		DeleteFileForever CommandResult `json:"deleteFileForever"`
	}
	if err := c.gql.Exec(ctx, deleteFileForeverMutation, &resp, vars); err != nil {
		return CommandResult{}, fmt.Errorf("failed to delete file forever: %w", classifyError(err))
	}
	return resp.DeleteFileForever, nil
}

// DeleteFolderForever permanently destroys one folder already in the bin.
func (c *Client) DeleteFolderForever(ctx context.Context, folderID string) (CommandResult, error) {
	if _, err := c.credential(); err != nil {
		return CommandResult{}, err
	}
	if folderID == "" {
		return CommandResult{}, fmt.Errorf("folder ID is required")
	}

	vars := map[string]interface{}{
		"folderId": folderID,
	}

	var resp struct {
		DeleteFolderForever CommandResult `json:"deleteFolderForever"`
	}
	if err := c.gql.Exec(ctx, deleteFolderForeverMutation, &resp, vars); err != nil {
		return CommandResult{}, fmt.Errorf("failed to delete folder forever: %w", classifyError(err))
	}
	return resp.DeleteFolderForever, nil
}
