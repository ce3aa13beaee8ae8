package managers

import (
	"context"
	"sync"

	"github.com/code-gritt/cryogena/pkg/clients/cryogena"
)

// fakeClient implements cryogena.ClientInterface with overridable
// behaviors and records every call in order.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	userFilesFn           func(ctx context.Context) ([]cryogena.File, error)
	userFoldersFn         func(ctx context.Context) ([]cryogena.Folder, error)
	folderContentsFn      func(ctx context.Context, folderID string) (cryogena.FolderContents, error)
	folderInfoFn          func(ctx context.Context, folderID string) (cryogena.FolderInfo, error)
	binContentsFn         func(ctx context.Context) (cryogena.BinContents, error)
	createFolderFn        func(ctx context.Context, name string, parentID *string) (cryogena.Folder, error)
	renameFileFn          func(ctx context.Context, fileID, newName string) (cryogena.CommandResult, error)
	renameFolderFn        func(ctx context.Context, folderID, newName string) (cryogena.CommandResult, error)
	deleteFileFn          func(ctx context.Context, fileID string) (cryogena.CommandResult, error)
	deleteFolderFn        func(ctx context.Context, folderID string) (cryogena.CommandResult, error)
	moveFileFn            func(ctx context.Context, fileID string, folderID *string) (cryogena.CommandResult, error)
	moveFolderFn          func(ctx context.Context, folderID string, parentID *string) (cryogena.CommandResult, error)
	deleteFileForeverFn   func(ctx context.Context, fileID string) (cryogena.CommandResult, error)
	deleteFolderForeverFn func(ctx context.Context, folderID string) (cryogena.CommandResult, error)
	uploadFilesFn         func(ctx context.Context, req cryogena.UploadRequest) (cryogena.CommandResult, error)
}

var _ cryogena.ClientInterface = (*fakeClient)(nil)

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeClient) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) UserFiles(ctx context.Context) ([]cryogena.File, error) {
	f.record("UserFiles")
	if f.userFilesFn != nil {
		return f.userFilesFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) UserFolders(ctx context.Context) ([]cryogena.Folder, error) {
	f.record("UserFolders")
	if f.userFoldersFn != nil {
		return f.userFoldersFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) FolderContents(ctx context.Context, folderID string) (cryogena.FolderContents, error) {
	f.record("FolderContents:" + folderID)
	if f.folderContentsFn != nil {
		return f.folderContentsFn(ctx, folderID)
	}
	return cryogena.FolderContents{}, nil
}

func (f *fakeClient) FolderInfo(ctx context.Context, folderID string) (cryogena.FolderInfo, error) {
	f.record("FolderInfo:" + folderID)
	if f.folderInfoFn != nil {
		return f.folderInfoFn(ctx, folderID)
	}
	return cryogena.FolderInfo{ID: folderID}, nil
}

func (f *fakeClient) BinContents(ctx context.Context) (cryogena.BinContents, error) {
	f.record("BinContents")
	if f.binContentsFn != nil {
		return f.binContentsFn(ctx)
	}
	return cryogena.BinContents{}, nil
}

func (f *fakeClient) CreateFolder(ctx context.Context, name string, parentID *string) (cryogena.Folder, error) {
	f.record("CreateFolder:" + name)
	if f.createFolderFn != nil {
		return f.createFolderFn(ctx, name, parentID)
	}
	return cryogena.Folder{ID: "created", Name: name}, nil
}

func (f *fakeClient) RenameFile(ctx context.Context, fileID, newName string) (cryogena.CommandResult, error) {
	f.record("RenameFile:" + fileID)
	if f.renameFileFn != nil {
		return f.renameFileFn(ctx, fileID, newName)
	}
	return cryogena.CommandResult{Success: true, Message: "renamed"}, nil
}

func (f *fakeClient) RenameFolder(ctx context.Context, folderID, newName string) (cryogena.CommandResult, error) {
	f.record("RenameFolder:" + folderID)
	if f.renameFolderFn != nil {
		return f.renameFolderFn(ctx, folderID, newName)
	}
	return cryogena.CommandResult{Success: true, Message: "renamed"}, nil
}

func (f *fakeClient) DeleteFile(ctx context.Context, fileID string) (cryogena.CommandResult, error) {
	f.record("DeleteFile:" + fileID)
	if f.deleteFileFn != nil {
		return f.deleteFileFn(ctx, fileID)
	}
	return cryogena.CommandResult{Success: true, Message: "deleted"}, nil
}

func (f *fakeClient) DeleteFolder(ctx context.Context, folderID string) (cryogena.CommandResult, error) {
	f.record("DeleteFolder:" + folderID)
	if f.deleteFolderFn != nil {
		return f.deleteFolderFn(ctx, folderID)
	}
	return cryogena.CommandResult{Success: true, Message: "deleted"}, nil
}

func (f *fakeClient) MoveFile(ctx context.Context, fileID string, folderID *string) (cryogena.CommandResult, error) {
	f.record("MoveFile:" + fileID)
	if f.moveFileFn != nil {
		return f.moveFileFn(ctx, fileID, folderID)
	}
	return cryogena.CommandResult{Success: true, Message: "moved"}, nil
}

func (f *fakeClient) MoveFolder(ctx context.Context, folderID string, parentID *string) (cryogena.CommandResult, error) {
	f.record("MoveFolder:" + folderID)
	if f.moveFolderFn != nil {
		return f.moveFolderFn(ctx, folderID, parentID)
	}
	return cryogena.CommandResult{Success: true, Message: "moved"}, nil
}

func (f *fakeClient) DeleteFileForever(ctx context.Context, fileID string) (cryogena.CommandResult, error) {
	f.record("DeleteFileForever:" + fileID)
	if f.deleteFileForeverFn != nil {
		return f.deleteFileForeverFn(ctx, fileID)
	}
	return cryogena.CommandResult{Success: true, Message: "deleted forever"}, nil
}

func (f *fakeClient) DeleteFolderForever(ctx context.Context, folderID string) (cryogena.CommandResult, error) {
	f.record("DeleteFolderForever:" + folderID)
	if f.deleteFolderForeverFn != nil {
		return f.deleteFolderForeverFn(ctx, folderID)
	}
	return cryogena.CommandResult{Success: true, Message: "deleted forever"}, nil
}

func (f *fakeClient) UploadFiles(ctx context.Context, req cryogena.UploadRequest) (cryogena.CommandResult, error) {
	f.record("UploadFiles")
	if f.uploadFilesFn != nil {
		return f.uploadFilesFn(ctx, req)
	}
	return cryogena.CommandResult{Success: true, Message: "uploaded"}, nil
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

// recordingNavigator counts login redirects.
type recordingNavigator struct {
	mu        sync.Mutex
	redirects int
}

func (n *recordingNavigator) RedirectToLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.redirects++
}

func (n *recordingNavigator) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.redirects
}
