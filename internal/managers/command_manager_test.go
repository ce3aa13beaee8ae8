package managers

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/code-gritt/cryogena/internal/domain"
	"github.com/code-gritt/cryogena/pkg/clients/cryogena"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommandFixture(t *testing.T, client *fakeClient) (*CommandManager, *WorkspaceManager, *recordingNotifier, *recordingNavigator) {
	t.Helper()
	notifier := &recordingNotifier{}
	navigator := &recordingNavigator{}
	workspace := NewWorkspaceManager(WorkspaceManagerDependencies{Client: client, Navigator: navigator})
	commands := NewCommandManager(CommandManagerDependencies{
		Client:    client,
		Workspace: workspace,
		Notifier:  notifier,
		Navigator: navigator,
	})
	return commands, workspace, notifier, navigator
}

func TestCommandManager_CreateFolderEmptyNameIsLocal(t *testing.T) {
	tests := []struct {
		name       string
		folderName string
	}{
		{name: "empty", folderName: ""},
		{name: "whitespace only", folderName: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			commands, _, notifier, _ := newCommandFixture(t, client)

			_, err := commands.CreateFolder(context.Background(), tt.folderName)

			assert.ErrorIs(t, err, domain.ErrEmptyFolderName)
			assert.Empty(t, client.callLog())
			assert.Len(t, notifier.errors, 1)
		})
	}
}

func TestCommandManager_CreateFolderInsertsAtHead(t *testing.T) {
	client := &fakeClient{
		userFoldersFn: func(ctx context.Context) ([]cryogena.Folder, error) {
			return []cryogena.Folder{{ID: "old", Name: "Old"}}, nil
		},
		createFolderFn: func(ctx context.Context, name string, parentID *string) (cryogena.Folder, error) {
			assert.Nil(t, parentID)
			return cryogena.Folder{ID: "new-id", Name: name}, nil
		},
	}
	commands, workspace, notifier, _ := newCommandFixture(t, client)
	require.NoError(t, workspace.Navigate(context.Background(), domain.RootLocation()))

	id, err := commands.CreateFolder(context.Background(), "  Tax Returns  ")
	require.NoError(t, err)
	assert.Equal(t, "new-id", id)

	view := workspace.View()
	require.Len(t, view.Folders, 2)
	assert.Equal(t, "new-id", view.Folders[0].ID)
	assert.Equal(t, "Tax Returns", view.Folders[0].Name)
	assert.Len(t, notifier.successes, 1)
}

func TestCommandManager_CreateFolderUsesBrowsedParent(t *testing.T) {
	var gotParent *string
	client := &fakeClient{
		createFolderFn: func(ctx context.Context, name string, parentID *string) (cryogena.Folder, error) {
			gotParent = parentID
			return cryogena.Folder{ID: "new-id", Name: name}, nil
		},
	}
	commands, workspace, _, _ := newCommandFixture(t, client)
	require.NoError(t, workspace.Navigate(context.Background(), domain.FolderLocation("parent-1")))

	_, err := commands.CreateFolder(context.Background(), "Sub")
	require.NoError(t, err)
	require.NotNil(t, gotParent)
	assert.Equal(t, "parent-1", *gotParent)
}

func TestCommandManager_RenamePatchesSingleEntry(t *testing.T) {
	client := &fakeClient{
		userFilesFn: func(ctx context.Context) ([]cryogena.File, error) {
			return []cryogena.File{{ID: "f1", Name: "a"}, {ID: "f2", Name: "a"}}, nil
		},
	}
	commands, workspace, notifier, _ := newCommandFixture(t, client)
	require.NoError(t, workspace.Navigate(context.Background(), domain.RootLocation()))

	err := commands.Rename(context.Background(), "f1", domain.EntryKindFile, "b")
	require.NoError(t, err)

	view := workspace.View()
	assert.Equal(t, "b", view.Files[0].Name)
	assert.Equal(t, "a", view.Files[1].Name)
	assert.Contains(t, client.callLog(), "RenameFile:f1")
	assert.Len(t, notifier.successes, 1)
}

func TestCommandManager_RenameRejectedLeavesViewUntouched(t *testing.T) {
	client := &fakeClient{
		userFoldersFn: func(ctx context.Context) ([]cryogena.Folder, error) {
			return []cryogena.Folder{{ID: "d1", Name: "Docs"}}, nil
		},
		renameFolderFn: func(ctx context.Context, folderID, newName string) (cryogena.CommandResult, error) {
			return cryogena.CommandResult{Success: false, Message: "Folder not found"}, nil
		},
	}
	commands, workspace, notifier, _ := newCommandFixture(t, client)
	require.NoError(t, workspace.Navigate(context.Background(), domain.RootLocation()))

	err := commands.Rename(context.Background(), "d1", domain.EntryKindFolder, "Other")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Folder not found")

	assert.Equal(t, "Docs", workspace.View().Folders[0].Name)
	assert.Equal(t, []string{"Folder not found"}, notifier.errors)
}

func TestCommandManager_SoftDeleteRemovesEntry(t *testing.T) {
	client := &fakeClient{
		userFilesFn: func(ctx context.Context) ([]cryogena.File, error) {
			return []cryogena.File{{ID: "f1"}, {ID: "f2"}}, nil
		},
	}
	commands, workspace, _, _ := newCommandFixture(t, client)
	require.NoError(t, workspace.Navigate(context.Background(), domain.RootLocation()))

	err := commands.SoftDelete(context.Background(), "f1", domain.EntryKindFile)
	require.NoError(t, err)

	view := workspace.View()
	require.Len(t, view.Files, 1)
	assert.Equal(t, "f2", view.Files[0].ID)
	assert.Contains(t, client.callLog(), "DeleteFile:f1")
}

func TestCommandManager_MoveRemovesEntryFromView(t *testing.T) {
	var gotDestination *string
	client := &fakeClient{
		userFoldersFn: func(ctx context.Context) ([]cryogena.Folder, error) {
			return []cryogena.Folder{{ID: "d1"}}, nil
		},
		moveFolderFn: func(ctx context.Context, folderID string, parentID *string) (cryogena.CommandResult, error) {
			gotDestination = parentID
			return cryogena.CommandResult{Success: true, Message: "moved"}, nil
		},
	}
	commands, workspace, _, _ := newCommandFixture(t, client)
	require.NoError(t, workspace.Navigate(context.Background(), domain.RootLocation()))

	err := commands.Move(context.Background(), "d1", domain.EntryKindFolder, strPtr("dest"))
	require.NoError(t, err)

	require.NotNil(t, gotDestination)
	assert.Equal(t, "dest", *gotDestination)
	assert.Empty(t, workspace.View().Folders)
}

func TestCommandManager_UploadTargetPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		target   UploadTarget
		location domain.Location
		want     *string
	}{
		{
			name:     "override wins over selected",
			target:   UploadTarget{Override: strPtr("override"), Selected: strPtr("selected")},
			location: domain.FolderLocation("browsed"),
			want:     strPtr("override"),
		},
		{
			name:     "selected wins over browsed",
			target:   UploadTarget{Selected: strPtr("selected")},
			location: domain.FolderLocation("browsed"),
			want:     strPtr("selected"),
		},
		{
			name:     "browsed folder is the fallback",
			target:   UploadTarget{},
			location: domain.FolderLocation("browsed"),
			want:     strPtr("browsed"),
		},
		{
			name:     "root when nothing is chosen",
			target:   UploadTarget{},
			location: domain.RootLocation(),
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFolder *string
			client := &fakeClient{
				uploadFilesFn: func(ctx context.Context, req cryogena.UploadRequest) (cryogena.CommandResult, error) {
					gotFolder = req.FolderID
					return cryogena.CommandResult{Success: true, Message: "uploaded"}, nil
				},
			}
			commands, workspace, _, _ := newCommandFixture(t, client)
			require.NoError(t, workspace.Navigate(context.Background(), tt.location))

			files := []cryogena.UploadPart{{Name: "a.txt", Content: strings.NewReader("hello")}}
			err := commands.Upload(context.Background(), files, tt.target)
			require.NoError(t, err)

			if tt.want == nil {
				assert.Nil(t, gotFolder)
			} else {
				require.NotNil(t, gotFolder)
				assert.Equal(t, *tt.want, *gotFolder)
			}
		})
	}
}

func TestCommandManager_UploadRefetchesOnSuccess(t *testing.T) {
	client := &fakeClient{}
	commands, workspace, notifier, _ := newCommandFixture(t, client)
	require.NoError(t, workspace.Navigate(context.Background(), domain.FolderLocation("folder-1")))

	files := []cryogena.UploadPart{{Name: "a.txt", Content: strings.NewReader("hello")}}
	err := commands.Upload(context.Background(), files, UploadTarget{})
	require.NoError(t, err)

	calls := client.callLog()
	assert.Equal(t, "UploadFiles", calls[2])
	assert.Contains(t, calls[3:], "FolderContents:folder-1")
	assert.Len(t, notifier.successes, 1)
	assert.Equal(t, domain.ViewStateReady, workspace.State())
}

func TestCommandManager_UploadWithoutFilesIsLocal(t *testing.T) {
	client := &fakeClient{}
	commands, _, notifier, _ := newCommandFixture(t, client)

	err := commands.Upload(context.Background(), nil, UploadTarget{})

	assert.ErrorIs(t, err, domain.ErrNoFilesSelected)
	assert.Empty(t, client.callLog())
	assert.Len(t, notifier.errors, 1)
}

func TestCommandManager_DuplicateSubmissionRejected(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	client := &fakeClient{
		createFolderFn: func(ctx context.Context, name string, parentID *string) (cryogena.Folder, error) {
			close(started)
			<-release
			return cryogena.Folder{ID: "new-id", Name: name}, nil
		},
	}
	commands, workspace, _, _ := newCommandFixture(t, client)
	require.NoError(t, workspace.Navigate(context.Background(), domain.RootLocation()))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := commands.CreateFolder(context.Background(), "Docs")
		assert.NoError(t, err)
	}()

	<-started
	_, err := commands.CreateFolder(context.Background(), "Docs")
	assert.ErrorIs(t, err, domain.ErrCommandInFlight)

	close(release)
	wg.Wait()
}

func TestCommandManager_DistinctOperationsMayOverlap(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	client := &fakeClient{
		createFolderFn: func(ctx context.Context, name string, parentID *string) (cryogena.Folder, error) {
			if name == "first" {
				close(started)
				<-release
			}
			return cryogena.Folder{ID: "id-" + name, Name: name}, nil
		},
	}
	commands, workspace, _, _ := newCommandFixture(t, client)
	require.NoError(t, workspace.Navigate(context.Background(), domain.RootLocation()))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := commands.CreateFolder(context.Background(), "first")
		assert.NoError(t, err)
	}()

	<-started
	_, err := commands.CreateFolder(context.Background(), "second")
	assert.NoError(t, err)

	close(release)
	wg.Wait()
}

func TestCommandManager_NotAuthenticatedRedirects(t *testing.T) {
	client := &fakeClient{
		createFolderFn: func(ctx context.Context, name string, parentID *string) (cryogena.Folder, error) {
			return cryogena.Folder{}, domain.ErrNotAuthenticated
		},
	}
	commands, workspace, notifier, navigator := newCommandFixture(t, client)
	require.NoError(t, workspace.Navigate(context.Background(), domain.RootLocation()))

	_, err := commands.CreateFolder(context.Background(), "Docs")

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Equal(t, 1, navigator.count())
	assert.Empty(t, notifier.errors)
}

func TestCommandManager_StaleViewIsNotPatched(t *testing.T) {
	client := &fakeClient{
		createFolderFn: func(ctx context.Context, name string, parentID *string) (cryogena.Folder, error) {
			return cryogena.Folder{ID: "new-id", Name: name}, nil
		},
	}
	commands, workspace, _, _ := newCommandFixture(t, client)
	require.NoError(t, workspace.Navigate(context.Background(), domain.RootLocation()))

	// The command captures the root generation, then the user navigates
	// away before the response lands.
	client.createFolderFn = func(ctx context.Context, name string, parentID *string) (cryogena.Folder, error) {
		require.NoError(t, workspace.Navigate(ctx, domain.FolderLocation("elsewhere")))
		return cryogena.Folder{ID: "new-id", Name: name}, nil
	}

	_, err := commands.CreateFolder(context.Background(), "Docs")
	require.NoError(t, err)

	view := workspace.View()
	require.NotNil(t, view)
	assert.Empty(t, view.Folders)
}
