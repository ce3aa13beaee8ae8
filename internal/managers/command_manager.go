package managers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/code-gritt/cryogena/internal/domain"
	"github.com/code-gritt/cryogena/pkg/clients/cryogena"

	"github.com/rs/zerolog/log"
)

// CommandManager dispatches mutating operations against the remote
// namespace and patches the workspace view only after the remote confirms.
// Each distinct operation key may have at most one request in flight.
type CommandManager struct {
	client    cryogena.ClientInterface
	workspace *WorkspaceManager
	notifier  domain.Notifier
	navigator domain.Navigator

	mu       sync.Mutex
	inflight map[string]domain.PendingOperation
}

type CommandManagerDependencies struct {
	Client    cryogena.ClientInterface
	Workspace *WorkspaceManager
	Notifier  domain.Notifier
	Navigator domain.Navigator
}

func NewCommandManager(deps CommandManagerDependencies) *CommandManager {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = domain.NopNotifier{}
	}
	navigator := deps.Navigator
	if navigator == nil {
		navigator = domain.NopNavigator{}
	}
	return &CommandManager{
		client:    deps.Client,
		workspace: deps.Workspace,
		notifier:  notifier,
		navigator: navigator,
		inflight:  make(map[string]domain.PendingOperation),
	}
}

// UploadTarget resolves where an upload lands. An explicit override wins,
// then a folder selected in a picker, then the folder currently browsed.
// All nil means the root.
type UploadTarget struct {
	Override *string
	Selected *string
}

// begin registers an operation as in flight and returns its release
// callback. A second submission for the same operation key is rejected
// before any request is issued.
func (m *CommandManager) begin(kind domain.OperationKind, targets ...string) (func(), error) {
	key := string(kind) + ":" + strings.Join(targets, ",")

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.inflight[key]; exists {
		return nil, domain.ErrCommandInFlight
	}
	m.inflight[key] = domain.NewPendingOperation(kind, targets...)

	return func() {
		m.mu.Lock()
		delete(m.inflight, key)
		m.mu.Unlock()
	}, nil
}

// fail surfaces a command failure to the user and redirects to login when
// the credential is the problem.
func (m *CommandManager) fail(operation string, err error) error {
	if errors.Is(err, domain.ErrNotAuthenticated) {
		m.navigator.RedirectToLogin()
		return err
	}
	log.Error().Err(err).Str("operation", operation).Msg("command failed")
	m.notifier.Error(err.Error())
	return err
}

// CreateFolder creates a folder inside the currently browsed location and
// inserts it at the head of the folder sequence on confirmation. The
// returned id lets a chained upload target the new folder immediately.
func (m *CommandManager) CreateFolder(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		m.notifier.Error("folder name cannot be empty")
		return "", domain.ErrEmptyFolderName
	}

	release, err := m.begin(domain.OperationCreateFolder, name)
	if err != nil {
		return "", err
	}
	defer release()

	location := m.workspace.Location()
	gen := m.workspace.Generation()

	folder, err := m.client.CreateFolder(ctx, name, location.FolderID)
	if err != nil {
		return "", m.fail("create folder", err)
	}

	m.workspace.InsertFolderHead(gen, mapFolder(folder, location.FolderID))
	m.notifier.Success(fmt.Sprintf("folder %q created", folder.Name))
	return folder.ID, nil
}

// Rename renames one file or folder and patches exactly that entry in the
// active view.
func (m *CommandManager) Rename(ctx context.Context, id string, kind domain.EntryKind, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		m.notifier.Error("name cannot be empty")
		return domain.ErrEmptyFolderName
	}

	release, err := m.begin(domain.OperationRename, id)
	if err != nil {
		return err
	}
	defer release()

	gen := m.workspace.Generation()

	var result cryogena.CommandResult
	switch kind {
	case domain.EntryKindFile:
		result, err = m.client.RenameFile(ctx, id, newName)
	default:
		result, err = m.client.RenameFolder(ctx, id, newName)
	}
	if err != nil {
		return m.fail("rename", err)
	}
	if !result.Success {
		m.notifier.Error(result.Message)
		return fmt.Errorf("rename rejected: %s", result.Message)
	}

	m.workspace.RenameEntry(gen, id, kind, newName)
	m.notifier.Success(result.Message)
	return nil
}

// SoftDelete moves one file or folder to the bin and removes it from the
// active view. Folder contents follow their folder server side.
func (m *CommandManager) SoftDelete(ctx context.Context, id string, kind domain.EntryKind) error {
	release, err := m.begin(domain.OperationSoftDelete, id)
	if err != nil {
		return err
	}
	defer release()

	gen := m.workspace.Generation()

	var result cryogena.CommandResult
	switch kind {
	case domain.EntryKindFile:
		result, err = m.client.DeleteFile(ctx, id)
	default:
		result, err = m.client.DeleteFolder(ctx, id)
	}
	if err != nil {
		return m.fail("delete", err)
	}
	if !result.Success {
		m.notifier.Error(result.Message)
		return fmt.Errorf("delete rejected: %s", result.Message)
	}

	m.workspace.RemoveEntry(gen, id, kind)
	m.notifier.Success(result.Message)
	return nil
}

// Move reparents one file or folder. A nil destination moves to the root.
// The entry leaves the active view once confirmed.
func (m *CommandManager) Move(ctx context.Context, id string, kind domain.EntryKind, destination *string) error {
	release, err := m.begin(domain.OperationMove, id)
	if err != nil {
		return err
	}
	defer release()

	gen := m.workspace.Generation()

	var result cryogena.CommandResult
	switch kind {
	case domain.EntryKindFile:
		result, err = m.client.MoveFile(ctx, id, destination)
	default:
		result, err = m.client.MoveFolder(ctx, id, destination)
	}
	if err != nil {
		return m.fail("move", err)
	}
	if !result.Success {
		m.notifier.Error(result.Message)
		return fmt.Errorf("move rejected: %s", result.Message)
	}

	m.workspace.RemoveEntry(gen, id, kind)
	m.notifier.Success(result.Message)
	return nil
}

// Upload sends the given files in a single multipart request and refetches
// the browsed location on success. Uploads are refreshed rather than
// patched because the server derives names, types and URLs.
func (m *CommandManager) Upload(ctx context.Context, files []cryogena.UploadPart, target UploadTarget) error {
	if len(files) == 0 {
		m.notifier.Error("no files selected")
		return domain.ErrNoFilesSelected
	}

	folderID := target.Override
	if folderID == nil {
		folderID = target.Selected
	}
	if folderID == nil {
		folderID = m.workspace.Location().FolderID
	}

	targets := make([]string, 0, len(files))
	for _, f := range files {
		targets = append(targets, f.Name)
	}
	release, err := m.begin(domain.OperationUpload, targets...)
	if err != nil {
		return err
	}
	defer release()

	result, err := m.client.UploadFiles(ctx, cryogena.UploadRequest{Files: files, FolderID: folderID})
	if err != nil {
		return m.fail("upload", err)
	}
	if !result.Success {
		m.notifier.Error(result.Message)
		return fmt.Errorf("upload rejected: %s", result.Message)
	}

	m.notifier.Success(result.Message)
	return m.workspace.Navigate(ctx, m.workspace.Location())
}
