package managers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/code-gritt/cryogena/internal/domain"
	"github.com/code-gritt/cryogena/pkg/clients/cryogena"

	"github.com/rs/zerolog/log"
)

// BinManager owns the soft-deleted listing and the multi-select state
// over it. Permanent deletion runs one request per selected item, files
// before folders, and stops at the first failure so the remaining
// selection stays intact.
type BinManager struct {
	client    cryogena.ClientInterface
	notifier  domain.Notifier
	navigator domain.Navigator

	mu              sync.Mutex
	state           domain.ViewState
	files           []domain.File
	folders         []domain.Folder
	generation      uint64
	selectedFiles   []string
	selectedFolders []string
	deleting        bool
}

type BinManagerDependencies struct {
	Client    cryogena.ClientInterface
	Notifier  domain.Notifier
	Navigator domain.Navigator
}

func NewBinManager(deps BinManagerDependencies) *BinManager {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = domain.NopNotifier{}
	}
	navigator := deps.Navigator
	if navigator == nil {
		navigator = domain.NopNavigator{}
	}
	return &BinManager{
		client:    deps.Client,
		notifier:  notifier,
		navigator: navigator,
		state:     domain.ViewStateLoading,
	}
}

// Refresh replaces the bin listing and clears any selection, since the
// selected ids may no longer exist.
func (m *BinManager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	m.generation++
	gen := m.generation
	m.state = domain.ViewStateLoading
	m.mu.Unlock()

	contents, err := m.client.BinContents(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation {
		log.Debug().Msg("discarding superseded bin refresh")
		return nil
	}

	if err != nil {
		m.state = domain.ViewStateError
		m.files = nil
		m.folders = nil
		m.selectedFiles = nil
		m.selectedFolders = nil
		if errors.Is(err, domain.ErrNotAuthenticated) {
			m.navigator.RedirectToLogin()
			return err
		}
		log.Error().Err(err).Msg("bin refresh failed")
		return fmt.Errorf("failed to fetch bin contents: %w", err)
	}

	m.files = mapFiles(contents.Files, nil)
	m.folders = mapFolders(contents.Folders, nil)
	m.selectedFiles = nil
	m.selectedFolders = nil
	m.state = domain.ViewStateReady
	return nil
}

// State reports the bin lifecycle state.
func (m *BinManager) State() domain.ViewState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Contents returns a snapshot of the bin listing.
func (m *BinManager) Contents() ([]domain.File, []domain.Folder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.File(nil), m.files...), append([]domain.Folder(nil), m.folders...)
}

// ToggleFile adds the file to the selection, or removes it when already
// selected. Selection order is the order of first selection.
func (m *BinManager) ToggleFile(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedFiles = toggle(m.selectedFiles, id)
}

// ToggleFolder adds the folder to the selection, or removes it when
// already selected.
func (m *BinManager) ToggleFolder(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedFolders = toggle(m.selectedFolders, id)
}

func toggle(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

// Selection returns the selected file and folder ids in selection order.
func (m *BinManager) Selection() (files []string, folders []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.selectedFiles...), append([]string(nil), m.selectedFolders...)
}

// ClearSelection empties the selection without touching the listing.
func (m *BinManager) ClearSelection() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedFiles = nil
	m.selectedFolders = nil
}

// PermanentDelete irreversibly deletes every selected item, one request
// at a time, selected files first and then selected folders. Each
// confirmed deletion is removed from the listing and the selection
// immediately, so a mid-batch failure leaves exactly the unprocessed
// items selected.
func (m *BinManager) PermanentDelete(ctx context.Context) error {
	m.mu.Lock()
	if m.deleting {
		m.mu.Unlock()
		return domain.ErrCommandInFlight
	}
	if m.state != domain.ViewStateReady {
		m.mu.Unlock()
		return domain.ErrNotReady
	}
	if len(m.selectedFiles) == 0 && len(m.selectedFolders) == 0 {
		m.mu.Unlock()
		m.notifier.Error("nothing selected")
		return domain.ErrEmptySelection
	}
	m.deleting = true
	gen := m.generation
	fileIDs := append([]string(nil), m.selectedFiles...)
	folderIDs := append([]string(nil), m.selectedFolders...)
	m.mu.Unlock()

	op := domain.NewPendingOperation(domain.OperationPermanentDelete, append(fileIDs, folderIDs...)...)
	log.Debug().Str("operation_id", op.ID).Int("items", len(op.TargetIDs)).Msg("starting permanent delete batch")

	defer func() {
		m.mu.Lock()
		m.deleting = false
		m.mu.Unlock()
	}()

	for _, id := range fileIDs {
		result, err := m.client.DeleteFileForever(ctx, id)
		if err != nil {
			return m.fail(err)
		}
		if !result.Success {
			m.notifier.Error(result.Message)
			return fmt.Errorf("permanent delete rejected: %s", result.Message)
		}
		m.removeDeleted(gen, id, domain.EntryKindFile)
	}

	for _, id := range folderIDs {
		result, err := m.client.DeleteFolderForever(ctx, id)
		if err != nil {
			return m.fail(err)
		}
		if !result.Success {
			m.notifier.Error(result.Message)
			return fmt.Errorf("permanent delete rejected: %s", result.Message)
		}
		m.removeDeleted(gen, id, domain.EntryKindFolder)
	}

	m.notifier.Success("selected items permanently deleted")
	return nil
}

func (m *BinManager) fail(err error) error {
	if errors.Is(err, domain.ErrNotAuthenticated) {
		m.navigator.RedirectToLogin()
		return err
	}
	log.Error().Err(err).Msg("permanent delete failed")
	m.notifier.Error(err.Error())
	return err
}

// removeDeleted drops a confirmed-deleted id from the listing and the
// selection. Skipped when the listing was refreshed mid-batch.
func (m *BinManager) removeDeleted(gen uint64, id string, kind domain.EntryKind) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation {
		return
	}

	switch kind {
	case domain.EntryKindFile:
		for i := range m.files {
			if m.files[i].ID == id {
				m.files = append(m.files[:i], m.files[i+1:]...)
				break
			}
		}
		m.selectedFiles = remove(m.selectedFiles, id)
	case domain.EntryKindFolder:
		for i := range m.folders {
			if m.folders[i].ID == id {
				m.folders = append(m.folders[:i], m.folders[i+1:]...)
				break
			}
		}
		m.selectedFolders = remove(m.selectedFolders, id)
	}
}

func remove(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
