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

// WorkspaceManager owns the local view of the currently browsed location:
// the listing cache, the Loading/Ready/Error lifecycle and the generation
// counter that guards against late-arriving results. Navigation replaces
// the view wholesale; only confirmed commands patch it in place.
type WorkspaceManager struct {
	client    cryogena.ClientInterface
	navigator domain.Navigator

	mu         sync.Mutex
	state      domain.ViewState
	location   domain.Location
	view       *domain.WorkspaceView
	generation uint64
}

type WorkspaceManagerDependencies struct {
	Client    cryogena.ClientInterface
	Navigator domain.Navigator
}

func NewWorkspaceManager(deps WorkspaceManagerDependencies) *WorkspaceManager {
	navigator := deps.Navigator
	if navigator == nil {
		navigator = domain.NopNavigator{}
	}
	return &WorkspaceManager{
		client:    deps.Client,
		navigator: navigator,
		state:     domain.ViewStateLoading,
		location:  domain.RootLocation(),
	}
}

// Navigate resolves a location to its fetches and replaces the workspace
// view with the result. A completion that no longer matches the current
// generation is discarded: the user has already moved on.
func (m *WorkspaceManager) Navigate(ctx context.Context, loc domain.Location) error {
	m.mu.Lock()
	m.generation++
	gen := m.generation
	m.state = domain.ViewStateLoading
	m.location = loc
	m.mu.Unlock()

	view, err := m.fetch(ctx, loc)

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation {
		log.Debug().Str("location", loc.String()).Msg("discarding superseded navigation result")
		return nil
	}

	if err != nil {
		m.state = domain.ViewStateError
		m.view = nil
		if errors.Is(err, domain.ErrNotAuthenticated) {
			m.navigator.RedirectToLogin()
			return err
		}
		log.Error().Err(err).Str("location", loc.String()).Msg("navigation fetch failed")
		return err
	}

	view.Generation = gen
	m.view = &view
	m.state = domain.ViewStateReady
	return nil
}

// Back navigates to the parent of the current folder, or to the root when
// the current folder has no parent (or the root is already shown).
func (m *WorkspaceManager) Back(ctx context.Context) error {
	m.mu.Lock()
	target := domain.RootLocation()
	if m.view != nil && m.view.Current != nil && m.view.Current.ParentID != nil {
		target = domain.FolderLocation(*m.view.Current.ParentID)
	}
	m.mu.Unlock()

	return m.Navigate(ctx, target)
}

func (m *WorkspaceManager) fetch(ctx context.Context, loc domain.Location) (domain.WorkspaceView, error) {
	if loc.IsRoot() {
		files, err := m.client.UserFiles(ctx)
		if err != nil {
			return domain.WorkspaceView{}, fmt.Errorf("failed to fetch root files: %w", err)
		}
		folders, err := m.client.UserFolders(ctx)
		if err != nil {
			return domain.WorkspaceView{}, fmt.Errorf("failed to fetch root folders: %w", err)
		}
		return domain.WorkspaceView{
			Files:   mapFiles(files, nil),
			Folders: mapFolders(folders, nil),
		}, nil
	}

	contents, err := m.client.FolderContents(ctx, *loc.FolderID)
	if err != nil {
		return domain.WorkspaceView{}, fmt.Errorf("failed to fetch folder contents: %w", err)
	}
	info, err := m.client.FolderInfo(ctx, *loc.FolderID)
	if err != nil {
		return domain.WorkspaceView{}, fmt.Errorf("failed to fetch folder info: %w", err)
	}

	return domain.WorkspaceView{
		Current: &domain.CurrentFolder{
			ID:       info.ID,
			Name:     info.Name,
			ParentID: info.ParentID,
		},
		Files:   mapFiles(contents.Files, loc.FolderID),
		Folders: mapFolders(contents.Folders, loc.FolderID),
	}, nil
}

// State reports the workspace lifecycle state.
func (m *WorkspaceManager) State() domain.ViewState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Location reports the location of the last navigation.
func (m *WorkspaceManager) Location() domain.Location {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.location
}

// Generation reports the current navigation generation. Commands capture
// it at dispatch time so their patches can be rejected once superseded.
func (m *WorkspaceManager) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generation
}

// View returns a snapshot of the current workspace view, or nil when no
// fetch has succeeded for the current location.
func (m *WorkspaceManager) View() *domain.WorkspaceView {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.view == nil {
		return nil
	}
	snapshot := *m.view
	snapshot.Files = append([]domain.File(nil), m.view.Files...)
	snapshot.Folders = append([]domain.Folder(nil), m.view.Folders...)
	if m.view.Current != nil {
		current := *m.view.Current
		snapshot.Current = &current
	}
	return &snapshot
}

// InsertFolderHead prepends a confirmed new folder to the folder
// sequence (newest first). The patch is dropped when gen is stale or the
// workspace is not showing a view.
func (m *WorkspaceManager) InsertFolderHead(gen uint64, folder domain.Folder) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation || m.view == nil {
		return false
	}
	m.view.Folders = append([]domain.Folder{folder}, m.view.Folders...)
	return true
}

// RenameEntry updates the name of exactly one entry. Renaming the folder
// currently being viewed also updates the header metadata.
func (m *WorkspaceManager) RenameEntry(gen uint64, id string, kind domain.EntryKind, newName string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation || m.view == nil {
		return false
	}

	applied := false
	switch kind {
	case domain.EntryKindFile:
		for i := range m.view.Files {
			if m.view.Files[i].ID == id {
				m.view.Files[i].Name = newName
				applied = true
				break
			}
		}
	case domain.EntryKindFolder:
		for i := range m.view.Folders {
			if m.view.Folders[i].ID == id {
				m.view.Folders[i].Name = newName
				applied = true
				break
			}
		}
		if m.view.Current != nil && m.view.Current.ID == id {
			m.view.Current.Name = newName
			applied = true
		}
	}
	return applied
}

// RemoveEntry drops a confirmed-deleted (or moved-away) entry from the
// active view.
func (m *WorkspaceManager) RemoveEntry(gen uint64, id string, kind domain.EntryKind) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation || m.view == nil {
		return false
	}

	switch kind {
	case domain.EntryKindFile:
		for i := range m.view.Files {
			if m.view.Files[i].ID == id {
				m.view.Files = append(m.view.Files[:i], m.view.Files[i+1:]...)
				return true
			}
		}
	case domain.EntryKindFolder:
		for i := range m.view.Folders {
			if m.view.Folders[i].ID == id {
				m.view.Folders = append(m.view.Folders[:i], m.view.Folders[i+1:]...)
				return true
			}
		}
	}
	return false
}

func mapFiles(files []cryogena.File, parentID *string) []domain.File {
	out := make([]domain.File, 0, len(files))
	for _, f := range files {
		out = append(out, mapFile(f, parentID))
	}
	return out
}

func mapFile(f cryogena.File, parentID *string) domain.File {
	kind := domain.FileKind(f.FileType)
	if kind == "" {
		kind = domain.FileKindOther
	}
	return domain.File{
		ID:             f.ID,
		Name:           f.Name,
		OwnerAvatar:    f.OwnerAvatar,
		CreatedAt:      f.CreatedAt,
		Size:           f.Size,
		FileType:       kind,
		FileURL:        f.FileURL,
		ParentFolderID: parentID,
	}
}

func mapFolders(folders []cryogena.Folder, parentID *string) []domain.Folder {
	out := make([]domain.Folder, 0, len(folders))
	for _, f := range folders {
		out = append(out, mapFolder(f, parentID))
	}
	return out
}

func mapFolder(f cryogena.Folder, parentID *string) domain.Folder {
	return domain.Folder{
		ID:        f.ID,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
		ParentID:  parentID,
	}
}
