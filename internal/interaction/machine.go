package interaction

import (
	"github.com/code-gritt/cryogena/internal/domain"
)

// State is the single active interaction surface. At most one menu or
// staging dialog is open at a time; opening one closes whatever else was
// open and discards its staged input.
type State int

const (
	StateIdle State = iota
	StateContextMenuOpen
	StateNewFolderStaging
	StateUploadStaging
	StateRenameStaging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateContextMenuOpen:
		return "context_menu_open"
	case StateNewFolderStaging:
		return "new_folder_staging"
	case StateUploadStaging:
		return "upload_staging"
	case StateRenameStaging:
		return "rename_staging"
	default:
		return "unknown"
	}
}

// DefaultFolderName pre-seeds the name field when a new folder is staged
// as the target of an upload.
const DefaultFolderName = "New Folder"

// Position is where a context menu was summoned, in screen coordinates.
type Position struct {
	X int
	Y int
}

// StagedFile is one file chosen for upload but not yet submitted.
type StagedFile struct {
	Name string
	Path string
	Size int64
}

// RenameTarget identifies the entry a rename dialog is editing.
type RenameTarget struct {
	ID   string
	Kind domain.EntryKind
}

// Staged is the snapshot handed to the command processor when the user
// confirms a staging dialog.
type Staged struct {
	State          State
	Name           string
	Files          []StagedFile
	TargetOverride *string
	Rename         *RenameTarget
	UploadAfter    bool
}

// Machine tracks transient interaction state: which surface is open,
// typed names, attached files and the target-folder override. Dismissal
// from any state returns to Idle and discards everything staged.
type Machine struct {
	state          State
	menuPosition   Position
	draftName      string
	files          []StagedFile
	targetOverride *string
	renameTarget   *RenameTarget
	uploadAfter    bool
}

func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

// State reports the active surface.
func (m *Machine) State() State {
	return m.state
}

// MenuPosition reports where the open context menu was summoned. Zero
// when no menu is open.
func (m *Machine) MenuPosition() Position {
	if m.state != StateContextMenuOpen {
		return Position{}
	}
	return m.menuPosition
}

// OpenContextMenu opens the context menu at the given position, replacing
// any surface already open.
func (m *Machine) OpenContextMenu(pos Position) {
	m.reset()
	m.state = StateContextMenuOpen
	m.menuPosition = pos
}

// BeginNewFolder opens the new-folder dialog with an empty name field.
func (m *Machine) BeginNewFolder() {
	m.reset()
	m.state = StateNewFolderStaging
}

// BeginUploadIntoNewFolder opens the new-folder dialog pre-seeded with a
// default name. The confirmed folder becomes the upload target and the
// file attachment step follows.
func (m *Machine) BeginUploadIntoNewFolder() {
	m.reset()
	m.state = StateNewFolderStaging
	m.draftName = DefaultFolderName
	m.uploadAfter = true
}

// BeginUpload opens the upload dialog with no files attached.
func (m *Machine) BeginUpload() {
	m.reset()
	m.state = StateUploadStaging
}

// BeginRename opens the rename dialog for one entry, pre-seeded with its
// current name.
func (m *Machine) BeginRename(id string, kind domain.EntryKind, currentName string) {
	m.reset()
	m.state = StateRenameStaging
	m.renameTarget = &RenameTarget{ID: id, Kind: kind}
	m.draftName = currentName
}

// SetDraftName records typed input. Ignored when no dialog with a name
// field is open.
func (m *Machine) SetDraftName(name string) {
	if m.state != StateNewFolderStaging && m.state != StateRenameStaging {
		return
	}
	m.draftName = name
}

// DraftName reports the typed name of the open dialog.
func (m *Machine) DraftName() string {
	return m.draftName
}

// AttachFiles adds files to the staged upload. Ignored when the upload
// dialog is not open.
func (m *Machine) AttachFiles(files ...StagedFile) {
	if m.state != StateUploadStaging {
		return
	}
	m.files = append(m.files, files...)
}

// Files reports the staged upload files.
func (m *Machine) Files() []StagedFile {
	return append([]StagedFile(nil), m.files...)
}

// SetTargetOverride records an explicit upload destination chosen in the
// upload dialog. Ignored when the upload dialog is not open.
func (m *Machine) SetTargetOverride(folderID *string) {
	if m.state != StateUploadStaging {
		return
	}
	m.targetOverride = folderID
}

// TargetOverride reports the explicit upload destination, nil when none
// was chosen.
func (m *Machine) TargetOverride() *string {
	return m.targetOverride
}

// RenameTarget reports the entry the open rename dialog is editing.
func (m *Machine) RenameTarget() *RenameTarget {
	return m.renameTarget
}

// Confirm hands the staged input to the caller and returns the machine
// to Idle. Confirming outside a staging state stages nothing.
func (m *Machine) Confirm() (Staged, bool) {
	switch m.state {
	case StateNewFolderStaging, StateUploadStaging, StateRenameStaging:
	default:
		return Staged{}, false
	}

	staged := Staged{
		State:          m.state,
		Name:           m.draftName,
		Files:          m.files,
		TargetOverride: m.targetOverride,
		Rename:         m.renameTarget,
		UploadAfter:    m.uploadAfter,
	}
	m.reset()
	return staged, true
}

// Dismiss closes whatever is open and discards all staged input.
func (m *Machine) Dismiss() {
	m.reset()
}

func (m *Machine) reset() {
	m.state = StateIdle
	m.menuPosition = Position{}
	m.draftName = ""
	m.files = nil
	m.targetOverride = nil
	m.renameTarget = nil
	m.uploadAfter = false
}
