package domain

import "time"

// FileKind is the server-side classification of an uploaded file.
type FileKind string

const (
	FileKindImage FileKind = "image"
	FileKindPDF   FileKind = "pdf"
	FileKindDoc   FileKind = "doc"
	FileKindMP3   FileKind = "mp3"
	FileKindVideo FileKind = "video"
	FileKindOther FileKind = "other"
)

type File struct {
	ID             string
	Name           string
	OwnerAvatar    string
	CreatedAt      time.Time
	Size           int64
	FileType       FileKind
	FileURL        string
	ParentFolderID *string // nil means the file lives at the root
	DeletedAt      *time.Time
}

type Folder struct {
	ID        string
	Name      string
	CreatedAt time.Time
	ParentID  *string // nil means the folder lives at the root
	DeletedAt *time.Time
}

// CurrentFolder is the metadata of the folder being browsed. A nil
// *CurrentFolder means the root is being viewed.
type CurrentFolder struct {
	ID       string
	Name     string
	ParentID *string
}

// WorkspaceView is the snapshot of the last successful fetch for one
// location. It is replaced wholesale on navigation and patched
// incrementally on command success; Generation identifies the navigation
// that produced it so late-arriving results can be discarded.
type WorkspaceView struct {
	Current    *CurrentFolder
	Folders    []Folder
	Files      []File
	Generation uint64
}

// ViewState is the lifecycle of the workspace (and bin) surface.
type ViewState int

const (
	ViewStateLoading ViewState = iota
	ViewStateReady
	ViewStateError
)

func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateReady:
		return "ready"
	case ViewStateError:
		return "error"
	default:
		return "unknown"
	}
}

// EntryKind discriminates files from folders in commands and selections.
type EntryKind string

const (
	EntryKindFile   EntryKind = "file"
	EntryKindFolder EntryKind = "folder"
)
