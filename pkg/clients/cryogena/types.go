package cryogena

import (
	"io"
	"time"
)

// File is the wire representation of an uploaded file.
type File struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerAvatar string    `json:"ownerAvatar"`
	CreatedAt   time.Time `json:"createdAt"`
	Size        int64     `json:"size"`
	FileType    string    `json:"fileType"`
	FileURL     string    `json:"fileUrl"`
}

// Folder is the wire representation of a folder.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// FolderContents is the listing of one folder.
type FolderContents struct {
	Files   []File   `json:"files"`
	Folders []Folder `json:"folders"`
}

// FolderInfo is the metadata of one folder, separate from its listing so
// the header and back target can resolve even when the listing is empty.
type FolderInfo struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
}

// BinContents is the listing of soft-deleted items.
type BinContents struct {
	Files   []File   `json:"files"`
	Folders []Folder `json:"folders"`
}

// CommandResult is the acknowledgment shape shared by rename, delete,
// move and upload mutations. Success false with a message is a reported
// failure even though no errors list was present.
type CommandResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UploadPart is one file to include in a multipart upload request.
type UploadPart struct {
	Name    string
	Content io.Reader
}

// UploadRequest carries the payload for the uploadFile mutation.
type UploadRequest struct {
	Files []UploadPart
	// FolderID is the target folder; nil uploads to the root.
	FolderID *string
}
