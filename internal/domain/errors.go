package domain

import "errors"

var (
	// ErrNotAuthenticated means no usable credential is present. Callers
	// must redirect to login instead of attempting the remote call.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrCommandInFlight means an identical command is still waiting for
	// its server acknowledgment.
	ErrCommandInFlight = errors.New("command already in flight")

	// ErrEmptyFolderName is the local validation failure for createFolder.
	ErrEmptyFolderName = errors.New("folder name cannot be empty")

	// ErrNoFilesSelected is the local validation failure for upload.
	ErrNoFilesSelected = errors.New("no files selected for upload")

	// ErrNotReady means a command was dispatched while the workspace was
	// not in the Ready state.
	ErrNotReady = errors.New("workspace is not ready")

	ErrEmptySelection = errors.New("nothing selected")
)
