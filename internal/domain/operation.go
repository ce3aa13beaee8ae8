package domain

import "github.com/rs/xid"

// OperationKind identifies a mutating command.
type OperationKind string

const (
	OperationCreateFolder    OperationKind = "create_folder"
	OperationRename          OperationKind = "rename"
	OperationSoftDelete      OperationKind = "soft_delete"
	OperationMove            OperationKind = "move"
	OperationPermanentDelete OperationKind = "permanent_delete"
	OperationUpload          OperationKind = "upload"
)

// PendingOperation marks a command that has been dispatched but not yet
// acknowledged by the server. It lives only in memory; nothing about it
// survives a restart.
type PendingOperation struct {
	ID        string
	Kind      OperationKind
	TargetIDs []string
}

func NewPendingOperation(kind OperationKind, targetIDs ...string) PendingOperation {
	return PendingOperation{
		ID:        xid.New().String(),
		Kind:      kind,
		TargetIDs: targetIDs,
	}
}
