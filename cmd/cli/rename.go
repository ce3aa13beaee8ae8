package cli

import (
	"context"
	"fmt"

	"github.com/code-gritt/cryogena/internal/domain"
	"github.com/code-gritt/cryogena/internal/initialization"
	"github.com/spf13/cobra"
)

func NewRenameCommand(container *initialization.Container) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "rename <id> <new-name>",
		Short: "Rename a file or folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryKind, err := parseEntryKind(kind)
			if err != nil {
				return err
			}
			return runRename(container, args[0], entryKind, args[1])
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "file", "Entry kind: file or folder")

	return cmd
}

func runRename(container *initialization.Container, id string, kind domain.EntryKind, newName string) error {
	ctx := context.Background()

	machine := container.GetInteractionMachine()
	machine.BeginRename(id, kind, "")
	machine.SetDraftName(newName)
	staged, ok := machine.Confirm()
	if !ok {
		return fmt.Errorf("no rename staged")
	}

	return container.GetCommandManager().Rename(ctx, staged.Rename.ID, staged.Rename.Kind, staged.Name)
}

func parseEntryKind(kind string) (domain.EntryKind, error) {
	switch kind {
	case "file":
		return domain.EntryKindFile, nil
	case "folder":
		return domain.EntryKindFolder, nil
	default:
		return "", fmt.Errorf("unknown entry kind %q, expected file or folder", kind)
	}
}
