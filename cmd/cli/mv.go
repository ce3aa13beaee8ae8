package cli

import (
	"context"

	"github.com/code-gritt/cryogena/internal/initialization"
	"github.com/spf13/cobra"
)

func NewMvCommand(container *initialization.Container) *cobra.Command {
	var kind string
	var destination string

	cmd := &cobra.Command{
		Use:   "mv <id>",
		Short: "Move a file or folder to another folder",
		Long:  `Move a file or folder into the folder given by --to, or to the root when --to is omitted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryKind, err := parseEntryKind(kind)
			if err != nil {
				return err
			}
			var destinationID *string
			if destination != "" {
				destinationID = &destination
			}
			return container.GetCommandManager().Move(context.Background(), args[0], entryKind, destinationID)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "file", "Entry kind: file or folder")
	cmd.Flags().StringVar(&destination, "to", "", "Destination folder id (defaults to the root)")

	return cmd
}
