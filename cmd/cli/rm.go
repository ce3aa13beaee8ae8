package cli

import (
	"context"

	"github.com/code-gritt/cryogena/internal/initialization"
	"github.com/spf13/cobra"
)

func NewRmCommand(container *initialization.Container) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Move a file or folder to the bin",
		Long:  `Move a file or folder to the bin. Binned items can be deleted forever with 'bin purge'.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryKind, err := parseEntryKind(kind)
			if err != nil {
				return err
			}
			return container.GetCommandManager().SoftDelete(context.Background(), args[0], entryKind)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "file", "Entry kind: file or folder")

	return cmd
}
