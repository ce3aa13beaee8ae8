package cli

import (
	"context"
	"fmt"

	"github.com/code-gritt/cryogena/internal/domain"
	"github.com/code-gritt/cryogena/internal/initialization"
	"github.com/spf13/cobra"
)

func NewMkdirCommand(container *initialization.Container) *cobra.Command {
	var parentID string

	cmd := &cobra.Command{
		Use:   "mkdir <name>",
		Short: "Create a folder",
		Long:  `Create a folder at the workspace root, or inside the folder given by --in.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMkdir(container, args[0], parentID)
		},
	}

	cmd.Flags().StringVar(&parentID, "in", "", "Parent folder id (defaults to the root)")

	return cmd
}

func runMkdir(container *initialization.Container, name string, parentID string) error {
	ctx := context.Background()
	workspaceManager := container.GetWorkspaceManager()

	location := domain.RootLocation()
	if parentID != "" {
		location = domain.FolderLocation(parentID)
	}
	if err := workspaceManager.Navigate(ctx, location); err != nil {
		return err
	}

	machine := container.GetInteractionMachine()
	machine.BeginNewFolder()
	machine.SetDraftName(name)
	staged, ok := machine.Confirm()
	if !ok {
		return fmt.Errorf("no folder staged")
	}

	id, err := container.GetCommandManager().CreateFolder(ctx, staged.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Created folder %s\n", id)
	return nil
}
