package cli

import (
	"context"
	"fmt"

	"github.com/code-gritt/cryogena/internal/domain"
	"github.com/code-gritt/cryogena/internal/initialization"
	"github.com/spf13/cobra"
)

func NewLsCommand(container *initialization.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [folder-id]",
		Short: "List a workspace location",
		Long:  `List the folders and files at the workspace root, or inside the given folder.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location := domain.RootLocation()
			if len(args) == 1 {
				location = domain.FolderLocation(args[0])
			}
			return runLs(container, location)
		},
	}

	return cmd
}

func runLs(container *initialization.Container, location domain.Location) error {
	workspaceManager := container.GetWorkspaceManager()

	if err := workspaceManager.Navigate(context.Background(), location); err != nil {
		return err
	}

	view := workspaceManager.View()
	if view == nil {
		return fmt.Errorf("no listing available for %s", location)
	}

	if view.Current != nil {
		fmt.Printf("📁 %s (%s)\n", view.Current.Name, view.Current.ID)
	} else {
		fmt.Println("📁 My Workspace")
	}

	for _, folder := range view.Folders {
		fmt.Printf("   📁 %-30s %s\n", folder.Name, folder.ID)
	}
	for _, file := range view.Files {
		fmt.Printf("   📄 %-30s %8s  %s\n", file.Name, humanSize(file.Size), file.ID)
	}
	fmt.Printf("\nTotal: %d folder(s), %d file(s)\n", len(view.Folders), len(view.Files))

	return nil
}

func humanSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
