package cli

import (
	"context"
	"fmt"

	"github.com/code-gritt/cryogena/internal/initialization"
	"github.com/spf13/cobra"
)

func NewBinCommand(container *initialization.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bin",
		Short: "Manage binned items",
		Long:  `Manage soft-deleted files and folders. List the bin or delete selected items forever.`,
	}

	cmd.AddCommand(NewBinListCommand(container))
	cmd.AddCommand(NewBinPurgeCommand(container))

	return cmd
}

func NewBinListCommand(container *initialization.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List binned items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinList(container)
		},
	}
}

func runBinList(container *initialization.Container) error {
	binManager := container.GetBinManager()

	if err := binManager.Refresh(context.Background()); err != nil {
		return err
	}

	files, folders := binManager.Contents()

	fmt.Println("🗑️  Bin:")
	for _, folder := range folders {
		fmt.Printf("   📁 %-30s %s\n", folder.Name, folder.ID)
	}
	for _, file := range files {
		fmt.Printf("   📄 %-30s %8s  %s\n", file.Name, humanSize(file.Size), file.ID)
	}
	fmt.Printf("\nTotal: %d folder(s), %d file(s)\n", len(folders), len(files))

	return nil
}

func NewBinPurgeCommand(container *initialization.Container) *cobra.Command {
	var fileIDs []string
	var folderIDs []string

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete binned items forever",
		Long: `Permanently delete the selected binned items. Deletion runs one item at a
time, files first, and stops at the first failure. This cannot be undone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinPurge(container, fileIDs, folderIDs)
		},
	}

	cmd.Flags().StringSliceVar(&fileIDs, "file", nil, "File id to delete forever (repeatable)")
	cmd.Flags().StringSliceVar(&folderIDs, "folder", nil, "Folder id to delete forever (repeatable)")

	return cmd
}

func runBinPurge(container *initialization.Container, fileIDs []string, folderIDs []string) error {
	ctx := context.Background()
	binManager := container.GetBinManager()

	if err := binManager.Refresh(ctx); err != nil {
		return err
	}

	for _, id := range fileIDs {
		binManager.ToggleFile(id)
	}
	for _, id := range folderIDs {
		binManager.ToggleFolder(id)
	}

	return binManager.PermanentDelete(ctx)
}
