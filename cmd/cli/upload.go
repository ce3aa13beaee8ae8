package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/code-gritt/cryogena/internal/initialization"
	"github.com/code-gritt/cryogena/internal/interaction"
	"github.com/code-gritt/cryogena/internal/managers"
	"github.com/code-gritt/cryogena/pkg/clients/cryogena"
	"github.com/spf13/cobra"
)

func NewUploadCommand(container *initialization.Container) *cobra.Command {
	var folderID string
	var newFolderName string

	cmd := &cobra.Command{
		Use:   "upload <path>...",
		Short: "Upload files",
		Long: `Upload one or more local files in a single request. The destination is the
folder given by --folder, a folder created on the fly with --new-folder, or
the workspace root.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(container, args, folderID, newFolderName)
		},
	}

	cmd.Flags().StringVar(&folderID, "folder", "", "Destination folder id")
	cmd.Flags().StringVar(&newFolderName, "new-folder", "", "Create this folder and upload into it")

	return cmd
}

func runUpload(container *initialization.Container, paths []string, folderID string, newFolderName string) error {
	ctx := context.Background()
	machine := container.GetInteractionMachine()
	commandManager := container.GetCommandManager()

	var override *string
	if folderID != "" {
		override = &folderID
	}

	if newFolderName != "" {
		machine.BeginUploadIntoNewFolder()
		machine.SetDraftName(newFolderName)
		staged, ok := machine.Confirm()
		if !ok || !staged.UploadAfter {
			return fmt.Errorf("no folder staged")
		}
		createdID, err := commandManager.CreateFolder(ctx, staged.Name)
		if err != nil {
			return err
		}
		override = &createdID
	}

	machine.BeginUpload()
	machine.SetTargetOverride(override)
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
		machine.AttachFiles(interaction.StagedFile{
			Name: filepath.Base(path),
			Path: path,
			Size: info.Size(),
		})
	}
	staged, ok := machine.Confirm()
	if !ok {
		return fmt.Errorf("no files staged")
	}

	files := make([]cryogena.UploadPart, 0, len(staged.Files))
	handles := make([]*os.File, 0, len(staged.Files))
	defer func() {
		for _, handle := range handles {
			handle.Close()
		}
	}()
	for _, stagedFile := range staged.Files {
		handle, err := os.Open(stagedFile.Path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", stagedFile.Path, err)
		}
		handles = append(handles, handle)
		files = append(files, cryogena.UploadPart{Name: stagedFile.Name, Content: handle})
	}

	return commandManager.Upload(ctx, files, managers.UploadTarget{Override: staged.TargetOverride})
}
