package cli

import (
	"fmt"
	"os"

	"github.com/code-gritt/cryogena/internal/initialization"
	"github.com/code-gritt/cryogena/internal/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cryogena",
		Short: "Cryogena workspace CLI",
		Long: `Cryogena is a cloud file storage client. It browses the remote workspace,
creates and renames folders, uploads files, and manages the bin.`,
		Version:       version.GetShort(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	container, err := initialization.NewContainer(initialization.ContainerDependencies{
		Notifier:  ConsoleNotifier{},
		Navigator: ConsoleNavigator{},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(NewLsCommand(container))
	rootCmd.AddCommand(NewMkdirCommand(container))
	rootCmd.AddCommand(NewRenameCommand(container))
	rootCmd.AddCommand(NewRmCommand(container))
	rootCmd.AddCommand(NewMvCommand(container))
	rootCmd.AddCommand(NewUploadCommand(container))
	rootCmd.AddCommand(NewBinCommand(container))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
