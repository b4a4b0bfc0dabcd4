package commands

import (
	"github.com/spf13/cobra"
)

func Execute(version string) error {
	rootCmd := &cobra.Command{
		Use:   "routemap",
		Short: "Routemap - declarative route table tooling",
		Long: `Routemap resolves declarative controller metadata into a concrete
route table: URIs from naming conventions, media types from annotation
precedence, and error-handler bindings.

This CLI inspects the table a manifest resolves to before any server
ever mounts it.`,
		Version: version,
	}

	rootCmd.AddCommand(newRoutesCmd())

	return rootCmd.Execute()
}
