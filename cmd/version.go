package cmd

import (
	"github.com/spf13/cobra"

	"github.com/amdwebio/amdweb/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints amdweb version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Version())
	},
}
