package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in easyid3's version
	VersionMajor = 0
	// VersionMinor is the minor number in easyid3's version
	VersionMinor = 1
	// VersionPatch is the patch number in easyid3's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of easyid3",
		Long:  `All software has versions. This is easyid3's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "easyid3 v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
