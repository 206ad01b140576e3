package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the stepback CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stepback version %s\n", version)
		fmt.Println("Step-back balance management for all-in trading sessions")
		fmt.Println("https://github.com/rustyeddy/stepback")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
