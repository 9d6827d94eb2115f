package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// catCmd represents the cat command
var catCmd = &cobra.Command{
	Use:   "cat <object>",
	Short: "Print an object's text contents to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, logg, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		text, err := client.ReadText(cmd.Context(), bucketFlag, args[0])
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(catCmd)
}
