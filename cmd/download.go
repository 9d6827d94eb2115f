package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download <object> <dest>",
	Short: "Download an object to a local file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, logg, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		path, err := client.DownloadFile(cmd.Context(), bucketFlag, args[0], args[1])
		if err != nil {
			return err
		}

		logg.Info("downloaded",
			zap.String("object", args[0]),
			zap.String("path", path))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(downloadCmd)
}
