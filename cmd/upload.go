package cmd

import (
	"cloud-storage-manager/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	uploadName string
	uploadRm   bool
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a local file to the bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, logg, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		ref, err := client.UploadFile(cmd.Context(), bucketFlag, args[0], storage.UploadFileOptions{
			RemoteName:        uploadName,
			DeleteAfterUpload: uploadRm,
		})
		if err != nil {
			return err
		}

		logg.Info("uploaded",
			zap.String("bucket", ref.Bucket),
			zap.String("object", ref.Name))
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadName, "name", "", "object name to upload as (default: file base name)")
	uploadCmd.Flags().BoolVar(&uploadRm, "rm", false, "remove the local file after a successful upload")
	RootCmd.AddCommand(uploadCmd)
}
