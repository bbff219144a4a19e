package cli

import (
	"github.com/freedance-video/workscheck/internal/validate"
	"github.com/spf13/cobra"
)

func init() {
	addImageFlags(imagesCmd)
	rootCmd.AddCommand(imagesCmd)
}

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List the image files in the images directory",
	Long: `List gif, webp, png, jpg and jpeg files in the images directory with their
size. This check is informational and never fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		validate.ValidateImages(cmd.OutOrStdout(), s)
		return nil
	},
}
