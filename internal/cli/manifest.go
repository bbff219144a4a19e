package cli

import (
	"github.com/freedance-video/workscheck/internal/validate"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(manifestCmd)
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Validate works.json only",
	Long: `Check every work in works.json for required fields (id, title, gifUrl or
webpUrl, uploadDate) and for local image files that do not exist.
A missing works.json passes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if !validate.ValidateManifest(cmd.OutOrStdout(), s) {
			return errChecksFailed
		}
		return nil
	},
}
