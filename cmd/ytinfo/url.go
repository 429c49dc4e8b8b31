package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(urlCmd)
	addResolveFlags(urlCmd)
}

var urlCmd = &cobra.Command{
	Use:   "url <video_id_or_url>",
	Short: "Print only the direct download URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver(cmd)
		if err != nil {
			return err
		}
		d, err := r.Describe(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		url, err := d.DownloadURL()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
		return err
	},
}
