package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytget/ytinfo"
	"github.com/ytget/ytinfo/internal/config"
)

func init() {
	rootCmd.AddCommand(downloadCmd)
	addResolveFlags(downloadCmd)

	downloadCmd.Flags().StringP("output", "o", "", "Output path (file or directory)")
	lo.Must0(viper.BindPFlag(config.DownloadOutput, downloadCmd.Flags().Lookup("output")))

	downloadCmd.Flags().Bool("no-progress", false, "Disable progress output")
}

var downloadCmd = &cobra.Command{
	Use:   "download <video_id_or_url>",
	Short: "Download the media of the resolved format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver(cmd)
		if err != nil {
			return err
		}

		showProgress := viper.GetBool(config.DownloadProgress) && !lo.Must(cmd.Flags().GetBool("no-progress"))
		if showProgress {
			r = r.WithProgress(printProgress)
		}

		d, err := r.Describe(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		path, err := r.Download(cmd.Context(), d, viper.GetString(config.DownloadOutput))
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("Saved:"), path)
		return nil
	},
}

func printProgress(p ytinfo.Progress) {
	if p.TotalSize > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "\rDownloaded %s / %s (%.1f%%)",
			humanize.IBytes(uint64(p.DownloadedSize)), humanize.IBytes(uint64(p.TotalSize)), p.Percent)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "\rDownloaded %s", humanize.IBytes(uint64(p.DownloadedSize)))
	}
	if p.Done {
		_, _ = fmt.Fprintln(os.Stderr)
	}
}
