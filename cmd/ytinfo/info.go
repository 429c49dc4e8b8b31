package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ytget/ytinfo/types"
)

func init() {
	rootCmd.AddCommand(infoCmd)
	addResolveFlags(infoCmd)
	infoCmd.Flags().BoolP("json", "j", false, "Print the resolution as JSON")
}

var infoCmd = &cobra.Command{
	Use:     "info <video_id_or_url>",
	Short:   "Show video metadata and the resolved download URL",
	Args:    cobra.ExactArgs(1),
	Example: "  ytinfo info dQw4w9WgXcQ\n  ytinfo info -f 22 https://youtu.be/dQw4w9WgXcQ --json",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver(cmd)
		if err != nil {
			return err
		}
		res, err := r.Resolve(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		printResolution(cmd, res)
		return nil
	},
}

func printResolution(cmd *cobra.Command, res types.Resolution) {
	label := color.New(color.FgCyan, color.Bold).SprintFunc()
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "%s %s\n", label("Title:"), res.Title)
	if res.Author != "" {
		_, _ = fmt.Fprintf(out, "%s %s\n", label("Author:"), res.Author)
	}
	_, _ = fmt.Fprintf(out, "%s %s\n", label("Duration:"), formatDuration(res.Duration))
	_, _ = fmt.Fprintf(out, "%s %s\n", label("Rating:"), formatRating(res.Rating))
	if len(res.Keywords) > 0 {
		_, _ = fmt.Fprintf(out, "%s %s\n", label("Keywords:"), strings.Join(res.Keywords, ", "))
	}
	if res.Thumbnail != "" {
		_, _ = fmt.Fprintf(out, "%s %s\n", label("Thumbnail:"), res.Thumbnail)
	}

	format := res.Format
	if res.FormatDescription != "" {
		format += " (" + res.FormatDescription + ")"
	}
	_, _ = fmt.Fprintf(out, "%s %s\n", label("Format:"), format)
	_, _ = fmt.Fprintf(out, "%s %s\n", label("Offered:"), strings.Join(res.Formats, ", "))
	_, _ = fmt.Fprintf(out, "%s %s.%s\n", label("File:"), res.Filename, res.Ext)
	_, _ = fmt.Fprintf(out, "%s %s\n", label("URL:"), res.URL)
}

func formatDuration(seconds int) string {
	if seconds < 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d:%02d (%s)", seconds/60, seconds%60, humanize.Comma(int64(seconds))+"s")
}

func formatRating(rating float64) string {
	if rating < 0 {
		return "unknown"
	}
	return humanize.FtoaWithDigits(rating, 2)
}
