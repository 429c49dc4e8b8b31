package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats [video_id_or_url]",
	Short: "List known encodings, or the encodings offered for a video",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		defer w.Flush()

		if len(args) == 0 {
			_, _ = fmt.Fprintf(w, "%s\n", color.New(color.Faint).Sprint("table "+table.Version))
			_, _ = fmt.Fprintf(w, "%s\n", color.New(color.Faint).Sprint("priority "+strings.Join(table.Priority, " ")))
			for _, e := range table.List() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Ext(), e.Description)
			}
			return nil
		}

		r, err := newResolver(cmd)
		if err != nil {
			return err
		}
		d, err := r.Describe(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, id := range d.Formats() {
			desc, ok := table.Describe(id)
			if !ok {
				desc = color.YellowString("unknown")
			}
			state := color.GreenString("ok")
			if url, _ := d.FormatURL(id); url == "" {
				state = color.RedString("no url")
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", id, state, desc)
		}
		return nil
	},
}
