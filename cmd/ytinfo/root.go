package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytget/ytinfo"
	"github.com/ytget/ytinfo/client"
	"github.com/ytget/ytinfo/internal/config"
	"github.com/ytget/ytinfo/internal/filesystem"
	"github.com/ytget/ytinfo/internal/logger"
	"github.com/ytget/ytinfo/youtube/cipher"
	"github.com/ytget/ytinfo/youtube/formats"
)

func init() {
	flags := rootCmd.PersistentFlags()

	flags.String("endpoint", "", "Metadata endpoint queried with ?video_id=<id>")
	lo.Must0(viper.BindPFlag(config.FetchEndpoint, flags.Lookup("endpoint")))

	flags.String("table", "", "Encoding table file (yaml, json or toml)")
	lo.Must0(viper.BindPFlag(config.FormatsTable, flags.Lookup("table")))

	flags.String("player-script", "", "Player script defining decipher(sig)")
	lo.Must0(viper.BindPFlag(config.CipherPlayerScript, flags.Lookup("player-script")))

	flags.Duration("http-timeout", 0, "HTTP timeout (e.g., 30s, 1m)")
	lo.Must0(viper.BindPFlag(config.HTTPTimeout, flags.Lookup("http-timeout")))

	flags.Int("attempts", 0, "Maximum attempts per HTTP request")
	lo.Must0(viper.BindPFlag(config.HTTPMaxAttempts, flags.Lookup("attempts")))

	flags.String("ua", "", "Override User-Agent header")
	lo.Must0(viper.BindPFlag(config.HTTPUserAgent, flags.Lookup("ua")))

	flags.String("proxy", "", "Proxy URL (http/https/socks)")
	lo.Must0(viper.BindPFlag(config.HTTPProxy, flags.Lookup("proxy")))

	flags.String("log-level", "", "Log level: trace, debug, info, warn, error")
	lo.Must0(viper.BindPFlag(config.LogLevel, flags.Lookup("log-level")))

	flags.String("log-format", "", "Log format: text, json, color")
	lo.Must0(viper.BindPFlag(config.LogFormat, flags.Lookup("log-format")))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Flags are bound after main configured the logger.
		if cmd.Flags().Changed("log-level") || cmd.Flags().Changed("log-format") {
			return config.SetupLogger()
		}
		return nil
	}
}

var rootCmd = &cobra.Command{
	Use:           "ytinfo",
	Short:         "Resolve YouTube video metadata and direct download URLs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command line.
func Execute() {
	if viper.GetBool(config.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	} else {
		color.NoColor = true
	}

	handleErr(rootCmd.Execute())
}

func handleErr(err error) {
	if err != nil {
		logger.WithComponent(logger.ComponentApp).Error("Command failed", map[string]interface{}{"error": err.Error()})
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// addResolveFlags registers the per-video overrides shared by info, url and download.
func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Encoding identifier (itag); empty selects the best offered")
	cmd.Flags().String("title", "", "Override the reported title")
	cmd.Flags().String("filename", "", "Output file name without extension")
	cmd.Flags().String("ext", "", "Output extension; empty derives it from the encoding")
}

func newClient() *client.Client {
	return client.NewWith(client.Config{
		Timeout:     viper.GetDuration(config.HTTPTimeout),
		MaxAttempts: viper.GetInt(config.HTTPMaxAttempts),
		UserAgent:   viper.GetString(config.HTTPUserAgent),
		ProxyURL:    viper.GetString(config.HTTPProxy),
	})
}

func loadTable() (*formats.Table, error) {
	path := viper.GetString(config.FormatsTable)
	if path == "" {
		return formats.DefaultTable(), nil
	}
	return formats.LoadTable(filesystem.API().Fs, path)
}

func loadDecipherer() (*cipher.Decipherer, error) {
	path := viper.GetString(config.CipherPlayerScript)
	if path == "" {
		return nil, nil
	}
	return cipher.Load(filesystem.API().Fs, path)
}

// newResolver builds a resolver from the configuration and the command's resolve flags.
func newResolver(cmd *cobra.Command) (*ytinfo.Resolver, error) {
	table, err := loadTable()
	if err != nil {
		return nil, err
	}
	dec, err := loadDecipherer()
	if err != nil {
		return nil, err
	}

	r := ytinfo.New().
		WithClient(newClient()).
		WithEndpoint(viper.GetString(config.FetchEndpoint)).
		WithFormatTable(table).
		WithDecipherer(dec).
		WithFs(filesystem.API().Fs)

	if cmd.Flags().Lookup("format") != nil {
		r = r.WithFormat(lo.Must(cmd.Flags().GetString("format"))).
			WithTitle(lo.Must(cmd.Flags().GetString("title"))).
			WithFilename(lo.Must(cmd.Flags().GetString("filename"))).
			WithExt(lo.Must(cmd.Flags().GetString("ext")))
	}
	return r, nil
}
