// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deck2pdf CLI.
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deck2pdf/internal/assemble"
	"github.com/pdiddy/deck2pdf/internal/download"
	"github.com/pdiddy/deck2pdf/internal/scrape"
	"github.com/pdiddy/deck2pdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Built-in defaults, used when neither a flag nor a config value is set.
const (
	defaultTimeout    = 30 * time.Second
	defaultDelay      = 1 * time.Second
	defaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	defaultMaxRetries = 2
	defaultOutputDir  = "."
)

// rootCmd is the base command for the deck2pdf CLI.
var rootCmd = &cobra.Command{
	Use:   "deck2pdf <url>",
	Short: "Download a Speaker Deck presentation as a PDF",
	Long: `deck2pdf downloads a presentation from speakerdeck.com and rebuilds it as
a local PDF. It fetches the presentation page, finds the per-slide image
URLs, downloads every slide in order with a politeness delay between
requests, and writes one PDF page per slide at the image's native size.

The PDF lands in the output directory as <title>.pdf. With --metadata a
YAML record of the presentation (ID, title, slide count, source URL) is
written next to it.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deck2pdf.yaml or ~/.config/deck2pdf/config.yaml)")

	rootCmd.Flags().StringP("output", "o", "", "output directory for the PDF (default \".\")")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.Flags().Duration("delay", 0, "delay between consecutive slide downloads (default 1s)")
	rootCmd.Flags().String("user-agent", "", "User-Agent header sent with every request")
	rootCmd.Flags().Int("max-retries", 0, "retry attempts for rate-limited slide downloads (default 2)")
	rootCmd.Flags().Bool("metadata", false, "write a YAML metadata record next to the PDF")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("deck2pdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "deck2pdf"))
		}
	}

	viper.SetEnvPrefix("DECK2PDF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	ref, err := scrape.ParseDeckURL(args[0])
	if err != nil {
		return err
	}

	httpCfg := types.HTTPConfig{
		Timeout:   durationSetting(cmd, "timeout", defaultTimeout),
		UserAgent: stringSetting(cmd, "user-agent", defaultUserAgent),
	}
	outputDir := stringSetting(cmd, "output", defaultOutputDir)
	writeMeta := boolSetting(cmd, "metadata")

	client := &http.Client{Timeout: httpCfg.Timeout}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	deck, err := scrape.FetchDeck(ctx, client, ref, types.ScrapeConfig{HTTPConfig: httpCfg}, out)
	if err != nil {
		return err
	}

	images, err := download.Slides(ctx, client, deck.ImageURLs, types.DownloadConfig{
		HTTPConfig: httpCfg,
		Delay:      durationSetting(cmd, "delay", defaultDelay),
		MaxRetries: intSetting(cmd, "max-retries", defaultMaxRetries),
	}, out)
	if err != nil {
		return err
	}

	pdfPath, err := assemble.PDF(deck.Title, images, types.OutputConfig{Dir: outputDir, Metadata: writeMeta}, out)
	if err != nil {
		return err
	}
	deck.PDFPath = pdfPath

	if writeMeta {
		metaPath := strings.TrimSuffix(pdfPath, ".pdf") + ".yaml"
		if err := scrape.WriteMetadata(deck, metaPath); err != nil {
			fmt.Fprintf(out, "warning: writing metadata record: %v\n", err)
		}
	}
	return nil
}

// durationSetting resolves a duration: flag first, then config, then the
// built-in default.
func durationSetting(cmd *cobra.Command, name string, def time.Duration) time.Duration {
	if v, _ := cmd.Flags().GetDuration(name); v != 0 {
		return v
	}
	if v := viper.GetDuration(name); v != 0 {
		return v
	}
	return def
}

func stringSetting(cmd *cobra.Command, name, def string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	if v := viper.GetString(name); v != "" {
		return v
	}
	return def
}

func intSetting(cmd *cobra.Command, name string, def int) int {
	if v, _ := cmd.Flags().GetInt(name); v != 0 {
		return v
	}
	if v := viper.GetInt(name); v != 0 {
		return v
	}
	return def
}

func boolSetting(cmd *cobra.Command, name string) bool {
	if v, _ := cmd.Flags().GetBool(name); v {
		return true
	}
	return viper.GetBool(name)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
