// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the intake-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/confdesk/intake-engine/internal/export"
	"github.com/confdesk/intake-engine/internal/grobid"
	"github.com/confdesk/intake-engine/internal/ocr"
	"github.com/confdesk/intake-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the intake-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "intake-engine",
	Short: "Extraction engine for conference paper-submission intake",
	Long: `intake-engine turns unstructured submission documents into structured
records. Paper PDFs go through an external GROBID conversion service and
the resulting TEI XML is parsed into document metadata (title, authors,
abstract, keywords, affiliations). Payment receipt images go through OCR
and a rule-based parser that recovers transaction IDs, amount, date, and
counterparties.

Each extraction surface is a subcommand: metadata, receipt, emails, and
text. The upstream form code composes these into the intake workflow.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./intake-engine.yaml or ~/.config/intake-engine/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "GROBID server URL (e.g. http://localhost:8070)")
	rootCmd.PersistentFlags().Duration("timeout", 120*time.Second, "HTTP timeout for the GROBID server")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("intake-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "intake-engine"))
		}
	}

	viper.SetEnvPrefix("INTAKE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// grobidClient builds the conversion-service client from flags and
// config. Flags win over the config file.
func grobidClient(cmd *cobra.Command) (*grobid.Client, error) {
	server, _ := cmd.Flags().GetString("server")
	if server == "" {
		server = viper.GetString("grobid.server_url")
	}
	if server == "" {
		return nil, fmt.Errorf("no GROBID server configured: set --server or grobid.server_url")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	cfg := types.GrobidConfig{
		HTTPConfig: types.HTTPConfig{Timeout: timeout},
		ServerURL:  server,
		MaxRetries: viper.GetInt("grobid.max_retries"),
	}
	return grobid.NewClient(cfg), nil
}

// imageBackends assembles the OCR fallback chain: Tesseract first,
// then optionally the GROBID server as a low-fidelity text source.
func imageBackends(cmd *cobra.Command) []ocr.Backend {
	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		lang = viper.GetString("ocr.language")
	}

	backends := []ocr.Backend{&ocr.TesseractBackend{Language: lang}}

	useGrobid, _ := cmd.Flags().GetBool("grobid-fallback")
	if useGrobid || viper.GetBool("ocr.enable_grobid_fallback") {
		if client, err := grobidClient(cmd); err == nil {
			backends = append(backends, &ocr.GrobidBackend{Client: client})
		}
	}
	return backends
}

// writeRecord prints a record to stdout in the requested format.
func writeRecord(record any, format string) error {
	switch format {
	case "yaml", "":
		return export.WriteYAML(os.Stdout, record)
	case "json":
		return export.WriteJSON(os.Stdout, record)
	case "csv":
		return export.WriteCSV(os.Stdout, record)
	default:
		return fmt.Errorf("unknown output format %q (yaml, json, or csv)", format)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
