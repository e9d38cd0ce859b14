package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/Dash-ajou/dashgen/internal/branding"
	"github.com/Dash-ajou/dashgen/internal/manifest"
)

var (
	configInitDir  string
	configShowJSON bool
)

func init() {
	configInitCmd.Flags().StringVar(&configInitDir, "dir", ".", "Directory to write "+branding.ManifestFile()+" into")
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "Print as JSON")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the scaffold manifest",
	Long: `Inspect the effective settings or record them in ` + branding.ManifestFile() + `, the
manifest that pins a project's root, services, and libraries.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write " + branding.ManifestFile() + " from the effective settings",
	Long: `Write a new manifest populated from defaults, environment, and flags.
An existing manifest is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		path := filepath.Join(configInitDir, branding.ManifestFile())
		if err := manifest.Write(path, cfg.ToManifest()); err != nil {
			return err
		}
		printer.OK("Created %s", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		w := printer.Writer()
		if configShowJSON {
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			fmt.Fprintln(w, string(data))
			return nil
		}

		source := cfg.Manifest
		if source == "" {
			source = "defaults"
		}
		fmt.Fprintf(w, "# source: %s\n", source)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		return enc.Close()
	},
}
