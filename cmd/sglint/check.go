package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sglint/internal/diagfmt"
	"sglint/internal/driver"
	"sglint/internal/lint"
	"sglint/internal/lint/rules"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <artifact.sgt>...",
	Short: "Run the security rules over tree artifacts",
	Long:  `Run the enabled security rules over one or more semantic tree artifacts and report diagnostics`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	checkCmd.Flags().String("config", "", "path to sglint.toml (default: ./sglint.toml if present)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Int("width", 0, "max source line width in pretty output (0=unlimited)")
}

// runCheck builds the rule registry from configuration, lints every artifact
// given on the command line, prints the diagnostics in the chosen format and
// exits non-zero when any deny-level diagnostic was produced.
func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return err
	}
	fullpath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return err
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}

	reg, cfgErrs, err := buildRegistry(cmd)
	if err != nil {
		return err
	}
	// Config errors are warnings: the remaining valid rules still run.
	for _, ce := range cfgErrs {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", ce.Error())
	}

	results, err := driver.CheckPaths(cmd.Context(), args, reg, driver.Options{Jobs: jobs})
	if err != nil {
		return err
	}

	pathMode := diagfmt.PathModeAuto
	if fullpath {
		pathMode = diagfmt.PathModeAbsolute
	}

	broken := false
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", res.Path, res.Err)
			broken = true
			continue
		}
		switch format {
		case "pretty":
			diagfmt.Pretty(cmd.OutOrStdout(), res.Diags, res.Files, diagfmt.PrettyOpts{
				Color:     useColor(cmd),
				PathMode:  pathMode,
				Width:     width,
				ShowNotes: withNotes,
			})
		case "short":
			if out := diagfmt.Short(res.Diags, res.Files, pathMode); out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
		case "json":
			err := diagfmt.JSON(cmd.OutOrStdout(), res.Diags, res.Files, diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         pathMode,
				IncludeNotes:     withNotes,
			})
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q", format)
		}
	}

	if broken {
		os.Exit(1)
	}
	if driver.HasDeny(results) {
		os.Exit(2)
	}
	return nil
}

// buildRegistry loads configuration (explicit path, or ./sglint.toml when
// present) and assembles the enabled rule set.
func buildRegistry(cmd *cobra.Command) (*lint.Registry, []lint.ConfigError, error) {
	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}

	var cfg *lint.Config
	if cfgPath == "" {
		if _, statErr := os.Stat("sglint.toml"); statErr == nil {
			cfgPath = "sglint.toml"
		}
	}
	if cfgPath != "" {
		cfg, err = lint.LoadConfig(cfgPath)
		if err != nil {
			return nil, nil, err
		}
	}

	reg, cfgErrs := lint.FromConfig(rules.All(), cfg)
	return reg, cfgErrs, nil
}
