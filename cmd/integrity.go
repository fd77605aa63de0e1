package cmd

import (
	"context"
	"fmt"

	"econ-cdn/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the asset storage",
	Long: `Checks the bucket folder structure, the catalog objects, the asset coverage of the
catalog and the miss log database schema. Without a subcommand every check runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), checkAll)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkStructure)
	},
}

// catalogCheckCmd represents the integrity catalog command
var catalogCheckCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check that the catalog objects exist and normalize",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkCatalog)
	},
}

// coverageCmd represents the integrity coverage command
var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Check that every sticker, patch and music kit has its art in storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkCoverage)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check integrity of the miss log database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkServer)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, catalogCheckCmd, coverageCmd, serverCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

type integrityCheck int

const (
	checkAll integrityCheck = iota
	checkStructure
	checkCatalog
	checkCoverage
	checkServer
)

func runIntegrityChecks(ctx context.Context, only integrityCheck) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()

	svc := integrity.NewService(rt.client, rt.cfg.Storage.Bucket, integrity.Options{
		Catalog:     rt.cfg.Catalog,
		AssetPrefix: rt.cfg.Assets.Prefix,
		Assets:      rt.assets,
	}, rt.db, logg)

	run := func(c integrityCheck) bool { return only == checkAll || only == c }

	if run(checkStructure) {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if only == checkStructure && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else if only == checkStructure {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if run(checkCatalog) {
		logg.Info("Checking catalog objects...")
		report, err := svc.CheckCatalog(ctx)
		if err != nil {
			return fmt.Errorf("catalog check failed: %w", err)
		}

		switch {
		case report.Valid:
			logg.Info("Catalog is valid.",
				zap.Int("items", report.Stats.Items),
				zap.Int("paint_kits", report.Stats.PaintKits),
				zap.Int("sticker_kits", report.Stats.StickerKits),
				zap.Int("manifest_entries", report.Stats.ManifestEntries))
		case len(report.MissingObjects) > 0:
			logg.Warn("Missing catalog objects detected", zap.Strings("missing", report.MissingObjects))
		default:
			logg.Warn("Catalog does not normalize",
				zap.String("section", report.Section),
				zap.String("key", report.Key),
				zap.String("error", report.Error))
		}
	}

	if run(checkCoverage) {
		logg.Info("Checking asset coverage (this might take a while)...")
		report, err := svc.CheckCoverage(ctx)
		if err != nil {
			logg.Error("Coverage check failed", zap.Error(err))
		} else if report.Complete() {
			logg.Info("Every catalog entry has its asset.", zap.Int("checked", report.Checked))
		} else {
			logg.Warn("Catalog entries without assets detected",
				zap.Int("checked", report.Checked),
				zap.Strings("stickers", report.MissingStickers),
				zap.Strings("patches", report.MissingPatches),
				zap.Strings("music_kits", report.MissingMusicKits))
		}
	}

	if run(checkServer) {
		logg.Info("Checking server schema integrity...")
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
		} else {
			logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	return nil
}
