package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"econ-cdn/core/resolve"
	"econ-cdn/feature/items"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	phaseFlag      string
	largeFlag      bool
	patchFlag      bool
	statusIconFlag bool
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <display name>",
	Short: "Resolve an item display name to its image URL",
	Example: `  econ-cdn resolve "AWP | Redline (Field-Tested)"
  econ-cdn resolve "★ Karambit | Gamma Doppler (Factory New)" --phase phase1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		phase, ok := resolve.ParsePhase(phaseFlag)
		if !ok {
			return fmt.Errorf("unknown phase %q", phaseFlag)
		}

		svc, err := resolverService(cmd.Context())
		if err != nil {
			return err
		}
		resp, err := svc.ResolveImage(cmd.Context(), args[0], phase)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

// stickerCmd represents the sticker command
var stickerCmd = &cobra.Command{
	Use:   "sticker <material>",
	Short: "Resolve a sticker, patch or status icon by material name",
	Example: `  econ-cdn sticker cologne2016/astr_gold --large
  econ-cdn sticker case01/patch_dust2 --patch
  econ-cdn sticker service_medal_2015 --status-icon --large`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := items.MaterialSticker
		switch {
		case patchFlag && statusIconFlag:
			return fmt.Errorf("--patch and --status-icon are mutually exclusive")
		case patchFlag:
			kind = items.MaterialPatch
		case statusIconFlag:
			kind = items.MaterialStatusIcon
		}

		svc, err := resolverService(cmd.Context())
		if err != nil {
			return err
		}
		resp, err := svc.MaterialImage(kind, args[0], largeFlag)
		if err != nil {
			return fmt.Errorf("%s %s: %w", kind, args[0], err)
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

// weaponCmd represents the weapon command
var weaponCmd = &cobra.Command{
	Use:     "weapon <defindex> <paintindex>",
	Short:   "Resolve a weapon by definition index and paint kit index",
	Example: `  econ-cdn weapon 9 259`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		defIndex, err := strconv.Atoi(args[0])
		if err != nil || defIndex < 0 {
			return fmt.Errorf("invalid definition index %q", args[0])
		}
		paintIndex, err := strconv.Atoi(args[1])
		if err != nil || paintIndex < 0 {
			return fmt.Errorf("invalid paint index %q", args[1])
		}

		svc, err := resolverService(cmd.Context())
		if err != nil {
			return err
		}
		resp, err := svc.WeaponImage(defIndex, paintIndex)
		if err != nil {
			return fmt.Errorf("weapon %d/%d: %w", defIndex, paintIndex, err)
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

func init() {
	RootCmd.AddCommand(resolveCmd, stickerCmd, weaponCmd)

	resolveCmd.Flags().StringVar(&phaseFlag, "phase", "", "Doppler phase or gem, e.g. phase2, ruby, emerald")
	stickerCmd.Flags().BoolVar(&largeFlag, "large", false, "Resolve the large variant")
	stickerCmd.Flags().BoolVar(&patchFlag, "patch", false, "Treat the material as a patch_material")
	stickerCmd.Flags().BoolVar(&statusIconFlag, "status-icon", false, "Treat the material as a status icon name")
}

// resolverService loads the catalog once and returns the items service over it.
func resolverService(ctx context.Context) (*items.Service, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := newRuntime()
	if err != nil {
		return nil, err
	}

	if _, err := rt.store.Refresh(ctx); err != nil {
		return nil, err
	}

	svc := items.NewService(rt.store, rt.assets, rt.builder, rt.cfg.Features, rt.db, rt.logger)
	if rt.db != nil {
		if err := svc.Migrate(); err != nil {
			rt.logger.Warn("Miss log migration failed", zap.Error(err))
		}
	}
	return svc, nil
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
