package main

import (
	"fmt"

	"github.com/spf13/cobra"

	monstersvc "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

var (
	recomputeAll         bool
	recomputeMonsterID   string
	recomputeRoleMode    string
	recomputeConcurrency int
)

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Run a derivation pass over one monster or the whole database",
	Long: `Run the signal extraction, tag classification and score derivation pass
and write the results back. With --id a single monster is recomputed; with
--all every monster is swept concurrently.`,
	RunE: runRecompute,
}

func init() {
	recomputeCmd.Flags().BoolVar(&recomputeAll, "all", false, "Recompute every monster")
	recomputeCmd.Flags().StringVar(&recomputeMonsterID, "id", "", "Recompute a single monster by ID")
	recomputeCmd.Flags().StringVar(&recomputeRoleMode, "role-mode", "fill_blank", "Role assignment mode: fill_blank or overwrite")
	recomputeCmd.Flags().IntVar(&recomputeConcurrency, "concurrency", 0, "Worker limit for --all (0 uses the default)")
}

func runRecompute(cmd *cobra.Command, args []string) error {
	if recomputeAll == (recomputeMonsterID != "") {
		return fmt.Errorf("exactly one of --all or --id is required")
	}

	roleMode, err := parseRoleMode(recomputeRoleMode)
	if err != nil {
		return err
	}

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	if recomputeMonsterID != "" {
		output, err := svc.RecomputeMonster(ctx, &monstersvc.RecomputeMonsterInput{
			MonsterID: recomputeMonsterID,
			RoleMode:  roleMode,
		})
		if err != nil {
			return fmt.Errorf("failed to recompute monster: %w", err)
		}

		if output.Written {
			fmt.Printf("✅ Monster recomputed and written\n")
		} else {
			fmt.Printf("✅ Monster already up to date, nothing written\n")
		}
		printMonster(output.Monster, output.Scores)
		return nil
	}

	output, err := svc.RecomputeAll(ctx, &monstersvc.RecomputeAllInput{
		RoleMode:    roleMode,
		Concurrency: recomputeConcurrency,
	})
	if err != nil {
		return fmt.Errorf("failed to recompute monsters: %w", err)
	}

	fmt.Printf("✅ Recompute sweep finished\n")
	fmt.Printf("   Processed: %d\n", output.Processed)
	fmt.Printf("   Updated:   %d\n", output.Updated)
	fmt.Printf("   Failures:  %d\n", len(output.Failures))
	for _, failure := range output.Failures {
		fmt.Printf("     %s: %s\n", failure.MonsterID, failure.Message)
	}
	return nil
}

func parseRoleMode(mode string) (monstersvc.RoleMode, error) {
	switch monstersvc.RoleMode(mode) {
	case monstersvc.RoleModeFillBlank, monstersvc.RoleModeOverwrite:
		return monstersvc.RoleMode(mode), nil
	default:
		return "", fmt.Errorf("invalid role mode %q, must be fill_blank or overwrite", mode)
	}
}
