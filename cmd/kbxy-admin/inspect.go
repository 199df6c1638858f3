package main

import (
	"fmt"

	"github.com/spf13/cobra"

	monstersvc "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

var (
	inspectMonsterID string
	inspectPreview   bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show one monster with its derived scores",
	Long: `Show a monster record together with its stored derived scores.
With --preview, also run a dry derivation pass and print the extracted
signals, pattern matches and suggestions without writing anything.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectMonsterID, "id", "", "Monster ID to inspect")
	_ = inspectCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
	inspectCmd.Flags().BoolVar(&inspectPreview, "preview", false, "Also run a dry derivation pass")
}

func runInspect(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.GetMonster(ctx, &monstersvc.GetMonsterInput{MonsterID: inspectMonsterID})
	if err != nil {
		return fmt.Errorf("failed to get monster: %w", err)
	}

	fmt.Printf("✅ Monster\n")
	printMonster(output.Monster, output.Scores)
	if output.Healed {
		fmt.Printf("   (labels were missing and have been recomputed)\n")
	}

	if !inspectPreview {
		return nil
	}

	preview, err := svc.PreviewDerivation(ctx, &monstersvc.PreviewDerivationInput{MonsterID: inspectMonsterID})
	if err != nil {
		return fmt.Errorf("failed to preview derivation: %w", err)
	}

	fmt.Printf("\n✅ Derivation preview (nothing written)\n")
	fmt.Printf("   Suggested role: %s\n", preview.SuggestedRole)
	fmt.Printf("   Role reason:    %s\n", preview.RoleReason)
	fmt.Printf("   Suggested tags: %s\n", formatTags(preview.SuggestedTags))
	printScores(preview.Scores)
	if len(preview.Matches) == 0 {
		fmt.Printf("   Matches: (none)\n")
		return nil
	}
	fmt.Printf("   Matches:\n")
	for _, match := range preview.Matches {
		fmt.Printf("     %-18s %-12s %q\n", match.Signal, match.Skill, match.Keyword)
	}
	return nil
}
