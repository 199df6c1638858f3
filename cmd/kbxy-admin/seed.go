package main

import (
	"fmt"

	"github.com/spf13/cobra"

	monstersvc "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

var (
	seedCount    int
	seedWithTags bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate demo monsters for a fresh database",
	Long: `Generate randomized demo monsters so a fresh database has something to
curate. With --with-tags the canonical tag registry entries are seeded first.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 10, "Number of demo monsters to generate")
	seedCmd.Flags().BoolVar(&seedWithTags, "with-tags", false, "Also seed the canonical tag registry entries")
}

func runSeed(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	if seedWithTags {
		seeded, err := svc.SeedTags(ctx, &monstersvc.SeedTagsInput{})
		if err != nil {
			return fmt.Errorf("failed to seed tags: %w", err)
		}
		fmt.Printf("✅ Seeded %d canonical tag(s)\n", seeded.Seeded)
	}

	output, err := svc.GenerateMonsters(ctx, &monstersvc.GenerateMonstersInput{Count: seedCount})
	if err != nil {
		return fmt.Errorf("failed to generate monsters: %w", err)
	}

	fmt.Printf("✅ Generated %d demo monster(s)\n", len(output.Monsters))
	for _, mon := range output.Monsters {
		fmt.Printf("   %-14s %-10s %-4s %s\n", mon.ID, mon.Name, mon.Element, mon.Role)
	}
	return nil
}
