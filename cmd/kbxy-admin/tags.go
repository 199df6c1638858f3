package main

import (
	"fmt"

	"github.com/spf13/cobra"

	monstersvc "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

var (
	tagRegisterCode    string
	tagRegisterDisplay string
	tagRegisterNote    string
	tagDeleteCode      string
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage the tag registry",
	Long: `Manage the tag registry: the canonical engine tags plus any curated
tags registered by hand.`,
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every tag registry entry",
	RunE:  runTagsList,
}

var tagsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the canonical engine tag entries",
	RunE:  runTagsSeed,
}

var tagsRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a curated tag",
	RunE:  runTagsRegister,
}

var tagsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a curated tag registry entry",
	RunE:  runTagsDelete,
}

func init() {
	tagsRegisterCmd.Flags().StringVar(&tagRegisterCode, "code", "", "Tag code")
	_ = tagsRegisterCmd.MarkFlagRequired("code") // nolint:errcheck // safe to ignore in init
	tagsRegisterCmd.Flags().StringVar(&tagRegisterDisplay, "display", "", "Display name (defaults to the code)")
	tagsRegisterCmd.Flags().StringVar(&tagRegisterNote, "note", "", "Curator note")

	tagsDeleteCmd.Flags().StringVar(&tagDeleteCode, "code", "", "Tag code")
	_ = tagsDeleteCmd.MarkFlagRequired("code") // nolint:errcheck // safe to ignore in init

	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsSeedCmd)
	tagsCmd.AddCommand(tagsRegisterCmd)
	tagsCmd.AddCommand(tagsDeleteCmd)
}

func runTagsList(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.ListTags(ctx, &monstersvc.ListTagsInput{})
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	if len(output.Tags) == 0 {
		fmt.Printf("No tags registered\n")
		return nil
	}

	for _, tag := range output.Tags {
		note := tag.Note
		if note == "" {
			note = "-"
		}
		fmt.Printf("%-14s %-10s %-6s %s\n", tag.Code, tag.Display, tag.Kind, note)
	}
	fmt.Printf("\n%d tag(s)\n", len(output.Tags))
	return nil
}

func runTagsSeed(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.SeedTags(ctx, &monstersvc.SeedTagsInput{})
	if err != nil {
		return fmt.Errorf("failed to seed tags: %w", err)
	}

	fmt.Printf("✅ Seeded %d canonical tag(s)\n", output.Seeded)
	return nil
}

func runTagsRegister(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.RegisterTag(ctx, &monstersvc.RegisterTagInput{
		Code:    tagRegisterCode,
		Display: tagRegisterDisplay,
		Note:    tagRegisterNote,
	})
	if err != nil {
		return fmt.Errorf("failed to register tag: %w", err)
	}

	fmt.Printf("✅ Tag registered\n")
	fmt.Printf("   Code:    %s\n", output.Tag.Code)
	fmt.Printf("   Display: %s\n", output.Tag.Display)
	fmt.Printf("   Kind:    %s\n", output.Tag.Kind)
	return nil
}

func runTagsDelete(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	output, err := svc.DeleteTag(ctx, &monstersvc.DeleteTagInput{Code: tagDeleteCode})
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	fmt.Printf("✅ %s\n", output.Message)
	return nil
}
