package main

import (
	"fmt"
	"strings"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

// printMonster writes one monster as an indented block on stdout.
// scores may be nil when the caller has none to show.
func printMonster(mon *entities.Monster, scores *entities.DerivedScores) {
	fmt.Printf("   ID:      %s\n", mon.ID)
	fmt.Printf("   Name:    %s\n", mon.Name)
	fmt.Printf("   Element: %s\n", mon.Element)
	if mon.Role != "" {
		fmt.Printf("   Role:    %s (%s)\n", entities.RoleDisplay(mon.Role), mon.Role)
	} else {
		fmt.Printf("   Role:    (unassigned)\n")
	}
	fmt.Printf("   Tags:    %s\n", formatTags(mon.Tags))
	a := mon.Attributes
	fmt.Printf("   Stats:   vit %.0f  spd %.0f  atk %.0f  def %.0f  mat %.0f  mdf %.0f\n",
		a.Vitality, a.Speed, a.PhysicalPower, a.PhysicalResist, a.MagicPower, a.MagicResist)
	if len(mon.Skills) > 0 {
		names := make([]string, 0, len(mon.Skills))
		for _, skill := range mon.Skills {
			names = append(names, skill.Name)
		}
		fmt.Printf("   Skills:  %s\n", strings.Join(names, ", "))
	}
	if scores != nil {
		printScores(scores)
	}
}

func printScores(scores *entities.DerivedScores) {
	fmt.Printf("   Scores:  offense %d  survive %d  control %d  tempo %d  pp %d\n",
		scores.Offense, scores.Survive, scores.Control, scores.Tempo, scores.PPPressure)
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "(none)"
	}
	return strings.Join(tags, ", ")
}
