package main

import (
	"fmt"
	"os"

	"github.com/commit0-lite-test/deprecated/pkg/warnings"
)

func main() {
	registry := warnings.NewRegistry()
	registry.SetHandler(warnings.NewConsoleHandler(os.Stdout, false))

	// Test filter resolution order
	registry.AddFilter(warnings.Filter{Action: warnings.ActionIgnore, Category: warnings.PendingDeprecation})
	registry.AddFilter(warnings.Filter{Action: warnings.ActionAlways, Category: warnings.Deprecation})

	tests := []struct {
		message  string
		category *warnings.Category
	}{
		{"old API still in use", warnings.Deprecation},
		{"API scheduled for deprecation", warnings.PendingDeprecation},
		{"plain user warning", warnings.User},
		{"future behavior change", warnings.Future},
	}

	fmt.Println("Testing warning filter resolution:")
	for _, test := range tests {
		fmt.Printf("%-35s [%s]\n", test.message, test.category.Name())
		if err := registry.WarnCategory(test.message, test.category); err != nil {
			fmt.Printf("  Escalated: %v\n", err)
		}
		fmt.Println()
	}

	// Repeats should collapse under the default action
	fmt.Println("Testing default-action suppression:")
	for i := 0; i < 3; i++ {
		if err := registry.WarnCategory("repeated future warning", warnings.Future); err != nil {
			fmt.Printf("  Escalated: %v\n", err)
		}
	}
	fmt.Println("(a single line above means repeats were suppressed)")
	fmt.Println()

	// Test escalation
	fmt.Println("Testing escalation override:")
	restore := registry.Override(warnings.Filter{Action: warnings.ActionError})
	escalated := []string{
		"old API still in use",
		"API scheduled for deprecation",
	}
	for _, message := range escalated {
		err := registry.Warn(message)
		if err != nil {
			fmt.Printf("%-35s -> ✓ Correctly escalated: %v\n", message, err)
		} else {
			fmt.Printf("%-35s -> ✗ Should have escalated\n", message)
		}
	}
	restore()

	if err := registry.Warn("back to normal"); err != nil {
		fmt.Println("✗ Override leaked past restore")
	} else {
		fmt.Println("✓ Restore put the previous filters back")
	}
}
