package confmodel

import "fmt"

// GeneratedBanner formats the file-level comment block stamped on every
// written config artifact. It carries no timestamp so repeated runs with
// identical input produce byte-identical output.
func GeneratedBanner(description, version string) []string {
	return []string{
		description,
		"",
		fmt.Sprintf("Generated by taucmdr configure %s.", version),
		"Hand edits are preserved in meaning but not in layout on the next run.",
	}
}
