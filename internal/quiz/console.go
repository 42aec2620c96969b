package quiz

// Console is the interactive port the quiz talks through
type Console interface {
	// Prompt shows text and returns the next line typed by the user
	Prompt(text string) (string, error)
	// Show prints one line
	Show(text string)
}
