// Package cards holds the flashcard model.
package cards

// Card is a single flashcard.
type Card struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// Example returns a sample card for previews and tests.
func Example() Card {
	return Card{Prompt: "Who played the 13th Doctor in Doctor Who?", Answer: "Jodie Whittaker"}
}
