package game

// UI is the console surface the engine and interactive agents drive. The
// core never reads stdin or styles output itself; implementations live in
// internal/display. Prompt methods return an error only when input is gone
// for good (EOF, interrupt) — invalid input is their problem to re-prompt.
type UI interface {
	// PromptName asks a joining player for their name.
	PromptName() (string, error)

	// PromptBetAmount asks for a bet, showing the player's current balance.
	// It re-prompts internally on non-numeric input and returns the parsed
	// integer; validation of sign and funds is the caller's concern.
	PromptBetAmount(balance string) (int, error)

	// PromptChoice asks a question with a fixed set of labelled options and
	// returns the selected option exactly as it appears in options. Matching
	// is a case-insensitive prefix match; zero or multiple matches re-prompt.
	PromptChoice(question string, options []string) (string, error)

	// RenderHand renders a hand, masking face-down cards unless revealAll.
	RenderHand(hand Hand, revealAll bool) string

	// Printf writes a line of game narration to the player.
	Printf(format string, args ...any)
}
