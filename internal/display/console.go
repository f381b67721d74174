package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"

	"github.com/lox/blackjack-cli/internal/game"
)

// faceDownGlyph is how a hole card renders before it is revealed.
const faceDownGlyph = "🂠"

// Console is the readline-backed implementation of game.UI.
type Console struct {
	rl     *readline.Instance
	out    io.Writer
	styles *Styles
}

// Styles contains lipgloss styling for the console.
type Styles struct {
	Prompt    lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Hidden    lipgloss.Style
}

// DefaultStyles returns the standard console styling.
func DefaultStyles() *Styles {
	return &Styles{
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		RedCard:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		BlackCard: lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		Hidden:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// NewConsole creates a console reading from the terminal.
func NewConsole() (*Console, error) {
	styles := DefaultStyles()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          styles.Prompt.Render("Blackjack> "),
		HistoryFile:     "/tmp/blackjack_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, err
	}

	return &Console{rl: rl, out: rl.Stdout(), styles: styles}, nil
}

// Close closes the console.
func (c *Console) Close() error {
	return c.rl.Close()
}

// Printf writes a line of game narration.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// PromptName asks for a player name until a non-empty one arrives.
func (c *Console) PromptName() (string, error) {
	for {
		line, err := c.readLine("What's your name?: ")
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

// PromptBetAmount asks for a bet, re-prompting on anything non-numeric.
// Sign and funds checks belong to the caller; 0 means sit out.
func (c *Console) PromptBetAmount(balance string) (int, error) {
	for {
		line, err := c.readLine(fmt.Sprintf("You have %s. How much would you like to bet? (0 sits out): ", balance))
		if err != nil {
			return 0, err
		}
		amount, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, c.styles.Error.Render(fmt.Sprintf("%q is not a number.", line)))
			continue
		}
		return amount, nil
	}
}

// PromptChoice asks a question against a fixed option set, accepting any
// unambiguous case-insensitive prefix and re-prompting otherwise.
func (c *Console) PromptChoice(question string, options []string) (string, error) {
	prompt := fmt.Sprintf("%s %v?: ", strings.TrimRight(question, "?"), options)
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		if chosen, ok := matchOption(line, options); ok {
			return chosen, nil
		}
		fmt.Fprintln(c.out, c.styles.Error.Render(fmt.Sprintf("%q doesn't pick exactly one of %v.", line, options)))
	}
}

// RenderHand renders a hand, masking face-down cards unless revealAll.
func (c *Console) RenderHand(hand game.Hand, revealAll bool) string {
	if len(hand) == 0 {
		return c.styles.Info.Render("(no cards)")
	}

	parts := make([]string, 0, len(hand))
	for _, hc := range hand {
		switch {
		case !hc.FaceUp && !revealAll:
			parts = append(parts, c.styles.Hidden.Render(faceDownGlyph))
		case hc.Card.IsRed():
			parts = append(parts, c.styles.RedCard.Render(hc.Card.String()))
		default:
			parts = append(parts, c.styles.BlackCard.Render(hc.Card.String()))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// readLine reads one trimmed line under the given prompt. Interrupt and EOF
// both surface as errors; the game treats them as the player leaving.
func (c *Console) readLine(prompt string) (string, error) {
	c.rl.SetPrompt(c.styles.Prompt.Render(prompt))
	line, err := c.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// matchOption resolves input against the option set by case-insensitive
// prefix. It succeeds only when exactly one option matches; empty input
// matches nothing.
func matchOption(input string, options []string) (string, bool) {
	if input == "" {
		return "", false
	}
	lowered := strings.ToLower(input)

	var matches []string
	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt), lowered) {
			matches = append(matches, opt)
		}
	}
	if len(matches) == 1 {
		return matches[0], true
	}
	return "", false
}
