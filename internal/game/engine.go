package game

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/fileutil"
)

// Engine is the round coordinator: it seats the table from config, drives
// the round state machine, and loops rounds until an end-game condition.
type Engine struct {
	cfg    *Config
	ui     UI
	logger *log.Logger
	clock  quartz.Clock
	rng    *rand.Rand

	table    *Table
	currency *Currency
	pace     time.Duration

	roundNum int
	roundID  string // short id for correlating log lines within a round
	results  []sessionResult
}

// sessionResult records how a player left the table.
type sessionResult struct {
	Name    string
	Balance int
}

// NewEngine creates an engine. The clock is real in production and mocked in
// tests; the rng seeds every shuffle.
func NewEngine(cfg *Config, ui UI, logger *log.Logger, clock quartz.Clock, rng *rand.Rand) *Engine {
	return &Engine{
		cfg:    cfg,
		ui:     ui,
		logger: logger,
		clock:  clock,
		rng:    rng,
		pace:   time.Duration(cfg.Game.PaceMs) * time.Millisecond,
	}
}

// Run performs table setup — stake selection, player registration — then
// plays rounds until the game ends or input runs out.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.setup(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			e.ui.Printf("Game over!")
			return e.finish()
		}

		e.roundNum++
		e.roundID = uuid.NewString()[:8]
		e.logger.Info("round starting", "round", e.roundID, "number", e.roundNum,
			"players", len(e.table.Players()))

		cont, err := e.playRound(ctx)
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}

	e.ui.Printf("Thanks for playing!")
	return e.finish()
}

// finish records the balances of anyone still seated and writes the session
// summary when one is configured.
func (e *Engine) finish() error {
	for _, p := range e.table.Players() {
		e.results = append(e.results, sessionResult{Name: p.Name, Balance: p.Bankroll.Balance(e.currency)})
	}

	if e.cfg.Game.SummaryFile == "" {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "blackjack session ended %s\n", e.clock.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "stake: %s\n", e.currency.Plural)
	fmt.Fprintf(&b, "rounds played: %d\n", e.roundNum)
	for _, r := range e.results {
		fmt.Fprintf(&b, "%s: %s\n", r.Name, e.currency.FormatAmount(r.Balance))
	}

	if err := fileutil.WriteFileAtomic(e.cfg.Game.SummaryFile, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing session summary: %w", err)
	}
	e.logger.Info("session summary written", "path", e.cfg.Game.SummaryFile)
	return nil
}

// Table exposes the table for inspection; display layers read it, only the
// engine writes it.
func (e *Engine) Table() *Table {
	return e.table
}

// Currency returns the stake currency chosen at setup.
func (e *Engine) Currency() *Currency {
	return e.currency
}

// setup selects the stake, builds the dealer and deck, and registers
// players with their starting bankrolls.
func (e *Engine) setup() error {
	stake, err := e.chooseStake()
	if err != nil {
		return err
	}
	e.currency = NewCurrency(stake.Singular, stake.Plural)
	e.logger.Info("stake selected", "stake", stake.Name, "buyIn", stake.BuyIn)

	var houseBank *Bankroll
	if e.cfg.Game.DealerBank > 0 {
		houseBank = NewBankroll()
		houseBank.Deposit(e.currency, e.cfg.Game.DealerBank)
	}
	dealer := NewPlayer("Dealer", houseBank, NewHouseAgent())

	d := deck.New(e.rng)
	d.Shuffle()
	e.table = NewTable(dealer, d, e.logger)

	for i := 0; i < e.cfg.Game.Seats; i++ {
		p, err := e.registerPlayer(stake)
		if err != nil {
			return err
		}
		e.table.Seat(p)
	}

	names := make([]string, 0, len(e.table.Participants()))
	for _, p := range e.table.Participants() {
		names = append(names, p.Name)
	}
	e.ui.Printf("The table has the following players: %s", strings.Join(names, ", "))
	return nil
}

// chooseStake asks what the table is betting with.
func (e *Engine) chooseStake() (StakeConfig, error) {
	names := make([]string, len(e.cfg.Stakes))
	for i, s := range e.cfg.Stakes {
		names[i] = s.Name
	}
	chosen, err := e.ui.PromptChoice("What are you betting with?", names)
	if err != nil {
		return StakeConfig{}, err
	}
	for _, s := range e.cfg.Stakes {
		if s.Name == chosen {
			return s, nil
		}
	}
	return StakeConfig{}, fmt.Errorf("unknown stake %q", chosen)
}

// registerPlayer prompts for a name and funds the starting bankroll.
func (e *Engine) registerPlayer(stake StakeConfig) (*Player, error) {
	name, err := e.ui.PromptName()
	if err != nil {
		return nil, err
	}

	bank := NewBankroll()
	bank.Deposit(e.currency, stake.BuyIn)
	p := NewPlayer(name, bank, NewInteractiveAgent(e.ui))
	e.ui.Printf("%s starts with a bankroll of %s.", p.Name, bank.Format(e.currency))
	return p, nil
}

// pause waits the configured dealer pacing interval so the player can
// follow the dealer's draws; cancelled contexts cut it short.
func (e *Engine) pause(ctx context.Context) {
	if e.pace <= 0 {
		return
	}
	timer := e.clock.NewTimer(e.pace)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// formatCards joins short card names for narration lines.
func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
