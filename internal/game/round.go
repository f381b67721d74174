package game

import (
	"context"
	"fmt"
)

// Outcome is a participant's result against the house for one round.
type Outcome int

const (
	OutcomeLoss Outcome = iota
	OutcomePush
	OutcomeWin
	OutcomeNatural
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoss:
		return "loss"
	case OutcomePush:
		return "push"
	case OutcomeWin:
		return "win"
	case OutcomeNatural:
		return "natural"
	default:
		return "unknown"
	}
}

// outcomeFor applies the settlement matrix. dealerTotal must already be 0
// when the dealer busted. Natural beats any non-natural 21; two naturals
// push.
func outcomeFor(hand Hand, dealerTotal int, dealerNatural bool) Outcome {
	if hand.IsBusted() {
		return OutcomeLoss
	}
	if hand.IsNatural() {
		if dealerNatural {
			return OutcomePush
		}
		return OutcomeNatural
	}
	switch total := hand.Value(); {
	case total > dealerTotal:
		return OutcomeWin
	case total == dealerTotal:
		return OutcomePush
	default:
		return OutcomeLoss
	}
}

// naturalPayout is the 3:2 house payout on a natural, floored on odd stakes.
func naturalPayout(amount int) int {
	return amount * 3 / 2
}

// playRound runs one complete round: CollectBets, Deal, DealerNaturalCheck,
// PlayerDecisions, Settle, Reset, EndGameCheck. It reports whether the game
// continues into another round.
func (e *Engine) playRound(ctx context.Context) (bool, error) {
	e.ui.Printf("")
	e.ui.Printf("— Round %d —", e.roundNum)

	if err := e.collectBets(); err != nil {
		return false, err
	}

	active := e.activeBettors()
	if len(active) == 0 {
		e.ui.Printf("Nobody placed a bet this round.")
		e.table.ClearPot()
		return e.endGameCheck()
	}

	if err := e.dealOpening(active); err != nil {
		return false, err
	}

	dealer := e.table.Dealer()
	if dealer.Hand.IsNatural() {
		// Dealer's natural ends all drawing; the hole card goes public and
		// settlement runs immediately.
		dealer.Hand.Reveal()
		e.ui.Printf("Dealer has a natural: %s", e.ui.RenderHand(dealer.Hand, true))
		e.logger.Info("dealer natural", "round", e.roundID)
	} else {
		if err := e.playDecisions(ctx, active); err != nil {
			return false, err
		}
	}

	if err := e.settle(active); err != nil {
		return false, err
	}

	e.reset()
	return e.endGameCheck()
}

// collectBets asks every seated player for a wager; a nil bet sits the
// player out for the round.
func (e *Engine) collectBets() error {
	for _, p := range e.table.Players() {
		e.table.SetActive(p)
		bet, err := p.DecideBet(e.currency)
		if err != nil {
			return err
		}
		if bet == nil {
			e.ui.Printf("%s made no bet and sits this round out.", p.Name)
			continue
		}
		e.table.PlaceBet(p, bet)
		e.ui.Printf("%s made a %s.", p.Name, bet)
		e.logger.Info("bet placed", "round", e.roundID, "player", p.Name, "amount", bet.Amount)
	}
	e.table.SetActive(nil)
	return nil
}

// activeBettors returns the players with a pot entry, in turn order.
func (e *Engine) activeBettors() []*Player {
	var active []*Player
	for _, p := range e.table.Players() {
		if e.table.BetFor(p) != nil {
			active = append(active, p)
		}
	}
	return active
}

// dealOpening deals two cards to every active player and then the dealer:
// the hole card face down, the second card face up.
func (e *Engine) dealOpening(active []*Player) error {
	for _, p := range append(append([]*Player{}, active...), e.table.Dealer()) {
		if err := e.table.DealTo(p, false); err != nil {
			return fmt.Errorf("dealing hole card to %s: %w", p.Name, err)
		}
		if err := e.table.DealTo(p, true); err != nil {
			return fmt.Errorf("dealing up card to %s: %w", p.Name, err)
		}
	}

	for _, p := range active {
		e.ui.Printf("%s's hand: %s", p.Name, e.ui.RenderHand(p.Hand, false))
	}
	dealer := e.table.Dealer()
	e.ui.Printf("Dealer shows: %s", e.ui.RenderHand(dealer.Hand, false))
	return nil
}

// playDecisions runs each active player's hit/stay loop, then the dealer's,
// in turn order. The dealer only plays out their hand when some player still
// has a total worth comparing; an all-busted or all-natural table settles on
// the dealer's two cards.
func (e *Engine) playDecisions(ctx context.Context, active []*Player) error {
	for _, p := range active {
		e.table.SetActive(p)
		e.ui.Printf("")
		e.ui.Printf("%s's turn. Your hand: %s (%d)", p.Name, e.ui.RenderHand(p.Hand, true), p.Hand.Value())

		for !p.Hand.IsBusted() {
			hit, err := p.DecideHit()
			if err != nil {
				return err
			}
			if !hit {
				e.ui.Printf("%s stays on %d.", p.Name, p.Hand.Value())
				break
			}
			if err := e.table.DealTo(p, true); err != nil {
				return fmt.Errorf("dealing to %s: %w", p.Name, err)
			}
			e.ui.Printf("%s's hand: %s (%d)", p.Name, e.ui.RenderHand(p.Hand, true), p.Hand.Value())
			if p.Hand.IsBusted() {
				e.ui.Printf("%s busted!", p.Name)
				e.logger.Info("player busted", "round", e.roundID, "player", p.Name)
			}
		}
	}

	dealer := e.table.Dealer()
	if !e.dealerShouldPlay(active) {
		e.logger.Info("dealer draw skipped, no live hands to beat", "round", e.roundID)
		e.table.SetActive(nil)
		return nil
	}

	e.table.SetActive(dealer)
	dealer.Hand.Reveal()
	e.ui.Printf("")
	e.ui.Printf("Dealer reveals: %s (%d)", e.ui.RenderHand(dealer.Hand, true), dealer.Hand.Value())

	for !dealer.Hand.IsBusted() {
		hit, err := dealer.DecideHit()
		if err != nil {
			return err
		}
		if !hit {
			e.ui.Printf("Dealer stands on %d.", dealer.Hand.Value())
			break
		}
		e.pause(ctx)
		if err := e.table.DealTo(dealer, true); err != nil {
			return fmt.Errorf("dealing to dealer: %w", err)
		}
		e.ui.Printf("Dealer draws: %s (%d)", e.ui.RenderHand(dealer.Hand, true), dealer.Hand.Value())
	}
	if dealer.Hand.IsBusted() {
		e.ui.Printf("Dealer busted!")
		e.logger.Info("dealer busted", "round", e.roundID)
	}
	e.table.SetActive(nil)
	return nil
}

// dealerShouldPlay reports whether any active player still has a hand the
// dealer's draws could change the outcome for.
func (e *Engine) dealerShouldPlay(active []*Player) bool {
	for _, p := range active {
		if !p.Hand.IsBusted() && !p.Hand.IsNatural() {
			return true
		}
	}
	return false
}

// settle pays every active bettor per the settlement matrix. Losses flow to
// the house bankroll when there is one; wins and naturals are paid by the
// house through Payout, and a shortfall there is a reportable invariant
// violation that ends the game.
func (e *Engine) settle(active []*Player) error {
	dealer := e.table.Dealer()
	dealer.Hand.Reveal()

	dealerTotal := 0
	if !dealer.Hand.IsBusted() {
		dealerTotal = dealer.Hand.Value()
	}
	dealerNatural := dealer.Hand.IsNatural()

	e.ui.Printf("")
	e.ui.Printf("Dealer's hand: %s (%d)", e.ui.RenderHand(dealer.Hand, true), dealer.Hand.Value())

	for _, p := range active {
		bet := e.table.BetFor(p)
		outcome := outcomeFor(p.Hand, dealerTotal, dealerNatural)
		e.logger.Info("settlement", "round", e.roundID, "player", p.Name,
			"outcome", outcome, "playerValue", p.Hand.Value(), "dealerTotal", dealerTotal)

		switch outcome {
		case OutcomeLoss:
			if dealer.Bankroll != nil {
				dealer.Bankroll.Deposit(bet.Currency, bet.Amount)
			}
			e.ui.Printf("%s loses their %s.", p.Name, bet)

		case OutcomePush:
			p.Bankroll.Deposit(bet.Currency, bet.Amount)
			e.ui.Printf("%s pushes; their %s is returned.", p.Name, bet)

		case OutcomeWin:
			winnings, err := dealer.Payout(bet.Currency, bet.Amount)
			if err != nil {
				return fmt.Errorf("house cannot cover payout to %s: %w", p.Name, err)
			}
			p.Bankroll.Deposit(bet.Currency, bet.Amount+winnings)
			e.ui.Printf("%s wins %s!", p.Name, bet.Currency.FormatAmount(winnings))

		case OutcomeNatural:
			winnings, err := dealer.Payout(bet.Currency, naturalPayout(bet.Amount))
			if err != nil {
				return fmt.Errorf("house cannot cover payout to %s: %w", p.Name, err)
			}
			p.Bankroll.Deposit(bet.Currency, bet.Amount+winnings)
			e.ui.Printf("%s has a natural and wins %s!", p.Name, bet.Currency.FormatAmount(winnings))
		}
	}
	return nil
}

// reset moves every hand to the discard pile and clears the pot.
func (e *Engine) reset() {
	for _, p := range e.table.Participants() {
		e.table.DiscardHand(p)
	}
	e.table.ClearPot()
	if discards := e.table.Discards(); len(discards) > 0 {
		e.ui.Printf("Discards: %s", formatCards(discards))
	}
}

// endGameCheck ejects broke players, offers the rest a cash-out, and ends
// the game when the house is broke or no players remain.
func (e *Engine) endGameCheck() (bool, error) {
	dealer := e.table.Dealer()
	if dealer.Bankroll != nil && dealer.Bankroll.Balance(e.currency) == 0 {
		e.ui.Printf("The house is out of funds. Game over!")
		e.logger.Info("house insolvent, ending game")
		return false, nil
	}

	for _, p := range append([]*Player{}, e.table.Players()...) {
		if p.Bankroll.Balance(e.currency) == 0 {
			e.ui.Printf("%s is out of %s and leaves the table.", p.Name, e.currency.Plural)
			e.results = append(e.results, sessionResult{Name: p.Name})
			if err := e.table.Remove(p); err != nil {
				return false, err
			}
			continue
		}

		question := fmt.Sprintf("%s, you have %s. Play on or cash out", p.Name, p.Bankroll.Format(e.currency))
		choice, err := e.ui.PromptChoice(question, []string{"play", "cash out"})
		if err != nil {
			return false, err
		}
		if choice == "cash out" {
			e.ui.Printf("%s cashes out with %s.", p.Name, p.Bankroll.Format(e.currency))
			e.results = append(e.results, sessionResult{Name: p.Name, Balance: p.Bankroll.Balance(e.currency)})
			if err := e.table.Remove(p); err != nil {
				return false, err
			}
		}
	}

	if len(e.table.Players()) == 0 {
		e.ui.Printf("No players remain at the table. Game over!")
		return false, nil
	}
	return true, nil
}
