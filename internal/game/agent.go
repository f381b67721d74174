package game

// dealerStand is the house rule: the dealer stands on any 17, soft or hard.
const dealerStand = 17

// Agent supplies a participant's decisions. Agents never mutate table state;
// the round coordinator applies what they decide.
type Agent interface {
	// DecideBet returns the player's wager for the round, or nil to sit the
	// round out. An error means input is gone for good and the game should
	// wind down.
	DecideBet(p *Player, cur *Currency) (*Bet, error)

	// DecideHit reports whether the player takes another card.
	DecideHit(p *Player) (bool, error)
}

// HouseAgent is the dealer's fixed policy: never bet, hit below 17, stand on
// any 17.
type HouseAgent struct{}

// NewHouseAgent creates the dealer policy.
func NewHouseAgent() *HouseAgent {
	return &HouseAgent{}
}

// DecideBet always declines; the dealer never wagers.
func (a *HouseAgent) DecideBet(_ *Player, _ *Currency) (*Bet, error) {
	return nil, nil
}

// DecideHit hits while the hand's best value is below 17.
func (a *HouseAgent) DecideHit(p *Player) (bool, error) {
	return p.Hand.Value() < dealerStand, nil
}

// InteractiveAgent defers decisions to a human through the UI. Invalid input
// is recovered locally by re-prompting; only a dead input stream propagates.
type InteractiveAgent struct {
	ui UI
}

// NewInteractiveAgent creates an agent that prompts through the given UI.
func NewInteractiveAgent(ui UI) *InteractiveAgent {
	return &InteractiveAgent{ui: ui}
}

// DecideBet prompts for a bet amount until the player names one their
// bankroll can cover. Zero means sit out this round.
func (a *InteractiveAgent) DecideBet(p *Player, cur *Currency) (*Bet, error) {
	for {
		amount, err := a.ui.PromptBetAmount(p.Bankroll.Format(cur))
		if err != nil {
			return nil, err
		}
		if amount == 0 {
			return nil, nil
		}
		bet, err := p.MakeBet(cur, amount, BetStandard)
		if err != nil {
			a.ui.Printf("Bet invalid: %v", err)
			continue
		}
		return bet, nil
	}
}

// DecideHit asks for an explicit hit or stay.
func (a *InteractiveAgent) DecideHit(_ *Player) (bool, error) {
	answer, err := a.ui.PromptChoice("Will you hit or stay?", []string{"hit", "stay"})
	if err != nil {
		return false, err
	}
	return answer == "hit", nil
}
