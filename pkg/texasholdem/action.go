package texasholdem

import "strings"

// Action is a betting decision a participant can make
type Action string

// valid actions
const (
	// ActionStay checks when there is nothing to call, otherwise calls
	ActionStay Action = "stay"

	// ActionRaise calls any outstanding bet, then bets an additional amount
	ActionRaise Action = "raise"

	// ActionFold abandons the hand
	ActionFold Action = "fold"
)

// ActionFromString parses an action from its string representation.
// Parsing is case-insensitive.
func ActionFromString(s string) (Action, error) {
	switch action := Action(strings.ToLower(s)); action {
	case ActionStay, ActionRaise, ActionFold:
		return action, nil
	}

	return "", newError("%s is not a valid action", s)
}
