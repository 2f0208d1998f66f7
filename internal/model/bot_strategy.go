package model

// SeatControl selects who makes decisions for a seat
type SeatControl string

const (
	ControlHuman     SeatControl = "human"
	ControlHeuristic SeatControl = "heuristic"
	ControlRandom    SeatControl = "random"
)

// SeatControlDisplayName returns a human-readable label for a seat control
func SeatControlDisplayName(control SeatControl) string {
	switch control {
	case ControlHuman:
		return "Human"
	case ControlHeuristic:
		return "Computer"
	case ControlRandom:
		return "Computer (random)"
	default:
		return string(control)
	}
}

// SeatControls returns the control of every seat in the session, with ai as
// the control of the computer seat
func SeatControls(g *GameState, ai SeatControl) []SeatControl {
	controls := make([]SeatControl, len(g.Players))
	for i := range g.Players {
		if g.IsAISeat(i) {
			controls[i] = ai
		} else {
			controls[i] = ControlHuman
		}
	}
	return controls
}
