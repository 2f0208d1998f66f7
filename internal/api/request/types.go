package request

// NewGameRequest is the request body for starting a game
type NewGameRequest struct {
	PlayerNames []string `json:"player_names"`
	Player2AI   bool     `json:"player2_ai"`
}

// ActionRequest is the request body for performing an action. Kind is one of
// the action names accepted by model.ParseAction; Arg carries its destination,
// id, item or amount.
type ActionRequest struct {
	Kind string `json:"kind"`
	Arg  string `json:"arg,omitempty"`
}
