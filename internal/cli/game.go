package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/fastlane/internal/api/request"
	"github.com/mcoot/fastlane/internal/api/response"
)

func newNewCmd() *cobra.Command {
	var vsComputer bool

	cmd := &cobra.Command{
		Use:   "new [name...]",
		Short: "Start a new game",
		Long: `Start a new game, replacing any game in progress.

Pass one name for a solo game or two for a two-seat game. With --ai the
second seat is played by the computer and only one name may be given.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.NewGameRequest{PlayerNames: args, Player2AI: vsComputer}
			if req.PlayerNames == nil {
				req.PlayerNames = []string{}
			}

			var result response.Game
			if err := client.Post("/api/v1/game", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&vsComputer, "ai", false, "Second seat is played by the computer")

	return cmd
}

func newRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Restart the current game with the same seats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Post("/api/v1/game/restart", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	var logLimit int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			path := fmt.Sprintf("/api/v1/game?log=%d", logLimit)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&logLimit, "log", 10, "Number of log entries to show (0 for all)")

	return cmd
}

func newActCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "act <kind> [arg]",
		Short: "Perform an action for the current player",
		Long: `Perform an action for the current player.

Kinds:
  travel <location>   Move to another location
  work                Work a shift at your job's location
  apply <job>         Apply for a job at the employment office
  enroll <course>     Enroll in a course at the college
  study               Study for your enrolled course
  relax               Rest at home
  buy <item>          Buy an item where it is sold
  deposit <amount>    Move cash into savings at the bank
  withdraw <amount>   Move savings into cash at the bank
  loan <amount>       Borrow from the bank
  repay <amount>      Repay the bank
  buy-car             Buy a car at the dealership
  pass                Give up the rest of the turn`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.ActionRequest{Kind: args[0]}
			if len(args) == 2 {
				req.Arg = args[1]
			}

			var result response.Game
			if err := client.Post("/api/v1/game/actions", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newEndTurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end-turn",
		Short: "End the current player's turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Post("/api/v1/game/end-turn", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newAckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ack",
		Short: "Acknowledge the turn summary and pass play on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Post("/api/v1/game/summary/ack", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
