package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordwolf/internal/model"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameWordCmd())
	cmd.AddCommand(newGameStartVoteCmd())
	cmd.AddCommand(newGameVoteCmd())
	cmd.AddCommand(newGameEndCmd())
	cmd.AddCommand(newGameOutcomeCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Get game state. Roles are only shown once voting has ended",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.GameController.GetGame(cmd.Context(), model.NewID[model.Game](args[0]))
			if err != nil {
				return err
			}

			output(cmd).Print(newGame(result))
			return nil
		},
	}
}

func newGameWordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "word <game-id> <player-id>",
		Short: "Show the secret word dealt to a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.GameController.GetGame(cmd.Context(), model.NewID[model.Game](args[0]))
			if err != nil {
				return err
			}

			playerID := model.NewID[model.Player](args[1])
			word, err := g.WordOf(playerID)
			if err != nil {
				return err
			}

			output(cmd).Print(PlayerWord{PlayerID: playerID.Raw(), Word: word.String()})
			return nil
		},
	}
}

func newGameStartVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start-vote <game-id>",
		Short: "Close the talk phase and open voting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.GameController.StartVoting(cmd.Context(), model.NewID[model.Game](args[0]))
			if err != nil {
				return err
			}

			output(cmd).Print(newGame(result))
			return nil
		},
	}
}

func newGameVoteCmd() *cobra.Command {
	var voter, target string

	cmd := &cobra.Command{
		Use:   "vote <game-id>",
		Short: "Cast a vote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.GameController.CastVote(cmd.Context(),
				model.NewID[model.Game](args[0]),
				model.NewID[model.Player](voter),
				model.NewID[model.Player](target),
			)
			if err != nil {
				return err
			}

			output(cmd).Print(VoteResult{Voter: voter, Target: target, IsEnd: result.IsEnd})
			return nil
		},
	}

	cmd.Flags().StringVar(&voter, "voter", "", "Player casting the vote")
	cmd.Flags().StringVar(&target, "target", "", "Player voted for")
	_ = cmd.MarkFlagRequired("voter")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newGameEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end <game-id>",
		Short: "Close voting and show the outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.NewID[model.Game](args[0])

			outcome, err := app.GameController.EndVoting(cmd.Context(), id)
			if err != nil {
				return err
			}
			g, err := app.GameController.GetGame(cmd.Context(), id)
			if err != nil {
				return err
			}

			output(cmd).Print(newOutcome(g, outcome))
			return nil
		},
	}
}

func newGameOutcomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outcome <game-id>",
		Short: "Show the outcome of an ended game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.NewID[model.Game](args[0])

			outcome, err := app.GameController.Outcome(cmd.Context(), id)
			if err != nil {
				return err
			}
			g, err := app.GameController.GetGame(cmd.Context(), id)
			if err != nil {
				return err
			}

			output(cmd).Print(newOutcome(g, outcome))
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.GameController.DeleteGame(cmd.Context(), model.NewID[model.Game](args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Game deleted")
			return nil
		},
	}
}
