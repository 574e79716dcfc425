package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordwolf/internal/model"
	"github.com/mcoot/wordwolf/internal/services/room"
)

func newRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Room management commands",
	}

	cmd.AddCommand(newRoomCreateCmd())
	cmd.AddCommand(newRoomGetCmd())
	cmd.AddCommand(newRoomDeleteCmd())
	cmd.AddCommand(newRoomJoinCmd())
	cmd.AddCommand(newRoomLeaveCmd())
	cmd.AddCommand(newRoomStartCmd())

	return cmd
}

func newRoomCreateCmd() *cobra.Command {
	params := room.CreateRoomParams{
		PlayerCount: 5,
		WolfCount:   1,
		GameMinutes: 5,
	}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new room",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.RoomController.CreateRoom(cmd.Context(), params)
			if err != nil {
				return err
			}

			return showRoom(cmd, result)
		},
	}

	cmd.Flags().StringVar(&params.Host, "host", "", "Host player ID")
	cmd.Flags().StringVar(&params.HostName, "name", "", "Host display name")
	cmd.Flags().IntVar(&params.PlayerCount, "players", params.PlayerCount, "Room capacity")
	cmd.Flags().IntVar(&params.WolfCount, "wolves", params.WolfCount, "Number of wolves")
	cmd.Flags().IntVar(&params.GameMinutes, "minutes", params.GameMinutes, "Length of the talk phase in minutes")
	cmd.Flags().StringVar(&params.ThemeKind, "theme-kind", "", "Kind of theme to draw words from")
	_ = cmd.MarkFlagRequired("host")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("theme-kind")

	return cmd
}

func newRoomGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <room-id>",
		Short: "Get room details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.RoomController.GetRoom(cmd.Context(), model.NewID[model.Room](args[0]))
			if err != nil {
				return err
			}

			return showRoom(cmd, result)
		},
	}
}

func newRoomDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <room-id>",
		Short: "Delete a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RoomController.DeleteRoom(cmd.Context(), model.NewID[model.Room](args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Room deleted")
			return nil
		},
	}
}

func newRoomJoinCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "join <room-id> <player-id>",
		Short: "Add a player to a room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.RoomController.JoinRoom(cmd.Context(),
				model.NewID[model.Room](args[0]), model.NewID[model.Player](args[1]), name)
			if err != nil {
				return err
			}

			return showRoom(cmd, result)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player display name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoomLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <room-id> <player-id>",
		Short: "Remove a player from a room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.RoomController.LeaveRoom(cmd.Context(),
				model.NewID[model.Room](args[0]), model.NewID[model.Player](args[1]))
			if err != nil {
				return err
			}

			return showRoom(cmd, result)
		},
	}
}

func newRoomStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <room-id>",
		Short: "Deal roles and words and start a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.RoomController.StartGame(cmd.Context(), model.NewID[model.Room](args[0]))
			if err != nil {
				return err
			}

			output(cmd).Print(newGame(result))
			return nil
		},
	}
}

// showRoom prints r together with its members' profiles
func showRoom(cmd *cobra.Command, r *model.Room) error {
	members, err := app.RoomController.Members(cmd.Context(), r)
	if err != nil {
		return err
	}

	output(cmd).Print(newRoom(r, members))
	return nil
}
