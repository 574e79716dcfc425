package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordwolf/internal/model"
)

func newThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Theme catalogue commands",
	}

	cmd.AddCommand(newThemesLoadCmd())
	cmd.AddCommand(newThemesKindsCmd())
	cmd.AddCommand(newThemesListCmd())

	return cmd
}

func newThemesLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Load themes from a kind,first,second CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			count, err := app.ThemeService.LoadFromFile(cmd.Context(), path)
			if err != nil {
				return err
			}

			output(cmd).Print(LoadResult{Path: path, Count: count})
			return nil
		},
	}
}

func newThemesKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the theme kinds with at least one theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := app.ThemeService.Kinds(cmd.Context())
			if err != nil {
				return err
			}

			result := ThemeKinds{Kinds: make([]string, len(kinds))}
			for i, k := range kinds {
				result.Kinds[i] = k.String()
			}
			output(cmd).Print(result)
			return nil
		},
	}
}

func newThemesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <kind>",
		Short: "List the themes of a kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.NewThemeKind(args[0])
			if err != nil {
				return err
			}

			themes, err := app.ThemeService.FindThemesByKind(cmd.Context(), kind)
			if err != nil {
				return err
			}

			result := make([]Theme, len(themes))
			for i, t := range themes {
				result[i] = newTheme(t)
			}
			output(cmd).Print(result)
			return nil
		},
	}
}
