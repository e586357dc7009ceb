package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

func newTournamentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Read and edit the tournament",
	}

	cmd.AddCommand(newTournamentShowCmd())
	cmd.AddCommand(newTournamentReplaceCmd())
	cmd.AddCommand(newTournamentRenameCmd())
	cmd.AddCommand(newTournamentStatusCmd())
	cmd.AddCommand(newTournamentPlayerCmd())
	cmd.AddCommand(newTournamentMatchCmd())
	cmd.AddCommand(newTournamentResetCmd())

	return cmd
}

func newTournamentShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the tournament, matches and standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Tournament
			if err := client.Get("/api/v1/tournament", &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}

func newTournamentReplaceCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "replace",
		Short: "Replace the whole tournament from a JSON file (admin)",
		Long: `Replace the whole tournament from a JSON file.

The file uses the same shape as "tournament show -o json":
{"name": "...", "status": "Upcoming", "players": [{"id": "p1", "name": "Alice"}],
 "matches": [{"id": "m1", "round": 1, "player_a": "p1", "player_b": "p2"}]}`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			var body json.RawMessage
			if err := json.Unmarshal(data, &body); err != nil {
				return fmt.Errorf("%s is not valid JSON: %w", file, err)
			}

			var result Tournament
			if err := client.Put("/api/v1/tournament", body, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to tournament JSON (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newTournamentRenameCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename the tournament (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return patchTournament(cmd, map[string]string{"name": name})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New tournament name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTournamentStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "status <Upcoming|Ongoing|Finished>",
		Short:     "Set the tournament status (admin)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"Upcoming", "Ongoing", "Finished"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return patchTournament(cmd, map[string]string{"status": args[0]})
		},
	}
}

func patchTournament(cmd *cobra.Command, body map[string]string) error {
	var result Tournament
	if err := client.Patch("/api/v1/tournament", body, &result); err != nil {
		return err
	}
	output(cmd).Print(result)
	return nil
}

func newTournamentPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Add or remove players (admin)",
	}

	var name string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Tournament
			if err := client.Post("/api/v1/tournament/players", map[string]string{"name": name}, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "Player name (required)")
	_ = add.MarkFlagRequired("name")

	remove := &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player and their matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Tournament
			if err := client.Delete("/api/v1/tournament/players/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func newTournamentMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Schedule matches and record results (admin)",
	}

	var round int
	var playerA, playerB string
	add := &cobra.Command{
		Use:   "add",
		Short: "Schedule a match",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"round": round, "player_a": playerA, "player_b": playerB}
			var result Tournament
			if err := client.Post("/api/v1/tournament/matches", req, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
	add.Flags().IntVar(&round, "round", 1, "Round number")
	add.Flags().StringVar(&playerA, "a", "", "First player id (required)")
	add.Flags().StringVar(&playerB, "b", "", "Second player id (required)")
	_ = add.MarkFlagRequired("a")
	_ = add.MarkFlagRequired("b")

	var winner string
	result := &cobra.Command{
		Use:   "result <match-id>",
		Short: "Record the winner of a match (omit --winner to clear)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var t Tournament
			path := "/api/v1/tournament/matches/" + url.PathEscape(args[0]) + "/result"
			if err := client.Post(path, map[string]string{"winner": winner}, &t); err != nil {
				return err
			}
			output(cmd).Print(t)
			return nil
		},
	}
	result.Flags().StringVar(&winner, "winner", "", "Winning player id")

	cmd.AddCommand(add, result)
	return cmd
}

func newTournamentResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the seed tournament (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Tournament
			if err := client.Post("/api/v1/tournament/reset", nil, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	}
}
