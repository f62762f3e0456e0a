package cli

import (
	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile submission and retrieval commands",
	}

	cmd.AddCommand(newProfilePlayerCmd())
	cmd.AddCommand(newProfileChildCmd())
	cmd.AddCommand(newProfileMeCmd())

	return cmd
}

func profileFlags(cmd *cobra.Command, fields *profileFields) {
	cmd.Flags().StringVar(&fields.Position, "position", "", "Playing position (required)")
	cmd.Flags().StringVar(&fields.Location, "location", "", "Location (required)")
	cmd.Flags().StringVar(&fields.Nationality, "nationality", "", "Nationality (required)")
	cmd.Flags().StringVar(&fields.PreferredFoot, "foot", "", "Preferred foot: left, right, both (required)")
	cmd.Flags().StringVar(&fields.ClubName, "club", "", "Current club")
	cmd.Flags().StringVar(&fields.Height, "height", "", "Height in cm")
	cmd.Flags().StringVar(&fields.Weight, "weight", "", "Weight in kg")
	cmd.Flags().StringVar(&fields.HighlightLink, "highlights", "", "Highlight video link")
	_ = cmd.MarkFlagRequired("position")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("nationality")
	_ = cmd.MarkFlagRequired("foot")
}

type profileFields struct {
	Position      string
	Location      string
	Nationality   string
	ClubName      string
	Height        string
	Weight        string
	PreferredFoot string
	HighlightLink string
}

func (f profileFields) body() map[string]string {
	return map[string]string{
		"position":       f.Position,
		"location":       f.Location,
		"nationality":    f.Nationality,
		"club_name":      f.ClubName,
		"height":         f.Height,
		"weight":         f.Weight,
		"preferred_foot": f.PreferredFoot,
		"highlight_link": f.HighlightLink,
	}
}

func newProfilePlayerCmd() *cobra.Command {
	var fields profileFields

	cmd := &cobra.Command{
		Use:   "player",
		Short: "Submit the player profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/profiles/player", fields.body(), nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Profile submitted")
			return nil
		},
	}

	profileFlags(cmd, &fields)

	return cmd
}

func newProfileChildCmd() *cobra.Command {
	var fields profileFields
	var name, dob string

	cmd := &cobra.Command{
		Use:   "child",
		Short: "Submit a child profile as a guardian",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := fields.body()
			body["full_name"] = name
			body["date_of_birth"] = dob

			if err := client.Post("/api/v1/profiles/child", body, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Child profile submitted")
			return nil
		},
	}

	profileFlags(cmd, &fields)
	cmd.Flags().StringVar(&name, "name", "", "Child's full name (required)")
	cmd.Flags().StringVar(&dob, "dob", "", "Child's date of birth, DD/MM/YYYY (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("dob")

	return cmd
}

func newProfileMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ProfileResult

			if err := client.Get("/api/v1/profiles/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
