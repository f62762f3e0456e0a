package cli

import (
	"github.com/spf13/cobra"
)

func newFlowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Screen resolution and wizard navigation commands",
	}

	cmd.AddCommand(newFlowStatusCmd())
	cmd.AddCommand(newFlowOnboardingDoneCmd())
	cmd.AddCommand(newFlowSignupCmd())
	cmd.AddCommand(newFlowAccountTypeCmd())
	cmd.AddCommand(newFlowBackCmd())

	return cmd
}

func newFlowStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the screen this device should render",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result FlowResult

			if err := client.Get("/api/v1/flow", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFlowOnboardingDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "onboarding-done",
		Short: "Dismiss the onboarding carousel",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result FlowResult

			if err := client.Post("/api/v1/flow/onboarding/complete", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFlowSignupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Start the signup wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result FlowResult

			if err := client.Post("/api/v1/flow/signup", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFlowAccountTypeCmd() *cobra.Command {
	var accountType string

	cmd := &cobra.Command{
		Use:   "account-type",
		Short: "Choose an account type (player, parent, coach, scout)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"account_type": accountType}
			var result FlowResult

			if err := client.Post("/api/v1/flow/account-type", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "", "Account type (required)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newFlowBackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Abandon the wizard and return to login",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result FlowResult

			if err := client.Post("/api/v1/flow/return-to-login", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
