package cli

import (
	"seva-console/internal/dto/request"

	"github.com/spf13/cobra"
)

func (a *app) loginCommand() *cobra.Command {
	var req request.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start signing in; a one-time code is sent by email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.svcs.Auth.LoginInit(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.render().JSON(res)
			}
			if res.OTPPending() {
				a.render().Line("Next: sevactl verify --email %s --code <code>", req.Username)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Username, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) verifyCommand() *cobra.Command {
	var req request.VerifyOTPRequest
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Finish signing in with the emailed code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.svcs.Auth.VerifyOTP(cmd.Context(), req)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.render().JSON(res)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Code, "code", "", "one-time code")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

func (a *app) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.svcs.Auth.Logout(cmd.Context())
		},
	}
}

func (a *app) meCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.svcs.Auth.Me(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.render().JSON(user)
			}
			return a.render().Record([]string{"EMAIL", "NAME"}, []string{user.Email, user.Name})
		},
	}
}
