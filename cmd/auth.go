package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soup/cineshell/session"
)

// signupCmd represents the signup command
var signupCmd = &cobra.Command{
	Use:   "signup <email> <password> <confirm-password>",
	Short: "Create a local account and sign in",
	Long: `Create an account in the local credential store. On success you are
signed in immediately; the session persists across runs until logout.`,
	Args: cobra.ExactArgs(3),
	RunE: runSignup,
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Sign in with a registered account",
	Args:  cobra.ExactArgs(2),
	RunE:  runLogin,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE:  runLogout,
}

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runSignup(cmd *cobra.Command, args []string) error {
	email, password, confirm := args[0], args[1], args[2]

	sess, err := sessions.Register(email, password, confirm)
	if err != nil {
		// Validation failures are user-facing messages, not faults
		if isValidationError(err) {
			fmt.Println("✗ " + err.Error())
			return nil
		}
		return err
	}

	fmt.Printf("✓ Account created. Signed in as %s\n", sess.Email)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, password := args[0], args[1]

	sess, err := sessions.Login(email, password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			fmt.Println("✗ " + err.Error())
			return nil
		}
		return err
	}

	fmt.Printf("✓ Signed in as %s\n", sess.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := sessions.Logout(); err != nil {
		return err
	}

	fmt.Println("✓ Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	sess, ok := sessions.Current()
	if !ok {
		fmt.Println("Not signed in.")
		return nil
	}

	fmt.Println(sess.Email)
	return nil
}

// isValidationError reports whether err is a local signup validation
// failure rather than a storage fault
func isValidationError(err error) bool {
	return errors.Is(err, session.ErrPasswordMismatch) ||
		errors.Is(err, session.ErrPasswordTooShort) ||
		errors.Is(err, session.ErrEmailTaken)
}
