package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the server",
	Long: `Authenticate against the server. The password is read from standard
input, so it never appears in the process list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p4, err := newP4(cmd)
		if err != nil {
			return err
		}

		if term, _ := os.Stdin.Stat(); term.Mode()&os.ModeCharDevice != 0 {
			fmt.Fprint(os.Stderr, "Password: ")
		}
		password, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && password == "" {
			return fmt.Errorf("read password: %w", err)
		}

		return p4.Login(cmd.Context(), strings.TrimRight(password, "\r\n"))
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
