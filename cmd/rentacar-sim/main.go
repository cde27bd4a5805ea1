// Command rentacar-sim runs the rent-a-car contract natively against a
// persisted instance storage, for local dry runs before deploying the wasm.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"rent_a_car/contract/rentacar"
	"rent_a_car/internal/config"
	"rent_a_car/internal/logs"
	"rent_a_car/internal/store"
	"rent_a_car/sdk"
)

func main() {
	root := newRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// session is what every subcommand gets once config, logger and store are up.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	state    store.Store
	contract *rentacar.Contract
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "rentacar-sim",
		Short:         "Run the rent-a-car contract against local instance storage",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	flags.String("contract-id", "", "Contract instance id (bolt bucket or JSON object)")
	flags.String("sender", "", "Address recorded as the transaction sender")
	flags.String("as", "", "Send as a named account from the accounts config")
	flags.String("accounts-file", "", "File holding the current account name (default next to the state)")
	flags.String("state-backend", "", "State backend: bolt or json")
	flags.String("state-path", "", "Path of the state database or JSON file")
	flags.String("log-level", "", "Log verbosity (debug, info, warning, error)")
	flags.String("log-path", "", "Directory for rotated logs (default stderr)")

	// withSession opens everything a command needs and closes it afterwards.
	withSession := func(run func(cmd *cobra.Command, s *session) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			logger, logCloser, err := logs.SetupLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer logCloser.Close()

			st, err := store.Open(cfg.State, cfg.ContractID)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := st.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("close state: %w", cerr)
				}
			}()

			logger = logger.With("contract_id", cfg.ContractID, "backend", cfg.State.Backend)
			s := &session{
				cfg:    cfg,
				logger: logger,
				state:  st,
				contract: rentacar.New(st, logs.EventLogger{Logger: logger},
					rentacar.StaticENV{Sender: sdk.Address(cfg.Sender)}),
			}
			if err := run(cmd, s); err != nil {
				return err
			}
			if err := st.Err(); err != nil {
				return fmt.Errorf("state write failed: %w", err)
			}
			return nil
		}
	}

	root.AddCommand(
		newInitCommand("construct", "Run the deploy-time constructor", withSession,
			func(c *rentacar.Contract, admin, token sdk.Address) { c.Construct(admin, token) }),
		newInitCommand("initialize", "Overwrite admin and token", withSession,
			func(c *rentacar.Contract, admin, token sdk.Address) { c.Initialize(admin, token) }),
		newShowCommand(withSession),
		newAccountsCommand(&configPath),
	)
	return root
}

type sessionWrapper func(run func(cmd *cobra.Command, s *session) error) func(*cobra.Command, []string) error

func newInitCommand(use, short string, withSession sessionWrapper, call func(*rentacar.Contract, sdk.Address, sdk.Address)) *cobra.Command {
	var admin, token string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, s *session) error {
			if admin == "" || token == "" {
				return errors.New("--admin and --token are required")
			}
			s.logger.Debug("calling entry point", "entry", use, "sender", s.cfg.Sender, "account", s.cfg.Account)
			call(s.contract, sdk.Address(admin), sdk.Address(token))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ADMIN=%s TOKEN=%s\n", use, admin, token)
			return nil
		}),
	}
	cmd.Flags().StringVar(&admin, "admin", "", "Admin address")
	cmd.Flags().StringVar(&token, "token", "", "Payment token contract address")
	return cmd
}

func newShowCommand(withSession sessionWrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored admin and token",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, s *session) error {
			out := cmd.OutOrStdout()
			admin, ok := s.contract.Admin()
			if !ok {
				fmt.Fprintln(out, "not initialized")
				return nil
			}
			fmt.Fprintf(out, "%s=%s\n", rentacar.AdminKey, admin)
			token, ok := s.contract.Token()
			if !ok {
				s.logger.Warn("instance storage is missing a key", "key", rentacar.TokenKey, "keys", s.state.Keys())
				return fmt.Errorf("%s is not set", rentacar.TokenKey)
			}
			fmt.Fprintf(out, "%s=%s\n", rentacar.TokenKey, token)
			s.logger.Debug("stored keys", "keys", s.state.Keys())
			return nil
		}),
	}
}

// newAccountsCommand manages the named accounts used by --as.
func newAccountsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List named accounts or pick the one to send as",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print configured accounts, marking the current one",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := config.Load(*configPath, cmd.Flags())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				names := cfg.AccountNames()
				if len(names) == 0 {
					fmt.Fprintln(out, "no accounts configured")
					return nil
				}
				for _, name := range names {
					mark := " "
					if name == cfg.Account {
						mark = "*"
					}
					fmt.Fprintf(out, "%s %s %s\n", mark, name, cfg.Accounts[name])
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "use <name>",
			Short: "Remember an account as the sender for later commands",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				// resolve the new name instead of whatever was saved before
				if err := cmd.Flags().Set("as", args[0]); err != nil {
					return err
				}
				cfg, err := config.Load(*configPath, cmd.Flags())
				if err != nil {
					return err
				}
				if err := config.SaveCurrentAccount(cfg.CurrentAccountPath(), cfg.Account); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "sending as %s (%s)\n", cfg.Account, cfg.Sender)
				return nil
			},
		},
	)
	return cmd
}
