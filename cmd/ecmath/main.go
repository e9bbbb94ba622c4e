// Command ecmath prints and checks points of the secp256k1 group.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	flagVerbose = "verbose"
	flagToy     = "toy"
)

type app struct {
	v      *viper.Viper
	logger *zap.Logger
	domain domain
}

func main() {
	a := &app{v: viper.New()}
	if err := a.rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "ecmath",
		Short:             "Elliptic curve point arithmetic on secp256k1",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.Bool(flagVerbose, false, "enable debug logging")
	flags.Bool(flagToy, false, "use y^2 = x^3 + 7 over F_223 instead of secp256k1")
	_ = a.v.BindPFlags(flags)

	a.v.SetEnvPrefix("ECMATH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.generatorCmd(),
		a.validateCmd(),
		a.mulCmd(),
		a.checkCmd(),
	)
	return root
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	if a.logger == nil {
		var err error
		if a.v.GetBool(flagVerbose) {
			a.logger, err = zap.NewDevelopment()
		} else {
			a.logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
	}

	if a.v.GetBool(flagToy) {
		d, err := newToyDomain()
		if err != nil {
			return err
		}
		a.domain = d
	} else {
		a.domain = newS256Domain()
	}

	a.logger = a.logger.With(zap.String("curve", a.domain.Name()))
	return nil
}

func (a *app) generatorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generator",
		Short: "Print the generator point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.domain.Generator())
			return nil
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-domain",
		Short: "Check that n*G is the point at infinity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			err := a.domain.Validate()
			a.logger.Debug("validated domain", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func (a *app) mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <k>",
		Short: "Print k*G; k is decimal or 0x-prefixed hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseInt(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			p, err := a.domain.Mul(k)
			if err != nil {
				a.logger.Warn("scalar multiplication failed", zap.String("k", k.String()), zap.Error(err))
				return err
			}

			a.logger.Debug("scalar multiplication", zap.Int("bits", k.BitLen()), zap.Duration("elapsed", time.Since(start)))
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <x> <y>",
		Short: "Validate affine coordinates against the curve",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseInt(args[0])
			if err != nil {
				return err
			}

			y, err := parseInt(args[1])
			if err != nil {
				return err
			}

			p, err := a.domain.Check(x, y)
			if err != nil {
				fields := []zap.Field{zap.Error(err)}
				if kind, ok := errorKind(err); ok {
					fields = append(fields, zap.String("kind", string(kind)))
				}
				a.logger.Info("rejected point", fields...)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func parseInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}

	return v, nil
}
