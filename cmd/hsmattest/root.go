package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/b4den/hsmattest/attest"
	"github.com/b4den/hsmattest/stream"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "hsmattest <attestation-file>",
		Short: "Decode an HSM attestation blob into JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.Int("signature-len", 256, "length in bytes of the trailing signature record")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("out", "", "write JSON output to this path instead of stdout")
	flags.String("config", "", "optional config file (TOML/YAML/JSON) overriding defaults")

	_ = v.BindPFlag("signature-len", flags.Lookup("signature-len"))
	_ = v.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = v.BindPFlag("out", flags.Lookup("out"))
	v.SetEnvPrefix("HSMATTEST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, path string) error {
	if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return attest.IoError(err)
		}
	}

	level, err := zerolog.ParseLevel(v.GetString("log-level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(cmd.ErrOrStderr()).Level(level).With().Timestamp().Logger()

	if path == "" {
		return attest.InvalidArgument("missing attestation file path")
	}

	f, err := os.Open(path)
	if err != nil {
		return attest.IoError(err)
	}
	defer f.Close()

	m := stream.New(v.GetInt("signature-len"))
	buf := make([]byte, 64*1024)
	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			m.Feed(buf[:n])
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return attest.IoError(readErr)
		}
	}

	for _, diag := range m.Diagnostics {
		logger.Debug().Msg(diag)
	}
	if m.AttrsProcessed() < m.AttrCount() {
		logger.Warn().
			Uint32("attrs_processed", m.AttrsProcessed()).
			Uint32("attr_count", m.AttrCount()).
			Msg("structural mismatch: fewer attributes decoded than declared; input may be truncated or malformed")
	}

	out, err := m.Output()
	if err != nil {
		return attest.IoError(err)
	}

	dest := cmd.OutOrStdout()
	if outPath := v.GetString("out"); outPath != "" {
		w, err := os.Create(outPath)
		if err != nil {
			return attest.IoError(err)
		}
		defer w.Close()
		dest = w
	}
	fmt.Fprintln(dest, string(out))
	fmt.Fprintln(cmd.ErrOrStderr(), "Done")
	return nil
}
