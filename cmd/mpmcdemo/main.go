// Command mpmcdemo drives the mpmc queue through a small worker-pool
// harness: it fans out producer and consumer goroutines against one
// queue and reports how many messages made it end to end.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/DexterHaxxor/atomic-mpmc/internal/demo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("mpmcdemo")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "mpmcdemo",
		Short: "Drives the atomic-mpmc queue through a producer/consumer worker pool",
		Long: "mpmcdemo builds one bounded mpmc queue, fans out producer and " +
			"consumer goroutines against it, and prints a summary of how many " +
			"messages were sent and received.",
	}

	root.AddCommand(newRunCmd(v))
	root.AddCommand(newBenchCmd(v))

	return root
}

// addQueueFlags registers the flags shared by run and bench: the
// queue shape, the workload, and the logger/config plumbing.
func addQueueFlags(cmd *cobra.Command, defaults demo.Config) {
	flags := cmd.Flags()
	flags.Uint64("capacity", defaults.Capacity, "queue capacity (slot count)")
	flags.Int("producers", defaults.Producers, "number of producer goroutines")
	flags.Int("consumers", defaults.Consumers, "number of consumer goroutines")
	flags.Int("messages", defaults.Messages, "total messages sent across all producers")
	flags.String("log-level", defaults.LogLevel, "zap log level: debug, info, warn, error")
	flags.String("config", "", "optional TOML config file; flags set explicitly and environment variables take precedence over it")
}

// loadCfg binds cmd's flags into v, layers in an optional config file,
// and unmarshals the result, following the same
// viper.New()/BindPFlags/ReadInConfig precedence for every subcommand.
func loadCfg(v *viper.Viper, cmd *cobra.Command) (demo.Config, error) {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return demo.Config{}, fmt.Errorf("bind flags: %w", err)
	}
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return demo.Config{}, fmt.Errorf("read config %q: %w", cfgFile, err)
		}
	}
	return demo.LoadConfig(v)
}

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one producer/consumer demo against the queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCfg(v, cmd)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			summary, err := demo.Run(context.Background(), cfg, logger)
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}

			fmt.Printf("sent=%d received=%d elapsed=%s\n",
				summary.Sent, summary.Received, summary.Elapsed)
			return nil
		},
	}

	addQueueFlags(cmd, demo.DefaultConfig())
	return cmd
}

func newBenchCmd(v *viper.Viper) *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the demo workload repeatedly and report throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCfg(v, cmd)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			result, err := demo.Bench(context.Background(), cfg, iterations, logger)
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}

			fmt.Printf("iterations=%d messages=%d elapsed=%s msgs/sec=%.0f\n",
				result.Iterations, result.Messages, result.Elapsed, result.MessagesPerSec)
			return nil
		},
	}

	addQueueFlags(cmd, demo.DefaultConfig())
	cmd.Flags().IntVar(&iterations, "iterations", 10, "number of back-to-back runs to time")

	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}
