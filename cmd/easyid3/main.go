package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type rootCmdConfig struct {
	cfgFile string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cliParser().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("")
		stop()
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "easyid3",
		Short: "easyid3 is a tool to perform decision-tree classification",
		Long:  `A tool to grow ID3 decision trees from your categorical data, test them, and use them to make predictions`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := config.initConfig()
			if err != nil {
				return err
			}
			return setLogLevel(viper.GetString("log.level"), viper.GetString("log.format"))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&(config.cfgFile), "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().String("log-format", logFormatTextValue, "logging format [text|json]")
	rootCmd.PersistentFlags().String("log-level", zerolog.LevelInfoValue,
		fmt.Sprintf("logging level %s|%s|%s", zerolog.LevelDebugValue, zerolog.LevelInfoValue, zerolog.LevelWarnValue),
	)
	if err := viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	rootCmd.AddCommand(versionCmd(), growCmd(), predictCmd(), testCmd(), setCmd())
	return rootCmd
}

func (rcc *rootCmdConfig) initConfig() error {
	if rcc.cfgFile != "" {
		viper.SetConfigFile(rcc.cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %v", rcc.cfgFile, err)
		}
	}
	viper.SetEnvPrefix("EASYID3")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	return nil
}

// bindFlags binds each of the named flags to the viper key of the same name
func bindFlags(fs *pflag.FlagSet, names ...string) error {
	for _, n := range names {
		if err := viper.BindPFlag(n, fs.Lookup(n)); err != nil {
			return fmt.Errorf("binding flag %s: %v", n, err)
		}
	}
	return nil
}

// splitList splits comma-separated elements, as set through the environment
func splitList(values []string) []string {
	var result []string
	for _, v := range values {
		for _, e := range strings.Split(v, ",") {
			if e = strings.TrimSpace(e); e != "" {
				result = append(result, e)
			}
		}
	}
	return result
}
