/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/josephgoksu/sitelog/internal/ui"
	"github.com/josephgoksu/sitelog/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show or change configuration. Values come from defaults, the config file
(./.sitelog.yaml or $HOME/.sitelog.yaml), SITELOG_* environment variables and
flags, in increasing order of precedence.`,
}

// configShowCmd shows current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd)
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigGet(cmd, args[0])
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in the config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSet(cmd, args[0], args[1])
	},
}

func runConfigShow(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	cfg := GetConfig()
	if configJSON {
		return printJSON(out, cfg)
	}

	source := viper.ConfigFileUsed()
	if source == "" {
		source = "none (defaults and environment)"
	}
	ui.RenderPageHeader(out, "sitelog configuration", "config file: "+source)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func runConfigGet(cmd *cobra.Command, key string) error {
	key = strings.ToLower(key)
	if !knownKey(key) {
		return unknownKeyError(key)
	}
	if configJSON {
		return printJSON(cmd.OutOrStdout(), map[string]any{"key": key, "value": viper.Get(key)})
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), viper.Get(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, key, value string) error {
	key = strings.ToLower(key)
	if !knownKey(key) || key == "config" || key == "verbose" {
		return unknownKeyError(key)
	}

	// Check the merged result before touching the file.
	merged := viper.New()
	for _, k := range viper.AllKeys() {
		merged.Set(k, viper.Get(k))
	}
	merged.Set(key, value)
	var cfg types.AppConfig
	if err := merged.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	path := configFilePath()
	file := viper.New()
	file.SetFs(appFs)
	file.SetConfigFile(path)
	file.SetConfigType("yaml")
	exists, err := fileExists(path)
	if err != nil {
		return fmt.Errorf("stat config file %s: %w", path, err)
	}
	if exists {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", path, err)
		}
	}
	file.Set(key, value)
	if err := file.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config file %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s (%s)\n", ui.Icon("✔", ui.StyleSuccess), key, value, path)
	return nil
}

// configFilePath is the file config set writes to: the one in use, or
// ./.sitelog.yaml when there is none.
func configFilePath() string {
	if p := viper.GetString("config"); p != "" {
		return p
	}
	if p := viper.ConfigFileUsed(); p != "" {
		return p
	}
	return configName + ".yaml"
}

func fileExists(path string) (bool, error) {
	_, err := appFs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func knownKey(key string) bool {
	return slices.Contains(viper.AllKeys(), key)
}

func unknownKeyError(key string) error {
	keys := slices.DeleteFunc(viper.AllKeys(), func(k string) bool { return k == "config" || k == "verbose" })
	slices.Sort(keys)
	return fmt.Errorf("unknown config key: %s\n\nAvailable keys:\n  %s", key, strings.Join(keys, "\n  "))
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configGetCmd, configSetCmd)
	configCmd.PersistentFlags().BoolVar(&configJSON, "json", false, "print as JSON")
}
