package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/sitelog/internal/config"
	"github.com/josephgoksu/sitelog/internal/photo"
	"github.com/josephgoksu/sitelog/internal/report"
	"github.com/josephgoksu/sitelog/internal/schedule"
	"github.com/josephgoksu/sitelog/store"
	"github.com/josephgoksu/sitelog/types"
	"github.com/spf13/viper"
)

const (
	configName = ".sitelog"
	envPrefix  = "SITELOG"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// setDefaults registers the value of every configuration key.
func setDefaults() {
	pc := photo.DefaultConfig()

	viper.SetDefault("data.dir", "")
	viper.SetDefault("data.file", store.DefaultDataFile)

	viper.SetDefault("photos.dir", pc.Dir)
	viper.SetDefault("photos.maxDimension", pc.MaxDimension)
	viper.SetDefault("photos.maxBytes", pc.MaxBytes)
	viper.SetDefault("photos.startQuality", pc.StartQuality)
	viper.SetDefault("photos.qualityStep", pc.QualityStep)
	viper.SetDefault("photos.minQuality", pc.MinQuality)

	viper.SetDefault("reports.dir", "")
	viper.SetDefault("reports.spreadsheet", report.DefaultSpreadsheetFile)
	viper.SetDefault("reports.document", report.DefaultDocumentFile)
	viper.SetDefault("reports.export", schedule.DefaultExportFile)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "")
	viper.SetDefault("log.maxSizeMB", 10)
	viper.SetDefault("log.maxBackups", 3)
	viper.SetDefault("log.maxAgeDays", 28)
}

// InitConfig layers defaults, the config file, SITELOG_* environment
// variables and flags into GlobalAppConfig. Relative data paths are resolved
// against the data directory.
func InitConfig() error {
	// A missing .env is fine.
	_ = godotenv.Load()

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("data.dir", rootCmd.PersistentFlags().Lookup("data-dir"))

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if cfgFileFlag := viper.GetString("config"); cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file %s: %w", viper.ConfigFileUsed(), err)
		}
	}

	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.Data.Dir = config.GetDataDir()
	cfg.Photos.Dir = config.Under(cfg.Data.Dir, cfg.Photos.Dir)
	cfg.Log.File = config.Under(cfg.Data.Dir, cfg.Log.File)
	GlobalAppConfig = cfg
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}

// dataFilePath returns the location of the activity document.
func dataFilePath() string {
	cfg := GetConfig()
	return config.Under(cfg.Data.Dir, cfg.Data.File)
}

// reportPath returns the output path for a report, preferring an explicit argument.
func reportPath(args []string, name string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return config.Under(GetConfig().Reports.Dir, name)
}

func photoConfig() photo.Config {
	p := GetConfig().Photos
	return photo.Config{
		Dir:          p.Dir,
		MaxDimension: p.MaxDimension,
		MaxBytes:     p.MaxBytes,
		StartQuality: p.StartQuality,
		QualityStep:  p.QualityStep,
		MinQuality:   p.MinQuality,
	}
}
