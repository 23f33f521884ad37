/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose" yaml:"verbose"`
	Config  string        `mapstructure:"config" yaml:"config,omitempty"`
	Data    DataConfig    `mapstructure:"data" yaml:"data" validate:"required"`
	Photos  PhotoConfig   `mapstructure:"photos" yaml:"photos" validate:"required"`
	Reports ReportsConfig `mapstructure:"reports" yaml:"reports" validate:"required"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// DataConfig locates the activity document
type DataConfig struct {
	// Dir is resolved at startup when empty (see internal/config).
	Dir  string `mapstructure:"dir" yaml:"dir"`
	File string `mapstructure:"file" yaml:"file" validate:"required"`
}

// PhotoConfig holds the photo optimizer limits
type PhotoConfig struct {
	Dir          string `mapstructure:"dir" yaml:"dir" validate:"required"`
	MaxDimension int    `mapstructure:"maxDimension" yaml:"maxDimension" validate:"min=1"`
	MaxBytes     int    `mapstructure:"maxBytes" yaml:"maxBytes" validate:"min=1"`
	StartQuality int    `mapstructure:"startQuality" yaml:"startQuality" validate:"min=1,max=100"`
	QualityStep  int    `mapstructure:"qualityStep" yaml:"qualityStep" validate:"min=1,max=100"`
	MinQuality   int    `mapstructure:"minQuality" yaml:"minQuality" validate:"min=1,max=100,ltefield=StartQuality"`
}

// ReportsConfig holds default output names for generated files
type ReportsConfig struct {
	Dir         string `mapstructure:"dir" yaml:"dir"`
	Spreadsheet string `mapstructure:"spreadsheet" yaml:"spreadsheet" validate:"required"`
	Document    string `mapstructure:"document" yaml:"document" validate:"required"`
	Export      string `mapstructure:"export" yaml:"export" validate:"required"`
}

// LogConfig configures the optional rotated log file
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	File       string `mapstructure:"file" yaml:"file,omitempty"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB" yaml:"maxSizeMB" validate:"min=0"`
	MaxBackups int    `mapstructure:"maxBackups" yaml:"maxBackups" validate:"min=0"`
	MaxAgeDays int    `mapstructure:"maxAgeDays" yaml:"maxAgeDays" validate:"min=0"`
}
