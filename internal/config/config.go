package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	DataDir      string
	TasksFile    string
	ConfigFile   string
	DateFormat   string
	ColorOutput  bool
	HeatmapWeeks int
	TagLimit     int
	ServeAddr    string
	LogFile      string
	LogLevel     string
}

var globalConfig *Config

// Init initializes the configuration
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	// Get TASKPULSE_DIR from environment or use default
	dataDir := os.Getenv("TASKPULSE_DIR")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".taskpulse")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return err
	}

	configFile := filepath.Join(dataDir, "config")
	viper.SetConfigFile(configFile)
	viper.SetConfigType("properties")

	viper.SetDefault("date_format", "2006-01-02")
	viper.SetDefault("color_output", true)
	viper.SetDefault("heatmap_weeks", 12)
	viper.SetDefault("tag_limit", 10)
	viper.SetDefault("serve_addr", "127.0.0.1:7423")
	viper.SetDefault("log_level", "info")
	viper.BindEnv("log_level", "TASKPULSE_LOG_LEVEL")
	viper.SetDefault("log_file", filepath.Join(dataDir, "taskpulse.log"))
	viper.BindEnv("log_file", "TASKPULSE_LOG_FILE")

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		// Config file doesn't exist, create it with defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			viper.SafeWriteConfig()
		}
	}

	globalConfig = &Config{
		DataDir:      dataDir,
		TasksFile:    filepath.Join(dataDir, "tasks.json"),
		ConfigFile:   configFile,
		DateFormat:   viper.GetString("date_format"),
		ColorOutput:  viper.GetBool("color_output"),
		HeatmapWeeks: viper.GetInt("heatmap_weeks"),
		TagLimit:     viper.GetInt("tag_limit"),
		ServeAddr:    viper.GetString("serve_addr"),
		LogFile:      viper.GetString("log_file"),
		LogLevel:     viper.GetString("log_level"),
	}

	return nil
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		if err := Init(); err != nil {
			panic(err)
		}
	}
	return globalConfig
}
