package configloader

import (
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Structure to bind application parameters
type Config struct {
	LogLevel string `mapstructure:"LOG_LEVEL"` // logrus library log level to be assigned
	AppPath  string `mapstructure:"APP_PATH"`  // executable of the external application; relative paths are resolved against the launcher directory
}

// Initialize default parameters values. The defaults keep the launcher fully
// functional without any configuration file or environment variable.
func initDefaultConfiguration() {
	viper.SetDefault("LOG_LEVEL", "error")
	viper.SetDefault("APP_PATH", defaultApplicationPath())
}

// Name of the external application executable started by the launcher
func defaultApplicationPath() string {
	if runtime.GOOS == "windows" {
		return "todo-app.exe"
	}
	return "todo-app"
}

// Load configuration from env file
func LoadConfiguration(applicationName string, configurationFilePath string) (config Config, err error) {
	initDefaultConfiguration()

	if configurationFilePath == "" {
		// Read the volume root path
		root := filepath.VolumeName(".")
		if root == "" {
			root = string(filepath.Separator)
		}

		// Set configuration named config from etc/*appName*, $HOME/.*appName* or current folders
		viper.AddConfigPath(filepath.Join(root, "etc", applicationName))
		viper.AddConfigPath(filepath.Join("$HOME", "."+applicationName))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	} else {
		// Set the configuration file path
		viper.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables, if set
	viper.AutomaticEnv()

	// A missing configuration file is the normal case, not worth a warning
	if configError := viper.ReadInConfig(); configError != nil {
		logrus.Debug(configError.Error())
	}
	err = viper.Unmarshal(&config)

	return
}
