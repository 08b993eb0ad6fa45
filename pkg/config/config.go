package config

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hankgalt/geocell/pkg/constants"
	"github.com/hankgalt/geocell/pkg/errors"
	"github.com/hankgalt/geocell/pkg/geohash"
)

type Configuration struct {
	Server ServerConfig
}

type ServerConfig struct {
	Port             int
	DefaultPrecision int
}

// GetAppConfig reads the app configuration from an optional
// config.yaml in the working directory, falling back to defaults for
// anything not set.
func GetAppConfig(logger *zap.Logger) (*Configuration, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.port", constants.SERVICE_PORT)
	viper.SetDefault("server.defaultprecision", geohash.DefaultPrecision)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Error("error reading config file", zap.Error(err))
			return nil, errors.WrapError(err, errors.ERROR_MISSING_APP_CONFIG)
		}
		logger.Info("no config file found, using defaults")
	}

	var config Configuration
	if err := viper.Unmarshal(&config); err != nil {
		logger.Error("error unmarshalling config", zap.Error(err))
		return nil, errors.WrapError(err, errors.ERROR_MISSING_APP_CONFIG)
	}

	if config.Server.DefaultPrecision < 1 {
		logger.Error("invalid default precision", zap.Int("precision", config.Server.DefaultPrecision))
		return nil, errors.WrapError(errors.ErrInvalidPrecision, errors.ERROR_INVALID_PRECISION, config.Server.DefaultPrecision)
	}

	return &config, nil
}
