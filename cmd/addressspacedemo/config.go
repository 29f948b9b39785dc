package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the demo's own settings — none of it reaches the
// addressspace or opcuaclient packages, which stay config-free.
type Config struct {
	CacheExpireAfterSeconds int    `mapstructure:"CACHE_EXPIRE_AFTER_SECONDS"`
	CacheMaximumSize        int    `mapstructure:"CACHE_MAXIMUM_SIZE"`
	BrowseNodeID            string `mapstructure:"BROWSE_NODE_ID"`
	LogLevel                string `mapstructure:"LOG_LEVEL"`
}

func getConfig(logger *logrus.Logger) Config {
	v := viper.New()
	var config Config

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath("./configs")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Warnln("config file not found, using defaults")
			setDefault(v)
		} else {
			logger.Fatalf("fatal error reading config file: %v", err)
		}
	} else {
		logger.Infoln("config file found and parsed")
	}

	if err := v.Unmarshal(&config); err != nil {
		logger.Fatalf("unable to decode config into struct: %v", err)
	}
	return config
}

func setDefault(v *viper.Viper) {
	v.SetDefault("CACHE_EXPIRE_AFTER_SECONDS", 120)
	v.SetDefault("CACHE_MAXIMUM_SIZE", 1024)
	v.SetDefault("BROWSE_NODE_ID", "i=85")
	v.SetDefault("LOG_LEVEL", "info")
}
