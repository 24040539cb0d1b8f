// Package config owns the viper configuration engine: defaults, environment bindings and the toml file.
package config

import (
	"errors"
	"strings"

	"github.com/jellytv/jellytv/constant"
	"github.com/jellytv/jellytv/filesystem"
	"github.com/jellytv/jellytv/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps dotted configuration keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and env bindings, then reads jellytv.toml if present.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}
