// Package file contains utilities related to file operations.
package file

import (
	"audionorm/internal/validation"

	"github.com/spf13/viper"
)

// LoadConfigFile loads in the configuration file.
func LoadConfigFile(v *viper.Viper, file string) error {
	if _, err := validation.ValidateFile(file, false); err != nil {
		return err
	}

	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return nil
}
