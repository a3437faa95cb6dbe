// Package domain contains the core domain models of the Maven 3 build step.
package domain

import "path/filepath"

// Installation identifies a Maven distribution registered with the host.
type Installation struct {
	Name string `json:"name" mapstructure:"name" yaml:"name"`
	Home string `json:"home" mapstructure:"home" yaml:"home"`
}

// BootDir returns the directory holding the classworlds bootstrap jar.
func (i Installation) BootDir() string {
	return filepath.Join(i.Home, "boot")
}

// DefaultClassworldsConf returns the classworlds configuration shipped with the distribution.
func (i Installation) DefaultClassworldsConf() string {
	return filepath.Join(i.Home, "bin", "m2.conf")
}
