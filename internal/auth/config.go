package auth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PermissionConfig holds the role permission presets loaded from YAML.
// A role's stored permission list takes precedence over these presets.
type PermissionConfig struct {
	Roles map[string][]string `yaml:"roles"`
}

// LoadPermissionConfig reads role permission presets from a YAML file.
// A missing file is not an error: the service falls back to role-stored
// permissions only.
func LoadPermissionConfig(path string) (*PermissionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &PermissionConfig{Roles: map[string][]string{}}, nil
		}
		return nil, fmt.Errorf("error reading permission config: %w", err)
	}

	var config PermissionConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing permission config: %w", err)
	}
	if config.Roles == nil {
		config.Roles = map[string][]string{}
	}
	return &config, nil
}

// Grants reports whether the preset for a role includes the permission
func (c *PermissionConfig) Grants(roleName, permission string) bool {
	for _, p := range c.Roles[roleName] {
		if p == permission || p == "*" {
			return true
		}
	}
	return false
}
