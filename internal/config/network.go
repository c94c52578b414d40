package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vietdv277/vpcplan/internal/netplan"
)

// EnvPrefix is prepended to environment overrides, e.g. VPCPLAN_CI_BUILD_SUFFIX
const EnvPrefix = "VPCPLAN"

// Network config keys
const (
	KeyProjectName        = "project_name"
	KeyVPCCIDR            = "vpc_cidr"
	KeyEnableDNSHostnames = "enable_dns_hostnames"
	KeyEnableDNSSupport   = "enable_dns_support"
	KeyPublicSubnets      = "subnet_configuration.public"
	KeyPrivateSubnets     = "subnet_configuration.private"
	KeyCIBuildSuffix      = "ci_build_suffix"
	KeyAvailabilityZones  = "availability_zones"
)

func newNetworkViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyEnableDNSHostnames, true)
	v.SetDefault(KeyEnableDNSSupport, true)
	v.SetDefault(KeyCIBuildSuffix, "")
	return v
}

// networkScalars captures the literal text of string keys. Left to viper, an
// unquoted suffix such as -042 is resolved as a number and renamed.
type networkScalars struct {
	ProjectName   *string `yaml:"project_name"`
	VPCCIDR       *string `yaml:"vpc_cidr"`
	CIBuildSuffix *string `yaml:"ci_build_suffix"`
}

func (n networkScalars) values() map[string]any {
	out := make(map[string]any)
	if n.ProjectName != nil {
		out[KeyProjectName] = *n.ProjectName
	}
	if n.VPCCIDR != nil {
		out[KeyVPCCIDR] = *n.VPCCIDR
	}
	if n.CIBuildSuffix != nil {
		out[KeyCIBuildSuffix] = *n.CIBuildSuffix
	}
	return out
}

// LoadNetworkConfig reads a network config file. Values in overrides win
// over both the file and the environment.
func LoadNetworkConfig(path string, overrides map[string]any) (netplan.NetworkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return netplan.NetworkConfig{}, fmt.Errorf("failed to read network config %s: %w", path, err)
	}

	cfg, err := parseNetwork(data, overrides)
	if err != nil {
		return netplan.NetworkConfig{}, fmt.Errorf("failed to parse network config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseNetworkConfig reads a YAML network config from r
func ParseNetworkConfig(r io.Reader, overrides map[string]any) (netplan.NetworkConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return netplan.NetworkConfig{}, fmt.Errorf("failed to read network config: %w", err)
	}

	cfg, err := parseNetwork(data, overrides)
	if err != nil {
		return netplan.NetworkConfig{}, fmt.Errorf("failed to parse network config: %w", err)
	}
	return cfg, nil
}

func parseNetwork(data []byte, overrides map[string]any) (netplan.NetworkConfig, error) {
	v := newNetworkViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return netplan.NetworkConfig{}, err
	}

	var scalars networkScalars
	if err := yaml.Unmarshal(data, &scalars); err != nil {
		return netplan.NetworkConfig{}, err
	}
	// Replaces the config layer only, so env and overrides still win
	if err := v.MergeConfigMap(scalars.values()); err != nil {
		return netplan.NetworkConfig{}, err
	}

	return networkFromViper(v, overrides), nil
}

func networkFromViper(v *viper.Viper, overrides map[string]any) netplan.NetworkConfig {
	for key, val := range overrides {
		v.Set(key, val)
	}

	return netplan.NetworkConfig{
		ProjectName:        v.GetString(KeyProjectName),
		VPCCIDR:            v.GetString(KeyVPCCIDR),
		EnableDNSHostnames: v.GetBool(KeyEnableDNSHostnames),
		EnableDNSSupport:   v.GetBool(KeyEnableDNSSupport),
		PublicSubnetCIDRs:  stringList(v, KeyPublicSubnets),
		PrivateSubnetCIDRs: stringList(v, KeyPrivateSubnets),
		CIBuildSuffix:      v.GetString(KeyCIBuildSuffix),
		AvailabilityZones:  stringList(v, KeyAvailabilityZones),
	}
}

// stringList reads a list key. Values from the environment arrive as one
// string and are split on commas and whitespace.
func stringList(v *viper.Viper, key string) []string {
	if s, ok := v.Get(key).(string); ok {
		return strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	}
	return v.GetStringSlice(key)
}
