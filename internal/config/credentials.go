// Package config loads Carbon Black Cloud credential profiles from a
// credentials file and the environment.
package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultProfile is the profile used when none is named.
const DefaultProfile = "default"

// Credentials holds one profile from a credentials file.
type Credentials struct {
	URL    string `mapstructure:"url"`
	Token  string `mapstructure:"token"`
	OrgKey string `mapstructure:"org_key"`

	// SSLVerify is parsed for compatibility with existing credentials files;
	// defaults to true. Callers that build their own http.Client decide
	// whether to honor it, the client does not configure TLS itself.
	SSLVerify bool `mapstructure:"ssl_verify"`
}

// Valid reports whether the profile carries everything a client needs.
func (c *Credentials) Valid() bool {
	return c != nil && c.URL != "" && c.Token != "" && c.OrgKey != ""
}

// Load reads the named profile from a YAML credentials file, then applies
// CBC_URL / CBC_TOKEN / CBC_ORG_KEY environment overrides. An empty path
// loads from the environment only. A missing profile is not an error here;
// callers validate with Valid.
func Load(path, profile string) (*Credentials, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	v := viper.New()

	// Allow environment variables to override the credentials file
	v.SetEnvPrefix("CBC")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			logrus.Warnf("Error reading credentials file: %v", err)
		}
	}

	// UnmarshalKey only writes keys present in the profile, so defaults are
	// applied by pre-setting the struct.
	creds := Credentials{SSLVerify: true}
	if err := v.UnmarshalKey(profile, &creds); err != nil {
		return nil, fmt.Errorf("unmarshaling profile %q: %w", profile, err)
	}

	if s := v.GetString("url"); s != "" {
		creds.URL = s
	}
	if s := v.GetString("token"); s != "" {
		creds.Token = s
	}
	if s := v.GetString("org_key"); s != "" {
		creds.OrgKey = s
	}

	return &creds, nil
}
