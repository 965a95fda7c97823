package config

import (
	"cmp"
	"fmt"
	"net/url"
	"strings"

	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/lib/environ"
)

const defaultDatabricksPort = 443

// WithEnvOverrides returns a copy where the hostname, HTTP path and access token are replaced by their
// environment variables when those are set.
func (d Databricks) WithEnvOverrides() Databricks {
	d.ServerHostname = environ.Override(d.ServerHostname, constants.ServerHostnameEnvVar)
	d.HttpPath = environ.Override(d.HttpPath, constants.HTTPPathEnvVar)
	d.AccessToken = environ.Override(d.AccessToken, constants.AccessTokenEnvVar)
	return d
}

func (d Databricks) GetPort() int {
	return cmp.Or(d.Port, defaultDatabricksPort)
}

func (d Databricks) DSN() string {
	query := url.Values{}
	query.Add("catalog", d.Catalog)
	if d.Schema != "" {
		query.Add("schema", d.Schema)
	}

	u := &url.URL{
		Path:     d.HttpPath,
		User:     url.UserPassword("token", d.AccessToken),
		Host:     fmt.Sprintf("%s:%d", d.ServerHostname, d.GetPort()),
		RawQuery: query.Encode(),
	}

	return strings.TrimPrefix(u.String(), "//")
}

// String omits the access token so the settings can be logged.
func (d Databricks) String() string {
	return fmt.Sprintf("serverHostname=%s, httpPath=%s, catalog=%s, schema=%s, stagingVolumePath=%s, token_set=%v",
		d.ServerHostname, d.HttpPath, d.Catalog, d.Schema, d.StagingVolumePath, d.AccessToken != "")
}

func (d Databricks) StagingEnabled() bool {
	return d.StagingVolumePath != ""
}
