// Package auth provides Carbon Black Cloud API token authentication.
package auth

import "net/http"

// Credentials holds a Carbon Black Cloud API token and the organization key
// that scopes every API route.
//
// Token is the combined secret/ID form issued by the console
// ("<api_secret_key>/<api_id>").
type Credentials struct {
	Token  string
	OrgKey string
}

// Apply adds the authentication header to an HTTP request.
func (c *Credentials) Apply(req *http.Request) {
	if c == nil {
		return
	}
	req.Header.Set("X-Auth-Token", c.Token)
}

// Valid reports whether credentials are configured.
func (c *Credentials) Valid() bool {
	return c != nil && c.Token != "" && c.OrgKey != ""
}
