// Package client defines the registered API client domain type.
package client

// Client is a registered API consumer. Email is unique (case-sensitive) and
// the token is issued together with the record at registration; neither is
// ever updated afterward.
type Client struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"-"`
}
