package db

import (
	"fmt"
	"net/url"
)

// GetDBDSN builds a postgres connection URL. Credentials are URL-escaped
// so passwords with reserved characters survive; sslmode defaults to
// require when unset.
func GetDBDSN(host, port, user, password, name, sslMode string) string {
	if sslMode == "" {
		sslMode = "require"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(user),
		url.QueryEscape(password),
		host,
		port,
		name,
		sslMode,
	)
}
