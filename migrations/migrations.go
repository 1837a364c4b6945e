// Package migrations embeds the loanwatch schema migrations
// (newsletters, players, player links) for goose to apply at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
