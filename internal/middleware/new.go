package middleware

import (
	"skyscore-srv/pkg/discord"
	"skyscore-srv/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       log.Logger
	discord discord.IDiscord
}

func New(l log.Logger, discordClient discord.IDiscord) Middleware {
	return Middleware{
		l:       l,
		discord: discordClient,
	}
}
