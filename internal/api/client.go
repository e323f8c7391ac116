// Package api implementa los resource accessors del cliente FurEver
// Pals: wrappers tipados sobre el gateway HTTP, uno por endpoint.
// Cada accessor valida invariantes locales antes de tocar la red y
// deriva la identidad actuante de la sesión, nunca de input repetido.
package api

import (
	"furever-pals/internal/platform/httpclient"
	"furever-pals/internal/platform/logger"
	"furever-pals/internal/session"
)

type Client struct {
	http *httpclient.Client
	sess *session.Session
	log  logger.Logger
	now  func() string // timestamp de posts, inyectable en tests
}

func New(http *httpclient.Client, sess *session.Session, log logger.Logger) *Client {
	return &Client{
		http: http,
		sess: sess,
		log:  log,
	}
}

// Session expone la sesión para chequeos de UI (p.ej. CanAdopt).
func (c *Client) Session() *session.Session {
	return c.sess
}

// actingUser retorna la identidad de la sesión o ErrNoSession.
func (c *Client) actingUser() (string, error) {
	u, ok := c.sess.Username()
	if !ok {
		return "", ErrNoSession
	}
	return u, nil
}
