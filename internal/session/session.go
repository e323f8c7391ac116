// Package session guarda la identidad autenticada de la corrida actual.
// Es el único estado mutable compartido entre pantallas: se escribe en
// login/logout y se lee en todo lo demás. Los accessors derivan el
// username de acá, nunca de input repetido por el usuario.
package session

import (
	"strings"
	"sync"
)

type Session struct {
	mu       sync.RWMutex
	username string
}

func New() *Session {
	return &Session{}
}

// Set registra la identidad tras un login exitoso.
// Username vacío se ignora: una sesión no puede quedar "a medias".
func (s *Session) Set(username string) {
	username = strings.TrimSpace(username)
	if username == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
}

// Username retorna la identidad activa y si hay sesión.
func (s *Session) Username() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username, s.username != ""
}

func (s *Session) Authenticated() bool {
	_, ok := s.Username()
	return ok
}

// Clear borra la sesión (logout). Cualquier accessor posterior
// retorna error hasta el próximo login.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = ""
}
