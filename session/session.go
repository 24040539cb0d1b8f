// Package session keeps the logged-in server, user and device between runs.
// The access token lives in the system keyring; everything else in session.json.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jellytv/jellytv/constant"
	"github.com/jellytv/jellytv/filesystem"
	"github.com/jellytv/jellytv/key"
	"github.com/jellytv/jellytv/log"
	"github.com/jellytv/jellytv/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

// ErrNotLoggedIn is returned by Resolve when neither configuration nor a stored session is available.
var ErrNotLoggedIn = fmt.Errorf("not logged in, run `%s login` or set %s, %s and %s",
	constant.App, key.ServerURL, key.ServerUserID, key.ServerToken)

// Session identifies the server and the user requests are made for.
type Session struct {
	Server   string `json:"server"`
	User     string `json:"user_id"`
	UserName string `json:"user_name"`
	DeviceID string `json:"device_id"`

	token string
}

// UserID returns the id of the session user.
func (s *Session) UserID() string {
	return s.User
}

// Token returns the access token loaded with the session.
func (s *Session) Token() string {
	return s.token
}

var store = sync.OnceValue(func() *gache.Cache[*Session] {
	return gache.New[*Session](&gache.Options{
		Path:       where.Session(),
		FileSystem: &filesystem.GacheFs{},
	})
})

func keyringUser(server string) string {
	return "token:" + server
}

// Save persists s and stores token in the keyring.
func Save(s *Session, token string) error {
	if s.Server == "" || s.User == "" {
		return errors.New("session needs a server and a user")
	}

	if err := keyring.Set(constant.App, keyringUser(s.Server), token); err != nil {
		log.Errorf("saving token to keyring: %v", err)
		return fmt.Errorf("save token: %w", err)
	}

	s.token = token
	return store().Set(s)
}

// Load returns the stored session, if any, with its token.
func Load() (mo.Option[*Session], error) {
	s, expired, err := store().Get()
	if err != nil {
		return mo.None[*Session](), err
	}
	if expired || s == nil || s.Server == "" {
		return mo.None[*Session](), nil
	}

	token, err := keyring.Get(constant.App, keyringUser(s.Server))
	if err != nil {
		log.Warnf("no token in keyring for %s: %v", s.Server, err)
		return mo.None[*Session](), nil
	}

	loaded := *s
	loaded.token = token
	return mo.Some(&loaded), nil
}

// Delete forgets the stored session and its token.
func Delete() error {
	s, _, err := store().Get()
	if err == nil && s != nil && s.Server != "" {
		if err := keyring.Delete(constant.App, keyringUser(s.Server)); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("delete token: %w", err)
		}
	}
	return store().Set(&Session{})
}

// Resolve returns the session to use: server.* configuration when complete, else the stored login.
// server.url alone redirects a stored session to another address of the same server.
func Resolve() (*Session, error) {
	if fromConfig, ok := fromConfig().Get(); ok {
		return fromConfig, nil
	}

	stored, err := Load()
	if err != nil {
		return nil, err
	}

	s, ok := stored.Get()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	if url := viper.GetString(key.ServerURL); url != "" {
		s.Server = url
	}
	return s, nil
}

func fromConfig() mo.Option[*Session] {
	var (
		url   = viper.GetString(key.ServerURL)
		user  = viper.GetString(key.ServerUserID)
		token = viper.GetString(key.ServerToken)
	)

	if url == "" || user == "" || token == "" {
		return mo.None[*Session]()
	}

	return mo.Some(&Session{
		Server:   url,
		User:     user,
		DeviceID: constant.App,
		token:    token,
	})
}
