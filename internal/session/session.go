package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/florandefossez/capsules/internal/models"
)

const cookieName = "capsules_session"

// Session is the authenticated state carried by the login cookie, passed
// to handlers as an explicit value rather than ambient state.
type Session struct {
	UserID     int
	Permission int
}

// CanWrite reports whether the session's account may mutate the catalog.
func (s *Session) CanWrite() bool {
	return s.Permission >= models.PermissionReadWrite
}

// Manager reads and writes login sessions backed by a signed cookie store.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return &Manager{store: store}
}

// Current returns the session on the request, or false when the request is
// anonymous or carries an invalid cookie.
func (m *Manager) Current(r *http.Request) (*Session, bool) {
	sess, err := m.store.Get(r, cookieName)
	if err != nil {
		return nil, false
	}
	userID, ok := sess.Values["user_id"].(int)
	if !ok {
		return nil, false
	}
	permission, _ := sess.Values["permission"].(int)
	return &Session{UserID: userID, Permission: permission}, true
}

// Establish writes a fresh login session for the user.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, user *models.User) error {
	sess, _ := m.store.Get(r, cookieName)
	sess.Values["user_id"] = user.ID
	sess.Values["permission"] = user.Permission
	return sess.Save(r, w)
}

// Destroy invalidates the session cookie unconditionally.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, cookieName)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
