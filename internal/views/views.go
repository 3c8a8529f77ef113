// Package views holds the page state of the catalog UI: search, signup and
// the movie page. Each view talks to the API through a narrow interface,
// reports outcomes through a Toaster and renders itself as text.
package views

import (
	"errors"
	"sync"

	"movie-catalog/internal/dto/response"
)

const (
	TitleSuccess = "Success"
	TitleError   = "An error occured"

	MsgFetchFailed   = "There was a problem fetching results."
	MsgRequestFailed = "There was a problem processing your request."
)

// ErrStale is returned when a newer request finished first and this
// result was dropped.
var ErrStale = errors.New("views: result superseded by a newer request")

type ToastVariant string

const (
	VariantDefault     ToastVariant = "default"
	VariantDestructive ToastVariant = "destructive"
)

type Toast struct {
	Variant     ToastVariant
	Title       string
	Description string
}

type Toaster interface {
	Toast(t Toast)
}

// ToasterFunc adapts a plain function to Toaster.
type ToasterFunc func(Toast)

func (f ToasterFunc) Toast(t Toast) { f(t) }

type Navigator interface {
	Navigate(path string)
}

func successToast(message string) Toast {
	return Toast{Variant: VariantDefault, Title: TitleSuccess, Description: message}
}

func errorToast(message string) Toast {
	return Toast{Variant: VariantDestructive, Title: TitleError, Description: message}
}

// tracker numbers requests. current reports whether no newer request was
// issued; apply lets a result commit unless a newer one already did, so a
// failed request never hides an older success. Callers hold their own mutex
// around it.
type tracker struct {
	latest  uint64
	applied uint64
}

func (t *tracker) next() uint64 {
	t.latest++
	return t.latest
}

func (t *tracker) current(gen uint64) bool {
	return gen == t.latest
}

func (t *tracker) apply(gen uint64) bool {
	if gen <= t.applied {
		return false
	}
	t.applied = gen
	return true
}

// AuthState is the signed-in user and token, shared explicitly between
// views and the API client.
type AuthState struct {
	mu    sync.RWMutex
	user  *response.UserResponse
	token string
}

func (a *AuthState) Save(auth response.AuthResponse) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user := auth.User
	a.user = &user
	a.token = auth.Token
}

func (a *AuthState) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.user = nil
	a.token = ""
}

// Token satisfies client.TokenSource.
func (a *AuthState) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *AuthState) User() (response.UserResponse, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.user == nil {
		return response.UserResponse{}, false
	}
	return *a.user, true
}

func (a *AuthState) LoggedIn() bool {
	_, ok := a.User()
	return ok
}

// GuestOnly guards the login and signup pages: a signed-in user is sent
// home.
func GuestOnly(a *AuthState) (redirect string, ok bool) {
	if a.LoggedIn() {
		return "/", false
	}
	return "", true
}
