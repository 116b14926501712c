package domain

import "context"

// SessionStore manages the shared authentication state. It is the only
// state shared across screens and is mutated through Login/Logout only.
type SessionStore interface {
	Login(user *User, token string) error
	LoginAdmin(token string) error
	Logout() error
	Current() Session
	Token() string
	IsLoggedIn() bool
	IsAdmin() bool
}

// Gateway is the single-attempt HTTP client for the backend API
type Gateway interface {
	Signup(ctx context.Context, username, email, password, confirmPassword string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	AdminLogin(ctx context.Context, email, password string) (token string, isAdmin bool, err error)
	Logout(ctx context.Context) error
	Ask(ctx context.Context, message string) (string, error)
	UploadMedicalReport(ctx context.Context, att *Attachment) (summary string, err error)
	UploadImage(ctx context.Context, att *Attachment) (message, analysis string, err error)
	UploadAdminPDF(ctx context.Context, att *Attachment, collection string) (string, error)
	GetProfile(ctx context.Context) (*Profile, error)
	SaveProfile(ctx context.Context, p *Profile) error
}

// AudioSource abstracts the recording device. Chunks delivers captured
// audio data until Release is called; Release must stop the underlying
// device on every exit path.
type AudioSource interface {
	Chunks() <-chan []byte
	Release() error
}

// PositionWatcher abstracts continuous geolocation. Watch invokes onSample
// for each new position and onError once on failure; the returned cancel
// function stops the watch, must be safe to call more than once, and must
// not invoke the callbacks itself.
type PositionWatcher interface {
	Watch(onSample func(Position), onError func(error)) (cancel func(), err error)
}
