package model

// Session holds the identity of the authenticated caller, as asserted by the
// identity platform's bearer token
type Session struct {
	UserID string
	Email  string
	Exp    float64
}
