package session

import "golang.org/x/oauth2"

// Tokens is the opaque credential pair issued by the Bot API. Values are never
// parsed; they are only stored, attached as bearer credentials and rotated.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// Present reports whether either token is set.
func (t Tokens) Present() bool {
	return t.AccessToken != "" || t.RefreshToken != ""
}

// Complete reports whether both tokens are set.
func (t Tokens) Complete() bool {
	return t.AccessToken != "" && t.RefreshToken != ""
}

// Bearer returns the access token in the form the outbound client attaches
// to requests. It returns nil when there is no access token.
func (t Tokens) Bearer() *oauth2.Token {
	if t.AccessToken == "" {
		return nil
	}
	return &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: t.RefreshToken,
	}
}
