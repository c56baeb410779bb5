package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Issuer signs and verifies account tokens. Issuance and verification are
// deliberately separate capabilities: the REST API only issues tokens (login
// responses), while the websocket feed is the one surface that verifies them.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue signs an HS256 token carrying the account id and email. Tokens carry
// no expiry; the client discards them on logout.
func (i *Issuer) Issue(accountID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   accountID,
		"email": email,
		"iat":   time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks the signature and returns the account id from the sub claim.
func (i *Issuer) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	accountID, ok := claims["sub"].(string)
	if !ok || accountID == "" {
		return "", ErrInvalidToken
	}
	return accountID, nil
}
