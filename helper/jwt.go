package helper

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Jomy2323/dei-pms-submission/app/model"
	"github.com/Jomy2323/dei-pms-submission/config"
)

// PortalClaims binds a portal access token to a session record and the role
// it was opened with.
type PortalClaims struct {
	SessionID string     `json:"sessionId"`
	PersonID  int64      `json:"personId"`
	IstID     string     `json:"istId"`
	Role      model.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues the portal access token for a logged-in person.
func GenerateToken(sessionID string, p model.Person, role model.Role) (string, error) {
	claims := PortalClaims{
		SessionID: sessionID,
		PersonID:  p.ID,
		IstID:     p.IstID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(8 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetJWTSecret()))
}

func ValidateToken(tokenString string) (*PortalClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &PortalClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.GetJWTSecret()), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*PortalClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
