package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as claims do token JWT emitido pelo serviço de autenticação
// externo. Este serviço apenas valida e consome.
type Claims struct {
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
