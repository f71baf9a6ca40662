package ports

import (
	"webcars-api/internal/domain/user"
)

type Auth interface {
	HashPassword(password string) (string, error)
	GenerateToken(u *user.User, requestPassword string) (string, error)
}
