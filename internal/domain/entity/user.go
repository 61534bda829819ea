package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin     = "admin"
	RoleManager   = "gestor"
	RoleStorekeep = "almoxarife"
	RoleForeman   = "encarregado"
	RoleOperator  = "operador"
)

// User representa um usuário do sistema (perfil + credenciais).
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro após persistir
	Name         string
	Registration string // matrícula
	Role         string // admin, gestor, almoxarife, encarregado, operador
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
