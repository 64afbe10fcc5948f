package models

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"
)

// Permissões fixas do sistema.
const (
	// PermissaoAdmin acesso completo, inclusive gestão de usuários
	PermissaoAdmin = "admin"
	// PermissaoEditor pode criar, editar e excluir lançamentos, contas e eventos
	PermissaoEditor = "editor"
	// PermissaoVisualizador apenas leitura
	PermissaoVisualizador = "visualizador"
)

// Permissoes lista as permissões válidas na ordem de exibição.
func Permissoes() []string {
	return []string{PermissaoAdmin, PermissaoEditor, PermissaoVisualizador}
}

// PermissaoValida informa se o valor é uma das três permissões fixas.
func PermissaoValida(p string) bool {
	return p == PermissaoAdmin || p == PermissaoEditor || p == PermissaoVisualizador
}

// User usuário do sistema
type User struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Username       string     `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash   string     `json:"-" gorm:"size:255;not null"`
	Permissao      string     `json:"permissao" gorm:"size:20;default:visualizador;index"` // admin/editor/visualizador
	Nome           string     `json:"nome" gorm:"size:100"`
	Telefone       string     `json:"telefone" gorm:"size:30"`
	Endereco       string     `json:"endereco" gorm:"size:255"`
	DataNascimento *time.Time `json:"data_nascimento,omitempty" gorm:"type:date"`
	DataIniciacao  *time.Time `json:"data_iniciacao,omitempty" gorm:"type:date"`
	DataElevacao   *time.Time `json:"data_elevacao,omitempty" gorm:"type:date"`
	DataExaltacao  *time.Time `json:"data_exaltacao,omitempty" gorm:"type:date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName define a tabela
func (User) TableName() string {
	return "usuarios"
}

// HashPassword gera o digest SHA-256 em hexadecimal usado em password_hash.
// O formato é herdado da base existente (sem salt); trocá-lo invalidaria
// todas as senhas já cadastradas.
func HashPassword(senha string) string {
	sum := sha256.Sum256([]byte(senha))
	return hex.EncodeToString(sum[:])
}

// CheckPassword compara a senha informada com o hash armazenado.
func CheckPassword(senha, hash string) bool {
	digest := HashPassword(senha)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(hash)) == 1
}
