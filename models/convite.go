package models

import (
	"time"

	"github.com/google/uuid"
)

// Situações possíveis de um convidado. Pendente é o estado inicial;
// confirmado e cancelado podem ser reeditados enquanto o RSVP estiver aberto.
const (
	ConvidadoPendente   = "pendente"
	ConvidadoConfirmado = "confirmado"
	ConvidadoCancelado  = "cancelado"
)

// StatusConvidadoValido informa se a situação é uma das aceitas.
func StatusConvidadoValido(s string) bool {
	return s == ConvidadoPendente || s == ConvidadoConfirmado || s == ConvidadoCancelado
}

// EventoConvite evento do sistema de convites (sessões, cerimônias)
type EventoConvite struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Titulo     string     `json:"titulo" gorm:"size:200;not null"`
	DataEvento time.Time  `json:"data_evento" gorm:"type:date;not null"`
	HoraEvento string     `json:"hora_evento" gorm:"size:8"`
	Local      string     `json:"local" gorm:"size:255"`
	PrazoRSVP  *time.Time `json:"prazo_rsvp,omitempty" gorm:"type:date"`
	CreatedAt  time.Time  `json:"created_at"`

	Convidados []Convidado `json:"convidados,omitempty" gorm:"foreignKey:EventoID"`
}

// TableName define a tabela
func (EventoConvite) TableName() string {
	return "eventos_convites"
}

// Convidado destinatário de um convite, com código único de confirmação
type Convidado struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	EventoID      uint      `json:"evento_id" gorm:"index;not null"`
	Nome          string    `json:"nome" gorm:"size:100;not null"`
	Email         string    `json:"email" gorm:"size:100"`
	Telefone      string    `json:"telefone" gorm:"size:30"`
	Acompanhantes int       `json:"acompanhantes" gorm:"default:0"`
	Status        string    `json:"status" gorm:"size:20;default:pendente;index"`
	Codigo        string    `json:"codigo" gorm:"size:36;uniqueIndex;not null"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName define a tabela
func (Convidado) TableName() string {
	return "convidados"
}

// NovoCodigoConfirmacao gera o código único usado no link público de RSVP.
func NovoCodigoConfirmacao() string {
	return uuid.NewString()
}
