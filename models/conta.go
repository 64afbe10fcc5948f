package models

import "time"

// Conta nome livre de conta do plano de contas
type Conta struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"uniqueIndex;size:100;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName define a tabela
func (Conta) TableName() string {
	return "contas"
}
