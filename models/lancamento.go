package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lancamento um movimento de caixa (entrada ou saída) com saldo acumulado
type Lancamento struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Mes         string          `json:"mes" gorm:"size:20;not null;index"`
	Data        time.Time       `json:"data" gorm:"type:date;not null"`
	Historico   string          `json:"historico" gorm:"type:text;not null"`
	Complemento string          `json:"complemento" gorm:"type:text"`
	Entrada     decimal.Decimal `json:"entrada" gorm:"type:decimal(15,2);default:0.00"`
	Saida       decimal.Decimal `json:"saida" gorm:"type:decimal(15,2);default:0.00"`
	Saldo       decimal.Decimal `json:"saldo" gorm:"type:decimal(15,2);default:0.00"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName define a tabela
func (Lancamento) TableName() string {
	return "lancamentos"
}

// Meses rótulos de mês usados no livro, em ordem.
func Meses() []string {
	return []string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
}

// MesValido informa se o rótulo é um dos doze meses do livro.
func MesValido(mes string) bool {
	for _, m := range Meses() {
		if m == mes {
			return true
		}
	}
	return false
}
