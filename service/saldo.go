package service

import (
	"errors"

	"livrocaixa/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CalcularSaldos recalcula o saldo acumulado de uma sequência de lançamentos
// já ordenada por (data, id): saldo[i] = soma(entrada[0..i]) - soma(saida[0..i]).
// Função pura, testável sem banco.
func CalcularSaldos(lancs []models.Lancamento) []decimal.Decimal {
	saldos := make([]decimal.Decimal, len(lancs))
	total := decimal.Zero
	for i, l := range lancs {
		total = total.Add(l.Entrada).Sub(l.Saida)
		saldos[i] = total
	}
	return saldos
}

// UltimoSaldo retorna o saldo do último lançamento do mês na ordem (data, id),
// ou zero se o mês está vazio. Usado na inclusão: o novo lançamento parte do
// saldo corrente, mesmo quando tem data retroativa; a próxima edição ou
// exclusão normaliza o mês inteiro.
func UltimoSaldo(tx *gorm.DB, mes string) (decimal.Decimal, error) {
	var ultimo models.Lancamento
	err := tx.Where("mes = ?", mes).Order("data DESC, id DESC").First(&ultimo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return ultimo.Saldo, nil
}

// RecalcularSaldos reescreve o saldo de todos os lançamentos do mês na ordem
// (data, id). Deve rodar dentro de uma transação junto com a alteração que o
// motivou, para que uma queda no meio não deixe saldos pela metade.
func RecalcularSaldos(tx *gorm.DB, mes string) error {
	var lancs []models.Lancamento
	if err := tx.Where("mes = ?", mes).Order("data, id").Find(&lancs).Error; err != nil {
		return err
	}
	saldos := CalcularSaldos(lancs)
	for i, l := range lancs {
		if err := tx.Model(&models.Lancamento{}).Where("id = ?", l.ID).
			Update("saldo", saldos[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
