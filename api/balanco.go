package api

import (
	"livrocaixa/database"
	"livrocaixa/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BalancoHandler balanço anual consolidado
type BalancoHandler struct{}

// NewBalancoHandler cria o handler de balanço
func NewBalancoHandler() *BalancoHandler {
	return &BalancoHandler{}
}

// BalancoMes resumo de um mês do livro
type BalancoMes struct {
	Mes           string          `json:"mes"`
	Lancamentos   int64           `json:"lancamentos"`
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSaidas   decimal.Decimal `json:"total_saidas"`
	SaldoFinal    decimal.Decimal `json:"saldo_final"`
}

// BalancoResponse resumo dos doze meses mais o consolidado
type BalancoResponse struct {
	Meses         []BalancoMes    `json:"meses"`
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSaidas   decimal.Decimal `json:"total_saidas"`
	SaldoGeral    decimal.Decimal `json:"saldo_geral"`
}

// Balanco monta o resumo de entradas, saídas e saldo por mês
// @Summary Balanço anual
// @Tags balanco
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=BalancoResponse}
// @Router /api/v1/balanco [get]
func (h *BalancoHandler) Balanco(c *gin.Context) {
	resp := BalancoResponse{
		TotalEntradas: decimal.Zero,
		TotalSaidas:   decimal.Zero,
		SaldoGeral:    decimal.Zero,
	}

	for _, mes := range models.Meses() {
		var lancs []models.Lancamento
		if err := database.DB.Where("mes = ?", mes).Order("data, id").Find(&lancs).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "erro ao consolidar o balanço"))
			return
		}

		bm := BalancoMes{
			Mes:           mes,
			Lancamentos:   int64(len(lancs)),
			TotalEntradas: decimal.Zero,
			TotalSaidas:   decimal.Zero,
			SaldoFinal:    decimal.Zero,
		}
		for _, l := range lancs {
			bm.TotalEntradas = bm.TotalEntradas.Add(l.Entrada)
			bm.TotalSaidas = bm.TotalSaidas.Add(l.Saida)
		}
		if len(lancs) > 0 {
			bm.SaldoFinal = lancs[len(lancs)-1].Saldo
		}

		resp.Meses = append(resp.Meses, bm)
		resp.TotalEntradas = resp.TotalEntradas.Add(bm.TotalEntradas)
		resp.TotalSaidas = resp.TotalSaidas.Add(bm.TotalSaidas)
	}
	resp.SaldoGeral = resp.TotalEntradas.Sub(resp.TotalSaidas)

	Success(c, resp)
}
