package api

import (
	"time"

	"livrocaixa/database"
	"livrocaixa/models"
	"livrocaixa/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LancamentoHandler lançamentos do livro caixa
type LancamentoHandler struct{}

// NewLancamentoHandler cria o handler de lançamentos
func NewLancamentoHandler() *LancamentoHandler {
	return &LancamentoHandler{}
}

// LancamentoRequest dados de um lançamento
type LancamentoRequest struct {
	Mes         string          `json:"mes"`
	Data        string          `json:"data" binding:"required"` // 2006-01-02
	Historico   string          `json:"historico" binding:"required"`
	Complemento string          `json:"complemento"`
	Entrada     decimal.Decimal `json:"entrada"`
	Saida       decimal.Decimal `json:"saida"`
}

func (r *LancamentoRequest) validar() (time.Time, string) {
	if !models.MesValido(r.Mes) {
		return time.Time{}, "mês inválido: use Janeiro a Dezembro"
	}
	data, err := time.ParseInLocation("2006-01-02", r.Data, time.Local)
	if err != nil {
		return time.Time{}, "data inválida, use o formato 2006-01-02"
	}
	if r.Entrada.IsNegative() || r.Saida.IsNegative() {
		return time.Time{}, "entrada e saída não podem ser negativas"
	}
	return data, ""
}

// ListResponse lançamentos de um mês com os totais
type ListResponse struct {
	Mes           string              `json:"mes"`
	Lancamentos   []models.Lancamento `json:"lancamentos"`
	TotalEntradas decimal.Decimal     `json:"total_entradas"`
	TotalSaidas   decimal.Decimal     `json:"total_saidas"`
	SaldoAtual    decimal.Decimal     `json:"saldo_atual"`
}

// List lista os lançamentos de um mês na ordem do livro
// @Summary Lançamentos do mês
// @Tags lancamentos
// @Produce json
// @Security BearerAuth
// @Param mes query string true "Mês (Janeiro..Dezembro)"
// @Success 200 {object} Response{data=ListResponse}
// @Failure 400 {object} Response "Mês inválido"
// @Router /api/v1/lancamentos [get]
func (h *LancamentoHandler) List(c *gin.Context) {
	mes := c.Query("mes")
	if !models.MesValido(mes) {
		BadRequest(c, "mês inválido: use Janeiro a Dezembro")
		return
	}

	var lancs []models.Lancamento
	if err := database.DB.Where("mes = ?", mes).Order("data, id").Find(&lancs).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao buscar lançamentos"))
		return
	}

	resp := ListResponse{
		Mes:           mes,
		Lancamentos:   lancs,
		TotalEntradas: decimal.Zero,
		TotalSaidas:   decimal.Zero,
		SaldoAtual:    decimal.Zero,
	}
	for _, l := range lancs {
		resp.TotalEntradas = resp.TotalEntradas.Add(l.Entrada)
		resp.TotalSaidas = resp.TotalSaidas.Add(l.Saida)
	}
	if len(lancs) > 0 {
		resp.SaldoAtual = lancs[len(lancs)-1].Saldo
	}

	Success(c, resp)
}

// Create inclui um lançamento; o saldo parte do último saldo do mês
// @Summary Adicionar lançamento
// @Tags lancamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LancamentoRequest true "Lançamento"
// @Success 200 {object} Response{data=models.Lancamento} "Lançamento criado"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Router /api/v1/lancamentos [post]
func (h *LancamentoHandler) Create(c *gin.Context) {
	var req LancamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	data, msg := req.validar()
	if msg != "" {
		BadRequest(c, msg)
		return
	}

	l := models.Lancamento{
		Mes:         req.Mes,
		Data:        data,
		Historico:   req.Historico,
		Complemento: req.Complemento,
		Entrada:     req.Entrada,
		Saida:       req.Saida,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		anterior, err := service.UltimoSaldo(tx, req.Mes)
		if err != nil {
			return err
		}
		l.Saldo = anterior.Add(l.Entrada).Sub(l.Saida)
		return tx.Create(&l).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao salvar lançamento"))
		return
	}

	SuccessWithMessage(c, "lançamento adicionado com sucesso", l)
}

// Update edita um lançamento e recalcula os saldos do mês inteiro
// @Summary Editar lançamento
// @Tags lancamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do lançamento"
// @Param request body LancamentoRequest true "Novos dados"
// @Success 200 {object} Response "Lançamento atualizado"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 404 {object} Response "Lançamento não encontrado"
// @Router /api/v1/lancamentos/{id} [put]
func (h *LancamentoHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var l models.Lancamento
	if err := database.DB.First(&l, id).Error; err != nil {
		NotFound(c, "lançamento não encontrado")
		return
	}

	var req LancamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	// o mês do lançamento não muda em edição
	req.Mes = l.Mes
	data, msg := req.validar()
	if msg != "" {
		BadRequest(c, msg)
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&l).Updates(map[string]interface{}{
			"data":        data,
			"historico":   req.Historico,
			"complemento": req.Complemento,
			"entrada":     req.Entrada,
			"saida":       req.Saida,
		}).Error; err != nil {
			return err
		}
		return service.RecalcularSaldos(tx, l.Mes)
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao atualizar lançamento"))
		return
	}

	SuccessWithMessage(c, "lançamento atualizado com sucesso", nil)
}

// Delete exclui um lançamento e recalcula os saldos restantes do mês
// @Summary Excluir lançamento
// @Tags lancamentos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do lançamento"
// @Success 200 {object} Response "Lançamento excluído"
// @Failure 404 {object} Response "Lançamento não encontrado"
// @Router /api/v1/lancamentos/{id} [delete]
func (h *LancamentoHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var l models.Lancamento
	if err := database.DB.First(&l, id).Error; err != nil {
		NotFound(c, "lançamento não encontrado")
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&l).Error; err != nil {
			return err
		}
		return service.RecalcularSaldos(tx, l.Mes)
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao excluir lançamento"))
		return
	}

	SuccessWithMessage(c, "lançamento excluído com sucesso", nil)
}

// LimparMes remove todos os lançamentos de um mês
// @Summary Limpar lançamentos do mês
// @Tags lancamentos
// @Produce json
// @Security BearerAuth
// @Param mes path string true "Mês (Janeiro..Dezembro)"
// @Success 200 {object} Response "Lançamentos removidos"
// @Failure 400 {object} Response "Mês inválido"
// @Router /api/v1/lancamentos/mes/{mes} [delete]
func (h *LancamentoHandler) LimparMes(c *gin.Context) {
	mes := c.Param("mes")
	if !models.MesValido(mes) {
		BadRequest(c, "mês inválido: use Janeiro a Dezembro")
		return
	}

	if err := database.DB.Where("mes = ?", mes).Delete(&models.Lancamento{}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao limpar lançamentos"))
		return
	}

	SuccessWithMessage(c, "lançamentos de "+mes+" removidos com sucesso", nil)
}
