package api

import (
	"errors"
	"strings"

	"livrocaixa/database"
	"livrocaixa/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContaHandler contas monitoradas
type ContaHandler struct{}

// NewContaHandler cria o handler de contas
func NewContaHandler() *ContaHandler {
	return &ContaHandler{}
}

type contaRequest struct {
	Nome string `json:"nome" binding:"required"`
}

// List lista as contas por ordem alfabética
// @Summary Listar contas
// @Tags contas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Conta}
// @Router /api/v1/contas [get]
func (h *ContaHandler) List(c *gin.Context) {
	var contas []models.Conta
	if err := database.DB.Order("nome").Find(&contas).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao buscar contas"))
		return
	}
	Success(c, contas)
}

// Create adiciona uma conta; nome repetido não gera erro
// @Summary Adicionar conta
// @Tags contas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body contaRequest true "Conta"
// @Success 200 {object} Response "Conta adicionada"
// @Failure 400 {object} Response "Nome vazio"
// @Router /api/v1/contas [post]
func (h *ContaHandler) Create(c *gin.Context) {
	var req contaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "informe o nome da conta")
		return
	}
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		BadRequest(c, "informe o nome da conta")
		return
	}

	var existente models.Conta
	if err := database.DB.Where("nome = ?", nome).First(&existente).Error; err == nil {
		// já cadastrada, nada a fazer
		SuccessWithMessage(c, "conta já cadastrada", existente)
		return
	}

	conta := models.Conta{Nome: nome}
	if err := database.DB.Create(&conta).Error; err != nil {
		// outro insert pode ter ganhado a corrida; segue idempotente
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			database.DB.Where("nome = ?", nome).First(&existente)
			SuccessWithMessage(c, "conta já cadastrada", existente)
			return
		}
		InternalError(c, SafeErrorMessage(err, "erro ao salvar conta"))
		return
	}
	SuccessWithMessage(c, "conta adicionada com sucesso", conta)
}

// Delete remove uma conta
// @Summary Excluir conta
// @Tags contas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da conta"
// @Success 200 {object} Response "Conta excluída"
// @Failure 404 {object} Response "Conta não encontrada"
// @Router /api/v1/contas/{id} [delete]
func (h *ContaHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var conta models.Conta
	if err := database.DB.First(&conta, id).Error; err != nil {
		NotFound(c, "conta não encontrada")
		return
	}
	if err := database.DB.Delete(&conta).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao excluir conta"))
		return
	}
	SuccessWithMessage(c, "conta excluída com sucesso", nil)
}
