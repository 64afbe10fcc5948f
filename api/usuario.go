package api

import (
	"errors"

	"livrocaixa/database"
	"livrocaixa/middleware"
	"livrocaixa/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// usuarioSemente conta administrativa criada na primeira subida; não pode ser
// rebaixada nem excluída para o sistema nunca ficar sem administrador.
const usuarioSemente = "admin"

// UsuarioHandler gestão de usuários (somente admin)
type UsuarioHandler struct{}

// NewUsuarioHandler cria o handler de usuários
func NewUsuarioHandler() *UsuarioHandler {
	return &UsuarioHandler{}
}

// List lista todos os usuários
// @Summary Listar usuários
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.User}
// @Router /api/v1/usuarios [get]
func (h *UsuarioHandler) List(c *gin.Context) {
	var usuarios []models.User
	if err := database.DB.Order("created_at").Find(&usuarios).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao buscar usuários"))
		return
	}
	Success(c, usuarios)
}

// CreateUsuarioRequest cadastro de usuário
type CreateUsuarioRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Password  string `json:"password" binding:"required,min=6,max=50"`
	Permissao string `json:"permissao"`
}

// Create cadastra um novo usuário
// @Summary Criar usuário
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUsuarioRequest true "Dados do usuário"
// @Success 200 {object} Response{data=models.User} "Usuário criado"
// @Failure 400 {object} Response "Usuário já existe ou parâmetros inválidos"
// @Router /api/v1/usuarios [post]
func (h *UsuarioHandler) Create(c *gin.Context) {
	var req CreateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	if req.Permissao == "" {
		req.Permissao = models.PermissaoVisualizador
	}
	if !models.PermissaoValida(req.Permissao) {
		BadRequest(c, "permissão inválida: use admin, editor ou visualizador")
		return
	}

	var existente models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existente).Error; err == nil {
		BadRequest(c, "nome de usuário já existe")
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: models.HashPassword(req.Password),
		Permissao:    req.Permissao,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		// a checagem acima não segura dois inserts simultâneos; o índice único segura
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			BadRequest(c, "nome de usuário já existe")
			return
		}
		InternalError(c, SafeErrorMessage(err, "erro ao criar usuário"))
		return
	}

	SuccessWithMessage(c, "usuário criado com sucesso", user)
}

// UpdatePermissaoRequest troca de permissão
type UpdatePermissaoRequest struct {
	Permissao string `json:"permissao" binding:"required"`
}

// UpdatePermissao altera a permissão de um usuário
// @Summary Alterar permissão
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Param request body UpdatePermissaoRequest true "Nova permissão"
// @Success 200 {object} Response "Permissão atualizada"
// @Failure 400 {object} Response "Permissão inválida ou usuário protegido"
// @Failure 404 {object} Response "Usuário não encontrado"
// @Router /api/v1/usuarios/{id}/permissao [put]
func (h *UsuarioHandler) UpdatePermissao(c *gin.Context) {
	var req UpdatePermissaoRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.PermissaoValida(req.Permissao) {
		BadRequest(c, "permissão inválida: use admin, editor ou visualizador")
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		NotFound(c, "usuário não encontrado")
		return
	}

	if user.Username == usuarioSemente && req.Permissao != models.PermissaoAdmin {
		BadRequest(c, "a conta admin não pode perder a permissão de administrador")
		return
	}

	if err := database.DB.Model(&user).Update("permissao", req.Permissao).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao atualizar permissão"))
		return
	}

	SuccessWithMessage(c, "permissão atualizada com sucesso", nil)
}

// ResetSenhaRequest redefinição de senha pelo admin
type ResetSenhaRequest struct {
	NovaSenha string `json:"nova_senha" binding:"required,min=6,max=50"`
}

// ResetSenha redefine a senha de um usuário
// @Summary Redefinir senha de um usuário
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Param request body ResetSenhaRequest true "Nova senha"
// @Success 200 {object} Response "Senha redefinida"
// @Failure 404 {object} Response "Usuário não encontrado"
// @Router /api/v1/usuarios/{id}/senha [put]
func (h *UsuarioHandler) ResetSenha(c *gin.Context) {
	var req ResetSenhaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "informe a nova senha (mínimo 6 caracteres)")
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		NotFound(c, "usuário não encontrado")
		return
	}

	if err := database.DB.Model(&user).Update("password_hash", models.HashPassword(req.NovaSenha)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao redefinir senha"))
		return
	}

	SuccessWithMessage(c, "senha redefinida com sucesso", nil)
}

// Delete exclui um usuário
// @Summary Excluir usuário
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Success 200 {object} Response "Usuário excluído"
// @Failure 400 {object} Response "Exclusão não permitida"
// @Failure 404 {object} Response "Usuário não encontrado"
// @Router /api/v1/usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		NotFound(c, "usuário não encontrado")
		return
	}

	if user.ID == middleware.GetCurrentUserID(c) {
		BadRequest(c, "não é possível excluir o próprio usuário")
		return
	}
	if user.Username == usuarioSemente {
		BadRequest(c, "a conta admin não pode ser excluída")
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao excluir usuário"))
		return
	}

	SuccessWithMessage(c, "usuário excluído com sucesso", nil)
}
