package api

import (
	"time"

	"livrocaixa/config"
	"livrocaixa/database"
	"livrocaixa/middleware"
	"livrocaixa/models"

	"github.com/gin-gonic/gin"
)

// AuthHandler autenticação e conta do próprio usuário
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler cria o handler de autenticação
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// LoginRequest credenciais de acesso
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginResponse token de sessão e dados do usuário
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// Login autentica e emite o token de sessão
// @Summary Login
// @Description Verifica usuário e senha e emite um token JWT com a permissão da conta
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credenciais"
// @Success 200 {object} Response{data=LoginResponse} "Login efetuado"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 401 {object} Response "Usuário ou senha incorretos"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "preencha usuário e senha")
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		// mesma mensagem para usuário inexistente e senha errada
		Unauthorized(c, "usuário ou senha incorretos")
		return
	}

	if !models.CheckPassword(req.Password, user.PasswordHash) {
		Unauthorized(c, "usuário ou senha incorretos")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, user.Permissao, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "erro ao gerar token")
		return
	}

	Success(c, LoginResponse{
		Token:    token,
		UserInfo: user,
	})
}

// GetPerfil retorna os dados do usuário autenticado
// @Summary Perfil do usuário
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User}
// @Failure 404 {object} Response "Usuário não encontrado"
// @Router /api/v1/auth/perfil [get]
func (h *AuthHandler) GetPerfil(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "usuário não encontrado")
		return
	}

	Success(c, user)
}

// ChangePasswordRequest troca de senha do próprio usuário
type ChangePasswordRequest struct {
	SenhaAtual string `json:"senha_atual" binding:"required"`
	NovaSenha  string `json:"nova_senha" binding:"required,min=6,max=50"`
}

// ChangePassword troca a senha do usuário autenticado
// @Summary Alterar a própria senha
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Senhas"
// @Success 200 {object} Response "Senha alterada"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Failure 401 {object} Response "Senha atual incorreta"
// @Router /api/v1/auth/senha [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "informe a senha atual e a nova senha (mínimo 6 caracteres)")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "usuário não encontrado")
		return
	}

	if !models.CheckPassword(req.SenhaAtual, user.PasswordHash) {
		Unauthorized(c, "senha atual incorreta")
		return
	}

	if err := database.DB.Model(&user).Update("password_hash", models.HashPassword(req.NovaSenha)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao atualizar senha"))
		return
	}

	SuccessWithMessage(c, "senha alterada com sucesso", nil)
}

// PerfilRequest campos editáveis do próprio perfil
type PerfilRequest struct {
	Nome           string `json:"nome"`
	Telefone       string `json:"telefone"`
	Endereco       string `json:"endereco"`
	DataNascimento string `json:"data_nascimento"` // 2006-01-02, vazio limpa
	DataIniciacao  string `json:"data_iniciacao"`
	DataElevacao   string `json:"data_elevacao"`
	DataExaltacao  string `json:"data_exaltacao"`
}

// datasPerfil converte as datas cerimoniais do request; vazio vira nil.
func (r *PerfilRequest) datasPerfil() (map[string]interface{}, error) {
	campos := map[string]interface{}{
		"nome":     r.Nome,
		"telefone": r.Telefone,
		"endereco": r.Endereco,
	}
	datas := map[string]string{
		"data_nascimento": r.DataNascimento,
		"data_iniciacao":  r.DataIniciacao,
		"data_elevacao":   r.DataElevacao,
		"data_exaltacao":  r.DataExaltacao,
	}
	for coluna, valor := range datas {
		if valor == "" {
			campos[coluna] = nil
			continue
		}
		d, err := time.ParseInLocation("2006-01-02", valor, time.Local)
		if err != nil {
			return nil, err
		}
		campos[coluna] = d
	}
	return campos, nil
}

// UpdatePerfil atualiza os dados do próprio perfil
// @Summary Atualizar o próprio perfil
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PerfilRequest true "Dados do perfil"
// @Success 200 {object} Response "Perfil atualizado"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Router /api/v1/auth/perfil [put]
func (h *AuthHandler) UpdatePerfil(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req PerfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}

	campos, err := req.datasPerfil()
	if err != nil {
		BadRequest(c, "data inválida, use o formato 2006-01-02")
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).Updates(campos).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao atualizar perfil"))
		return
	}

	SuccessWithMessage(c, "perfil atualizado com sucesso", nil)
}
