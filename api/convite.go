package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"livrocaixa/config"
	"livrocaixa/database"
	"livrocaixa/models"
	"livrocaixa/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// tamanho máximo aceito para o modelo de convite enviado
const tamanhoMaxModelo = 10 << 20

// ConviteHandler convites, convidados e RSVP
type ConviteHandler struct {
	cfg   *config.Config
	email *service.EmailService
}

// NewConviteHandler cria o handler de convites
func NewConviteHandler(cfg *config.Config) *ConviteHandler {
	return &ConviteHandler{cfg: cfg, email: service.NewEmailService(&cfg.Email)}
}

// ConviteRequest dados de um evento de convite
type ConviteRequest struct {
	Titulo     string `json:"titulo" binding:"required"`
	DataEvento string `json:"data_evento" binding:"required"` // 2006-01-02
	HoraEvento string `json:"hora_evento"`
	Local      string `json:"local"`
	PrazoRSVP  string `json:"prazo_rsvp"` // 2006-01-02, opcional
}

func (r *ConviteRequest) paraEvento() (models.EventoConvite, string) {
	data, err := time.ParseInLocation("2006-01-02", r.DataEvento, time.Local)
	if err != nil {
		return models.EventoConvite{}, "data inválida, use o formato 2006-01-02"
	}
	evento := models.EventoConvite{
		Titulo:     r.Titulo,
		DataEvento: data,
		HoraEvento: r.HoraEvento,
		Local:      r.Local,
	}
	if r.PrazoRSVP != "" {
		prazo, err := time.ParseInLocation("2006-01-02", r.PrazoRSVP, time.Local)
		if err != nil {
			return models.EventoConvite{}, "prazo de RSVP inválido, use o formato 2006-01-02"
		}
		evento.PrazoRSVP = &prazo
	}
	return evento, ""
}

// ConvidadoRequest dados de um convidado
type ConvidadoRequest struct {
	Nome          string `json:"nome" binding:"required"`
	Email         string `json:"email"`
	Telefone      string `json:"telefone"`
	Acompanhantes int    `json:"acompanhantes"`
}

// ListEventos lista os eventos de convite com seus convidados
// @Summary Listar eventos de convite
// @Tags convites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.EventoConvite}
// @Router /api/v1/convites [get]
func (h *ConviteHandler) ListEventos(c *gin.Context) {
	var eventos []models.EventoConvite
	if err := database.DB.Preload("Convidados").Order("data_evento").Find(&eventos).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao buscar eventos"))
		return
	}
	Success(c, eventos)
}

// CreateEvento cadastra um evento de convite
// @Summary Adicionar evento de convite
// @Tags convites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ConviteRequest true "Evento"
// @Success 200 {object} Response{data=models.EventoConvite} "Evento criado"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Router /api/v1/convites [post]
func (h *ConviteHandler) CreateEvento(c *gin.Context) {
	var req ConviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	evento, msg := req.paraEvento()
	if msg != "" {
		BadRequest(c, msg)
		return
	}
	if err := database.DB.Create(&evento).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao salvar evento"))
		return
	}
	SuccessWithMessage(c, "evento criado com sucesso", evento)
}

// GetEvento detalha um evento de convite com os convidados
// @Summary Detalhar evento de convite
// @Tags convites
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do evento"
// @Success 200 {object} Response{data=models.EventoConvite}
// @Failure 404 {object} Response "Evento não encontrado"
// @Router /api/v1/convites/{id} [get]
func (h *ConviteHandler) GetEvento(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var evento models.EventoConvite
	if err := database.DB.Preload("Convidados").First(&evento, id).Error; err != nil {
		NotFound(c, "evento não encontrado")
		return
	}
	Success(c, evento)
}

// UpdateEvento edita um evento de convite
// @Summary Editar evento de convite
// @Tags convites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do evento"
// @Param request body ConviteRequest true "Novos dados"
// @Success 200 {object} Response "Evento atualizado"
// @Failure 404 {object} Response "Evento não encontrado"
// @Router /api/v1/convites/{id} [put]
func (h *ConviteHandler) UpdateEvento(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var evento models.EventoConvite
	if err := database.DB.First(&evento, id).Error; err != nil {
		NotFound(c, "evento não encontrado")
		return
	}

	var req ConviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	novo, msg := req.paraEvento()
	if msg != "" {
		BadRequest(c, msg)
		return
	}

	if err := database.DB.Model(&evento).Updates(map[string]interface{}{
		"titulo":      novo.Titulo,
		"data_evento": novo.DataEvento,
		"hora_evento": novo.HoraEvento,
		"local":       novo.Local,
		"prazo_rsvp":  novo.PrazoRSVP,
	}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao atualizar evento"))
		return
	}
	SuccessWithMessage(c, "evento atualizado com sucesso", nil)
}

// DeleteEvento exclui um evento de convite e seus convidados
// @Summary Excluir evento de convite
// @Tags convites
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do evento"
// @Success 200 {object} Response "Evento excluído"
// @Failure 404 {object} Response "Evento não encontrado"
// @Router /api/v1/convites/{id} [delete]
func (h *ConviteHandler) DeleteEvento(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var evento models.EventoConvite
	if err := database.DB.First(&evento, id).Error; err != nil {
		NotFound(c, "evento não encontrado")
		return
	}

	// evento e convidados caem juntos ou não caem
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("evento_id = ?", evento.ID).Delete(&models.Convidado{}).Error; err != nil {
			return err
		}
		return tx.Delete(&evento).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao excluir evento"))
		return
	}
	SuccessWithMessage(c, "evento excluído com sucesso", nil)
}

// AddConvidado adiciona um convidado ao evento, gerando o código de RSVP
// @Summary Adicionar convidado
// @Tags convites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do evento"
// @Param request body ConvidadoRequest true "Convidado"
// @Success 200 {object} Response{data=models.Convidado} "Convidado adicionado"
// @Failure 404 {object} Response "Evento não encontrado"
// @Router /api/v1/convites/{id}/convidados [post]
func (h *ConviteHandler) AddConvidado(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var evento models.EventoConvite
	if err := database.DB.First(&evento, id).Error; err != nil {
		NotFound(c, "evento não encontrado")
		return
	}

	var req ConvidadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	if req.Acompanhantes < 0 {
		BadRequest(c, "acompanhantes não pode ser negativo")
		return
	}

	convidado := models.Convidado{
		EventoID:      evento.ID,
		Nome:          req.Nome,
		Email:         req.Email,
		Telefone:      req.Telefone,
		Acompanhantes: req.Acompanhantes,
		Status:        models.ConvidadoPendente,
		Codigo:        models.NovoCodigoConfirmacao(),
	}
	if err := database.DB.Create(&convidado).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao salvar convidado"))
		return
	}
	SuccessWithMessage(c, "convidado adicionado com sucesso", convidado)
}

// UpdateConvidado edita os dados de um convidado
// @Summary Editar convidado
// @Tags convites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do convidado"
// @Param request body ConvidadoRequest true "Novos dados"
// @Success 200 {object} Response "Convidado atualizado"
// @Failure 404 {object} Response "Convidado não encontrado"
// @Router /api/v1/convidados/{id} [put]
func (h *ConviteHandler) UpdateConvidado(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var convidado models.Convidado
	if err := database.DB.First(&convidado, id).Error; err != nil {
		NotFound(c, "convidado não encontrado")
		return
	}

	var req ConvidadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	if req.Acompanhantes < 0 {
		BadRequest(c, "acompanhantes não pode ser negativo")
		return
	}

	if err := database.DB.Model(&convidado).Updates(map[string]interface{}{
		"nome":          req.Nome,
		"email":         req.Email,
		"telefone":      req.Telefone,
		"acompanhantes": req.Acompanhantes,
	}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao atualizar convidado"))
		return
	}
	SuccessWithMessage(c, "convidado atualizado com sucesso", nil)
}

// DeleteConvidado remove um convidado
// @Summary Excluir convidado
// @Tags convites
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do convidado"
// @Success 200 {object} Response "Convidado excluído"
// @Failure 404 {object} Response "Convidado não encontrado"
// @Router /api/v1/convidados/{id} [delete]
func (h *ConviteHandler) DeleteConvidado(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var convidado models.Convidado
	if err := database.DB.First(&convidado, id).Error; err != nil {
		NotFound(c, "convidado não encontrado")
		return
	}
	if err := database.DB.Delete(&convidado).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao excluir convidado"))
		return
	}
	SuccessWithMessage(c, "convidado excluído com sucesso", nil)
}

// linkRSVP monta o endereço público do convite. Usa server.base_url quando
// configurado (necessário para e-mails atrás de proxy); caso contrário deriva
// da requisição.
func (h *ConviteHandler) linkRSVP(c *gin.Context, codigo string) string {
	if base := h.cfg.Server.BaseURL; base != "" {
		return strings.TrimRight(base, "/") + "/rsvp/" + codigo
	}
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + "/rsvp/" + codigo
}

// EnviarConvite envia o convite por e-mail com o link de RSVP
// @Summary Enviar convite por e-mail
// @Tags convites
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do convidado"
// @Success 200 {object} Response "Convite enviado"
// @Failure 400 {object} Response "Convidado sem e-mail ou envio desabilitado"
// @Failure 404 {object} Response "Convidado não encontrado"
// @Router /api/v1/convidados/{id}/enviar [post]
func (h *ConviteHandler) EnviarConvite(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var convidado models.Convidado
	if err := database.DB.First(&convidado, id).Error; err != nil {
		NotFound(c, "convidado não encontrado")
		return
	}
	var evento models.EventoConvite
	if err := database.DB.First(&evento, convidado.EventoID).Error; err != nil {
		NotFound(c, "evento não encontrado")
		return
	}

	if err := h.email.EnviarConvite(convidado, evento, h.linkRSVP(c, convidado.Codigo)); err != nil {
		BadRequest(c, SafeErrorMessage(err, "não foi possível enviar o convite"))
		return
	}
	SuccessWithMessage(c, "convite enviado para "+convidado.Email, nil)
}

// carrega convidado e evento pelo código público de RSVP
func carregarPorCodigo(c *gin.Context) (models.Convidado, models.EventoConvite, bool) {
	var convidado models.Convidado
	if err := database.DB.Where("codigo = ?", c.Param("codigo")).First(&convidado).Error; err != nil {
		NotFound(c, "convite não encontrado")
		return convidado, models.EventoConvite{}, false
	}
	var evento models.EventoConvite
	if err := database.DB.First(&evento, convidado.EventoID).Error; err != nil {
		NotFound(c, "convite não encontrado")
		return convidado, evento, false
	}
	return convidado, evento, true
}

// Cartao exibe o cartão do convite (página pública)
// @Summary Cartão do convite
// @Tags rsvp
// @Produce html
// @Param codigo path string true "Código de confirmação"
// @Success 200 {string} string "Cartão em HTML"
// @Failure 404 {object} Response "Convite não encontrado"
// @Router /rsvp/{codigo} [get]
func (h *ConviteHandler) Cartao(c *gin.Context) {
	convidado, evento, ok := carregarPorCodigo(c)
	if !ok {
		return
	}
	h.escreverCartao(c, evento, convidado)
}

// CartaoPorID exibe o cartão de um convidado para conferência interna
// @Summary Cartão do convidado
// @Tags convites
// @Produce html
// @Security BearerAuth
// @Param id path int true "ID do convidado"
// @Success 200 {string} string "Cartão em HTML"
// @Failure 404 {object} Response "Convidado não encontrado"
// @Router /api/v1/convidados/{id}/cartao [get]
func (h *ConviteHandler) CartaoPorID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var convidado models.Convidado
	if err := database.DB.First(&convidado, id).Error; err != nil {
		NotFound(c, "convidado não encontrado")
		return
	}
	var evento models.EventoConvite
	if err := database.DB.First(&evento, convidado.EventoID).Error; err != nil {
		NotFound(c, "convite não encontrado")
		return
	}
	h.escreverCartao(c, evento, convidado)
}

func (h *ConviteHandler) escreverCartao(c *gin.Context, evento models.EventoConvite, convidado models.Convidado) {
	html, err := service.GerarCartaoHTML(evento, convidado, h.linkRSVP(c, convidado.Codigo))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao montar o cartão"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// RSVPRequest resposta do convidado
type RSVPRequest struct {
	Status        string `json:"status" binding:"required"` // confirmado ou cancelado
	Acompanhantes int    `json:"acompanhantes"`
}

// Responder registra a resposta do convidado (página pública)
// @Summary Responder convite
// @Tags rsvp
// @Accept json
// @Produce json
// @Param codigo path string true "Código de confirmação"
// @Param request body RSVPRequest true "Resposta"
// @Success 200 {object} Response "Resposta registrada"
// @Failure 400 {object} Response "Resposta inválida ou prazo encerrado"
// @Failure 404 {object} Response "Convite não encontrado"
// @Router /rsvp/{codigo} [post]
func (h *ConviteHandler) Responder(c *gin.Context) {
	convidado, evento, ok := carregarPorCodigo(c)
	if !ok {
		return
	}

	var req RSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	if req.Status != models.ConvidadoConfirmado && req.Status != models.ConvidadoCancelado {
		BadRequest(c, "status inválido: use confirmado ou cancelado")
		return
	}
	if req.Acompanhantes < 0 {
		BadRequest(c, "acompanhantes não pode ser negativo")
		return
	}
	if evento.PrazoRSVP != nil && time.Now().After(evento.PrazoRSVP.AddDate(0, 0, 1)) {
		BadRequest(c, "o prazo de confirmação deste convite já encerrou")
		return
	}

	if err := database.DB.Model(&convidado).Updates(map[string]interface{}{
		"status":        req.Status,
		"acompanhantes": req.Acompanhantes,
	}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao registrar a resposta"))
		return
	}

	if req.Status == models.ConvidadoConfirmado {
		SuccessWithMessage(c, "presença confirmada, até lá!", nil)
		return
	}
	SuccessWithMessage(c, "resposta registrada, sentiremos sua falta", nil)
}

// lê o modelo enviado e os textos do formulário multipart
func lerModeloETextos(c *gin.Context) ([]byte, []service.TextoConvite, bool) {
	arquivo, _, err := c.Request.FormFile("modelo")
	if err != nil {
		BadRequest(c, "envie a imagem do modelo no campo 'modelo'")
		return nil, nil, false
	}
	defer arquivo.Close()

	modelo, err := io.ReadAll(io.LimitReader(arquivo, tamanhoMaxModelo+1))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao ler o modelo"))
		return nil, nil, false
	}
	if len(modelo) > tamanhoMaxModelo {
		BadRequest(c, "modelo muito grande (máximo 10 MB)")
		return nil, nil, false
	}

	textos := service.TextosPadrao()
	if campo := c.PostForm("textos"); campo != "" {
		if err := json.Unmarshal([]byte(campo), &textos); err != nil {
			BadRequest(c, "campo 'textos' inválido: "+err.Error())
			return nil, nil, false
		}
	}
	return modelo, textos, true
}

// GerarPDF monta o convite em PDF sobre o modelo enviado
// @Summary Gerar convite em PDF
// @Tags convites
// @Accept multipart/form-data
// @Produce application/pdf
// @Security BearerAuth
// @Param modelo formData file true "Imagem do modelo (PNG ou JPEG)"
// @Param textos formData string false "Textos em JSON (posições padrão quando omitido)"
// @Success 200 {file} file "Convite em PDF"
// @Failure 400 {object} Response "Modelo ausente ou inválido"
// @Router /api/v1/convites/pdf [post]
func (h *ConviteHandler) GerarPDF(c *gin.Context) {
	modelo, textos, ok := lerModeloETextos(c)
	if !ok {
		return
	}

	pdf, err := service.GerarConvitePDF(modelo, textos)
	if err != nil {
		BadRequest(c, SafeErrorMessage(err, "não foi possível gerar o convite"))
		return
	}
	anexo(c, "convite.pdf", "application/pdf", pdf)
}

// GerarPreview monta uma prévia do convite em PNG
// @Summary Gerar prévia do convite
// @Tags convites
// @Accept multipart/form-data
// @Produce image/png
// @Security BearerAuth
// @Param modelo formData file true "Imagem do modelo (PNG ou JPEG)"
// @Param textos formData string false "Textos em JSON (posições padrão quando omitido)"
// @Success 200 {file} file "Prévia em PNG"
// @Failure 400 {object} Response "Modelo ausente ou inválido"
// @Router /api/v1/convites/preview [post]
func (h *ConviteHandler) GerarPreview(c *gin.Context) {
	modelo, textos, ok := lerModeloETextos(c)
	if !ok {
		return
	}

	png, err := service.GerarConvitePreview(modelo, textos)
	if err != nil {
		BadRequest(c, SafeErrorMessage(err, "não foi possível gerar a prévia"))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
