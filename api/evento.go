package api

import (
	"strconv"
	"time"

	"livrocaixa/database"
	"livrocaixa/middleware"
	"livrocaixa/models"
	"livrocaixa/service"

	"github.com/gin-gonic/gin"
)

// EventoHandler calendário e eventos
type EventoHandler struct{}

// NewEventoHandler cria o handler do calendário
func NewEventoHandler() *EventoHandler {
	return &EventoHandler{}
}

// EventoRequest dados de um evento do calendário
type EventoRequest struct {
	Titulo     string `json:"titulo" binding:"required"`
	Descricao  string `json:"descricao"`
	DataEvento string `json:"data_evento" binding:"required"` // 2006-01-02
	HoraEvento string `json:"hora_evento"`
	TipoEvento string `json:"tipo_evento"`
	CorEvento  string `json:"cor_evento"`
}

// CalendarioResponse grade mensal com os eventos do período
type CalendarioResponse struct {
	Ano        int                       `json:"ano"`
	Mes        int                       `json:"mes"`
	NomeMes    string                    `json:"nome_mes"`
	DiasSemana []string                  `json:"dias_semana"`
	Semanas    [][]int                   `json:"semanas"`
	Eventos    []models.EventoCalendario `json:"eventos"`
}

// Calendario monta a grade do mês com os eventos
// @Summary Calendário do mês
// @Tags calendario
// @Produce json
// @Security BearerAuth
// @Param ano query int false "Ano (padrão: atual)"
// @Param mes query int false "Mês 1-12 (padrão: atual)"
// @Success 200 {object} Response{data=CalendarioResponse}
// @Failure 400 {object} Response "Período inválido"
// @Router /api/v1/calendario [get]
func (h *EventoHandler) Calendario(c *gin.Context) {
	agora := time.Now()
	ano, err := strconv.Atoi(c.DefaultQuery("ano", strconv.Itoa(agora.Year())))
	if err != nil || ano < 1900 || ano > 2200 {
		BadRequest(c, "ano inválido")
		return
	}
	mes, err := strconv.Atoi(c.DefaultQuery("mes", strconv.Itoa(int(agora.Month()))))
	if err != nil || mes < 1 || mes > 12 {
		BadRequest(c, "mês inválido")
		return
	}

	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.Local)
	fim := inicio.AddDate(0, 1, 0)

	var eventos []models.EventoCalendario
	if err := database.DB.
		Where("data_evento >= ? AND data_evento < ?", inicio, fim).
		Order("data_evento, hora_evento").
		Find(&eventos).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao buscar eventos"))
		return
	}

	Success(c, CalendarioResponse{
		Ano:        ano,
		Mes:        mes,
		NomeMes:    models.Meses()[mes-1],
		DiasSemana: service.DiasSemana(),
		Semanas:    service.GerarCalendario(ano, time.Month(mes)),
		Eventos:    eventos,
	})
}

// ListEventos lista todos os eventos cadastrados
// @Summary Listar eventos
// @Tags calendario
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.EventoCalendario}
// @Router /api/v1/eventos [get]
func (h *EventoHandler) ListEventos(c *gin.Context) {
	var eventos []models.EventoCalendario
	if err := database.DB.Order("data_evento, hora_evento").Find(&eventos).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao buscar eventos"))
		return
	}
	Success(c, eventos)
}

func (r *EventoRequest) paraEvento() (models.EventoCalendario, string) {
	data, err := time.ParseInLocation("2006-01-02", r.DataEvento, time.Local)
	if err != nil {
		return models.EventoCalendario{}, "data inválida, use o formato 2006-01-02"
	}
	tipo := r.TipoEvento
	if tipo == "" {
		tipo = models.EventoOutro
	}
	if !models.TipoEventoValido(tipo) {
		return models.EventoCalendario{}, "tipo de evento inválido"
	}
	cor := r.CorEvento
	if cor == "" {
		cor = "#3788d8"
	}
	return models.EventoCalendario{
		Titulo:     r.Titulo,
		Descricao:  r.Descricao,
		DataEvento: data,
		HoraEvento: r.HoraEvento,
		TipoEvento: tipo,
		CorEvento:  cor,
	}, ""
}

// CreateEvento cadastra um evento no calendário
// @Summary Adicionar evento
// @Tags calendario
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EventoRequest true "Evento"
// @Success 200 {object} Response{data=models.EventoCalendario} "Evento criado"
// @Failure 400 {object} Response "Parâmetros inválidos"
// @Router /api/v1/eventos [post]
func (h *EventoHandler) CreateEvento(c *gin.Context) {
	var req EventoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "parâmetros inválidos: "+err.Error())
		return
	}
	evento, msg := req.paraEvento()
	if msg != "" {
		BadRequest(c, msg)
		return
	}
	evento.CreatedBy = middleware.GetCurrentUsername(c)

	if err := database.DB.Create(&evento).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao salvar evento"))
		return
	}
	SuccessWithMessage(c, "evento adicionado com sucesso", evento)
}

// carrega o evento e verifica se o usuário pode alterá-lo
func (h *EventoHandler) eventoGerenciavel(c *gin.Context) (models.EventoCalendario, bool) {
	var evento models.EventoCalendario
	id, ok := idParam(c)
	if !ok {
		return evento, false
	}
	if err := database.DB.First(&evento, id).Error; err != nil {
		NotFound(c, "evento não encontrado")
		return evento, false
	}
	username := middleware.GetCurrentUsername(c)
	permissao := middleware.GetCurrentPermissao(c)
	if !evento.PodeGerenciar(username, permissao) {
		Forbidden(c, "apenas o criador do evento ou um administrador pode alterá-lo")
		return evento, false
	}
	return evento, true
}

// UpdateEvento edita um evento; só o criador ou um admin pode
// @Summary Editar evento
// @Tags calendario
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do evento"
// @Param request body EventoRequest true "Novos dados"
// @Success 200 {object} Response "Evento atualizado"
// @Failure 403 {object} Response "Sem permissão sobre o evento"
// @Failure 404 {object} Response "Evento não encontrado"
// @Router /api/v1/eventos/{id} [put]
func (h *EventoHandler) UpdateEvento(c *gin.Context) {
	evento, ok := h.eventoGerenciavel(c)
	if !ok {
		return
	}

	var req EventoRequest
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
		"descricao":   novo.Descricao,
		"data_evento": novo.DataEvento,
		"hora_evento": novo.HoraEvento,
		"tipo_evento": novo.TipoEvento,
		"cor_evento":  novo.CorEvento,
	}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao atualizar evento"))
		return
	}
	SuccessWithMessage(c, "evento atualizado com sucesso", nil)
}

// DeleteEvento exclui um evento; só o criador ou um admin pode
// @Summary Excluir evento
// @Tags calendario
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do evento"
// @Success 200 {object} Response "Evento excluído"
// @Failure 403 {object} Response "Sem permissão sobre o evento"
// @Failure 404 {object} Response "Evento não encontrado"
// @Router /api/v1/eventos/{id} [delete]
func (h *EventoHandler) DeleteEvento(c *gin.Context) {
	evento, ok := h.eventoGerenciavel(c)
	if !ok {
		return
	}
	if err := database.DB.Delete(&evento).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao excluir evento"))
		return
	}
	SuccessWithMessage(c, "evento excluído com sucesso", nil)
}
