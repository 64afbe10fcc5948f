package models

import "time"

// Tipos de evento aceitos no calendário.
const (
	EventoReuniao     = "Reunião"
	EventoPagamento   = "Pagamento"
	EventoCompromisso = "Compromisso"
	EventoLembrete    = "Lembrete"
	EventoOutro       = "Outro"
)

// TiposEvento lista os tipos aceitos.
func TiposEvento() []string {
	return []string{EventoReuniao, EventoPagamento, EventoCompromisso, EventoLembrete, EventoOutro}
}

// TipoEventoValido informa se o tipo é um dos aceitos.
func TipoEventoValido(tipo string) bool {
	for _, t := range TiposEvento() {
		if t == tipo {
			return true
		}
	}
	return false
}

// EventoCalendario compromisso agendado no calendário
type EventoCalendario struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Titulo     string    `json:"titulo" gorm:"size:200;not null"`
	Descricao  string    `json:"descricao" gorm:"type:text"`
	DataEvento time.Time `json:"data_evento" gorm:"type:date;not null;index"`
	HoraEvento string    `json:"hora_evento" gorm:"size:8"` // HH:MM:SS, opcional
	TipoEvento string    `json:"tipo_evento" gorm:"size:50"`
	CorEvento  string    `json:"cor_evento" gorm:"size:20"` // #rrggbb
	CreatedBy  string    `json:"created_by" gorm:"size:50;index"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName define a tabela
func (EventoCalendario) TableName() string {
	return "eventos_calendario"
}

// PodeGerenciar informa se o usuário pode editar ou excluir o evento:
// apenas o criador ou um administrador.
func (e *EventoCalendario) PodeGerenciar(username, permissao string) bool {
	return permissao == PermissaoAdmin || e.CreatedBy == username
}
