package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMesValido(t *testing.T) {
	for _, m := range Meses() {
		assert.True(t, MesValido(m), m)
	}
	assert.Len(t, Meses(), 12)
	assert.False(t, MesValido("janeiro")) // sensível a maiúsculas
	assert.False(t, MesValido("Marco"))   // sem acento não vale
	assert.False(t, MesValido(""))
}

func TestStatusConvidadoValido(t *testing.T) {
	assert.True(t, StatusConvidadoValido(ConvidadoPendente))
	assert.True(t, StatusConvidadoValido(ConvidadoConfirmado))
	assert.True(t, StatusConvidadoValido(ConvidadoCancelado))
	assert.False(t, StatusConvidadoValido("talvez"))
}

func TestEventoPodeGerenciar(t *testing.T) {
	e := &EventoCalendario{CreatedBy: "maria"}
	assert.True(t, e.PodeGerenciar("maria", PermissaoEditor))
	assert.True(t, e.PodeGerenciar("outro", PermissaoAdmin))
	assert.False(t, e.PodeGerenciar("outro", PermissaoEditor))
	assert.False(t, e.PodeGerenciar("outro", PermissaoVisualizador))
}
