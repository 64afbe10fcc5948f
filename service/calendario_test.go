package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarCalendarioJaneiro2024(t *testing.T) {
	// 01/01/2024 cai numa segunda-feira: mês começa na primeira coluna
	cal := GerarCalendario(2024, time.January)
	require.Len(t, cal, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, cal[0])
	assert.Equal(t, []int{29, 30, 31, 0, 0, 0, 0}, cal[4])
}

func TestGerarCalendarioFevereiro2025(t *testing.T) {
	// 01/02/2025 cai num sábado: cinco células vazias no início
	cal := GerarCalendario(2025, time.February)
	require.Len(t, cal, 5)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 2}, cal[0])
	assert.Equal(t, []int{24, 25, 26, 27, 28, 0, 0}, cal[4])
}

func TestGerarCalendarioMarco2026(t *testing.T) {
	// 01/03/2026 cai num domingo: a pior sobra possível, seis semanas
	cal := GerarCalendario(2026, time.March)
	require.Len(t, cal, 6)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 1}, cal[0])
	assert.Equal(t, []int{30, 31, 0, 0, 0, 0, 0}, cal[5])
}

func TestGerarCalendarioTodosOsDias(t *testing.T) {
	// toda matriz tem semanas de 7 posições e cobre todos os dias exatamente uma vez
	for mes := time.January; mes <= time.December; mes++ {
		cal := GerarCalendario(2024, mes)
		visto := make(map[int]bool)
		for _, semana := range cal {
			require.Len(t, semana, 7)
			for _, dia := range semana {
				if dia != 0 {
					assert.False(t, visto[dia])
					visto[dia] = true
				}
			}
		}
		ultimo := time.Date(2024, mes, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
		assert.Len(t, visto, ultimo, mes.String())
	}
}

func TestDiasSemana(t *testing.T) {
	assert.Equal(t, []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}, DiasSemana())
}
