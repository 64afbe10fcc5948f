package service

import "time"

// DiasSemana cabeçalho do calendário, segunda-feira primeiro.
func DiasSemana() []string {
	return []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}
}

// GerarCalendario monta a matriz do mês para exibição: semanas completas de
// sete posições, segunda-feira na primeira coluna, zero nas células vazias
// do início e do fim.
func GerarCalendario(ano int, mes time.Month) [][]int {
	primeiro := time.Date(ano, mes, 1, 0, 0, 0, 0, time.UTC)
	ultimoDia := primeiro.AddDate(0, 1, -1).Day()

	// time.Weekday: domingo = 0; aqui segunda = coluna 0
	coluna := (int(primeiro.Weekday()) + 6) % 7

	var calendario [][]int
	semana := make([]int, 7)
	for dia := 1; dia <= ultimoDia; dia++ {
		semana[coluna] = dia
		coluna++
		if coluna == 7 {
			calendario = append(calendario, semana)
			semana = make([]int, 7)
			coluna = 0
		}
	}
	if coluna > 0 {
		calendario = append(calendario, semana)
	}
	return calendario
}
