package service

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"livrocaixa/models"

	"gorm.io/gorm"
)

// utf8BOM prefixo que faz o Excel reconhecer o CSV como UTF-8.
const utf8BOM = "\xEF\xBB\xBF"

// escreverCSV monta um CSV delimitado por ponto e vírgula com BOM.
func escreverCSV(cabecalho []string, linhas [][]string) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(buf)
	w.Comma = ';'
	if err := w.Write(cabecalho); err != nil {
		return nil, err
	}
	for _, linha := range linhas {
		if err := w.Write(linha); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CabecalhoCSVMes colunas do CSV mensal, na ordem exportada.
func CabecalhoCSVMes() []string {
	return []string{"Data", "Histórico", "Complemento", "Entrada_R$", "Saída_R$", "Saldo_R$"}
}

func linhasLancamentos(lancs []models.Lancamento) [][]string {
	linhas := make([][]string, 0, len(lancs))
	for _, l := range lancs {
		linhas = append(linhas, []string{
			l.Data.Format("02/01/2006"),
			l.Historico,
			l.Complemento,
			l.Entrada.StringFixed(2),
			l.Saida.StringFixed(2),
			l.Saldo.StringFixed(2),
		})
	}
	return linhas
}

// GerarCSVMes exporta os lançamentos de um mês. Retorna quantidade zero (e
// conteúdo só com cabeçalho) quando o mês está vazio.
func GerarCSVMes(db *gorm.DB, mes string) ([]byte, int, error) {
	var lancs []models.Lancamento
	if err := db.Where("mes = ?", mes).Order("data, id").Find(&lancs).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar lançamentos: %w", err)
	}
	out, err := escreverCSV(CabecalhoCSVMes(), linhasLancamentos(lancs))
	return out, len(lancs), err
}

// GerarZIPCompleto exporta o livro inteiro: informações do sistema, contas,
// um CSV por mês com movimento, eventos do calendário e usuários (sem hash).
func GerarZIPCompleto(db *gorm.DB) ([]byte, error) {
	arquivos := make(map[string][]byte)
	var ordem []string
	adicionar := func(nome string, conteudo []byte) {
		arquivos[nome] = conteudo
		ordem = append(ordem, nome)
	}

	info, err := escreverCSV(
		[]string{"Sistema", "Exportado_em"},
		[][]string{{"Livro Caixa", time.Now().Format("02/01/2006 15:04:05")}},
	)
	if err != nil {
		return nil, err
	}
	adicionar("00_Informacoes.csv", info)

	var contas []models.Conta
	if err := db.Order("nome").Find(&contas).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar contas: %w", err)
	}
	linhasContas := make([][]string, 0, len(contas))
	for _, c := range contas {
		linhasContas = append(linhasContas, []string{c.Nome})
	}
	contasCSV, err := escreverCSV([]string{"Conta"}, linhasContas)
	if err != nil {
		return nil, err
	}
	adicionar("01_Contas.csv", contasCSV)

	for _, mes := range models.Meses() {
		conteudo, total, err := GerarCSVMes(db, mes)
		if err != nil {
			return nil, err
		}
		if total == 0 {
			continue
		}
		adicionar(fmt.Sprintf("02_%s.csv", mes), conteudo)
	}

	var eventos []models.EventoCalendario
	if err := db.Order("data_evento, hora_evento").Find(&eventos).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar eventos: %w", err)
	}
	linhasEventos := make([][]string, 0, len(eventos))
	for _, e := range eventos {
		linhasEventos = append(linhasEventos, []string{
			e.Titulo, e.Descricao, e.DataEvento.Format("02/01/2006"),
			e.HoraEvento, e.TipoEvento, e.CorEvento, e.CreatedBy,
		})
	}
	eventosCSV, err := escreverCSV(
		[]string{"Título", "Descrição", "Data", "Hora", "Tipo", "Cor", "Criado_por"},
		linhasEventos,
	)
	if err != nil {
		return nil, err
	}
	adicionar("03_Eventos_Calendario.csv", eventosCSV)

	var usuarios []models.User
	if err := db.Order("created_at").Find(&usuarios).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar usuários: %w", err)
	}
	linhasUsuarios := make([][]string, 0, len(usuarios))
	for _, u := range usuarios {
		linhasUsuarios = append(linhasUsuarios, []string{
			u.Username, u.Permissao, u.CreatedAt.Format("02/01/2006 15:04:05"),
		})
	}
	usuariosCSV, err := escreverCSV([]string{"Usuário", "Permissão", "Criado_em"}, linhasUsuarios)
	if err != nil {
		return nil, err
	}
	adicionar("04_Usuarios.csv", usuariosCSV)

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, nome := range ordem {
		f, err := zw.Create(nome)
		if err != nil {
			return nil, err
		}
		if _, err := f.Write(arquivos[nome]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
