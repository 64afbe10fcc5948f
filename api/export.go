package api

import (
	"fmt"
	"net/http"
	"time"

	"livrocaixa/database"
	"livrocaixa/models"
	"livrocaixa/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exportação do livro caixa
type ExportHandler struct{}

// NewExportHandler cria o handler de exportação
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

func anexo(c *gin.Context, nome, contentType string, conteudo []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, nome))
	c.Data(http.StatusOK, contentType, conteudo)
}

// CSVMes exporta os lançamentos de um mês em CSV
// @Summary Exportar mês em CSV
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Param mes query string true "Mês (Janeiro..Dezembro)"
// @Success 200 {file} file "CSV do mês"
// @Failure 400 {object} Response "Mês inválido"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) CSVMes(c *gin.Context) {
	mes := c.Query("mes")
	if !models.MesValido(mes) {
		BadRequest(c, "mês inválido: use Janeiro a Dezembro")
		return
	}

	conteudo, _, err := service.GerarCSVMes(database.DB, mes)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao gerar CSV"))
		return
	}
	anexo(c, "livro_caixa_"+mes+".csv", "text/csv; charset=utf-8", conteudo)
}

// ZIPCompleto exporta todo o livro em um ZIP de CSVs
// @Summary Exportar livro completo em ZIP
// @Tags export
// @Produce application/zip
// @Security BearerAuth
// @Success 200 {file} file "ZIP com os CSVs"
// @Router /api/v1/export/zip [get]
func (h *ExportHandler) ZIPCompleto(c *gin.Context) {
	conteudo, err := service.GerarZIPCompleto(database.DB)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao gerar ZIP"))
		return
	}
	nome := fmt.Sprintf("livro_caixa_completo_%s.zip", time.Now().Format("20060102_150405"))
	anexo(c, nome, "application/zip", conteudo)
}

// Excel exporta o livro em uma planilha, uma aba por mês com lançamentos
// @Summary Exportar livro em Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Planilha do livro"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) Excel(c *gin.Context) {
	f := excelize.NewFile()
	defer f.Close()

	primeira := true
	for _, mes := range models.Meses() {
		var lancs []models.Lancamento
		if err := database.DB.Where("mes = ?", mes).Order("data, id").Find(&lancs).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "erro ao buscar lançamentos"))
			return
		}
		if len(lancs) == 0 {
			continue
		}

		if primeira {
			f.SetSheetName("Sheet1", mes)
			primeira = false
		} else {
			if _, err := f.NewSheet(mes); err != nil {
				InternalError(c, SafeErrorMessage(err, "erro ao gerar planilha"))
				return
			}
		}

		cab := service.CabecalhoCSVMes()
		for i, titulo := range cab {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(mes, cell, titulo)
		}
		for linha, l := range lancs {
			entrada, _ := l.Entrada.Float64()
			saida, _ := l.Saida.Float64()
			saldo, _ := l.Saldo.Float64()
			valores := []interface{}{
				l.Data.Format("02/01/2006"),
				l.Historico,
				l.Complemento,
				entrada,
				saida,
				saldo,
			}
			for col, v := range valores {
				cell, _ := excelize.CoordinatesToCellName(col+1, linha+2)
				f.SetCellValue(mes, cell, v)
			}
		}
	}
	if primeira {
		// nenhum mês com lançamentos, mantém ao menos uma aba
		f.SetSheetName("Sheet1", "Livro Caixa")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao gerar planilha"))
		return
	}
	nome := fmt.Sprintf("livro_caixa_%s.xlsx", time.Now().Format("20060102_150405"))
	anexo(c, nome, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// SQLEstrutura exporta o dump da estrutura das tabelas (apenas admin)
// @Summary Exportar estrutura SQL
// @Tags export
// @Produce text/plain
// @Security BearerAuth
// @Success 200 {file} file "Dump da estrutura"
// @Failure 403 {object} Response "Apenas administradores"
// @Router /api/v1/export/sql [get]
func (h *ExportHandler) SQLEstrutura(c *gin.Context) {
	conteudo, err := service.DumpEstrutura(database.DB, database.Tabelas())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "erro ao gerar dump da estrutura"))
		return
	}
	nome := fmt.Sprintf("estrutura_%s.sql", time.Now().Format("20060102_150405"))
	anexo(c, nome, "text/plain; charset=utf-8", conteudo)
}
