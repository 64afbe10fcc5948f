package api

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHandler_CSVMes(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `lancamentos`").
		WithArgs("Janeiro").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mes", "data", "historico", "complemento", "entrada", "saida", "saldo"}).
			AddRow(1, "Janeiro", time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local), "Mensalidades", "", "1500.00", "0.00", "1500.00"))

	router := gin.New()
	router.GET("/export/csv", NewExportHandler().CSVMes)

	req := httptest.NewRequest("GET", "/export/csv?mes=Janeiro", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "livro_caixa_Janeiro.csv")

	corpo := w.Body.String()
	// BOM UTF-8 na frente para o Excel abrir acentos corretamente
	assert.True(t, strings.HasPrefix(corpo, "\xef\xbb\xbf"))
	assert.Contains(t, corpo, "Data;Histórico;Complemento;Entrada_R$;Saída_R$;Saldo_R$")
	assert.Contains(t, corpo, "05/01/2024;Mensalidades;;1500.00;0.00;1500.00")

	// reler o arquivo reproduz os lançamentos campo a campo
	leitor := csv.NewReader(strings.NewReader(strings.TrimPrefix(corpo, "\xef\xbb\xbf")))
	leitor.Comma = ';'
	registros, err := leitor.ReadAll()
	require.NoError(t, err)
	require.Len(t, registros, 2)
	assert.Equal(t, []string{"Data", "Histórico", "Complemento", "Entrada_R$", "Saída_R$", "Saldo_R$"}, registros[0])
	assert.Equal(t, []string{"05/01/2024", "Mensalidades", "", "1500.00", "0.00", "1500.00"}, registros[1])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_CSVMes_MesInvalido(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/export/csv", NewExportHandler().CSVMes)

	req := httptest.NewRequest("GET", "/export/csv?mes=Month13", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "mês inválido")
}

func TestExportHandler_ZIPCompleto(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// contas
	mock.ExpectQuery("SELECT .* FROM `contas`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome"}).AddRow(1, "Caixa Econômica"))
	// um mês com lançamento, os demais vazios
	mock.ExpectQuery("SELECT .* FROM `lancamentos`").
		WithArgs("Janeiro").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mes", "data", "historico", "entrada", "saida", "saldo"}).
			AddRow(1, "Janeiro", time.Now(), "Mensalidades", "1500.00", "0.00", "1500.00"))
	for i := 1; i < 12; i++ {
		mock.ExpectQuery("SELECT .* FROM `lancamentos`").
			WillReturnRows(sqlmock.NewRows([]string{}))
	}
	// eventos e usuários
	mock.ExpectQuery("SELECT .* FROM `eventos_calendario`").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "permissao"}).
			AddRow(1, "admin", "admin"))

	router := gin.New()
	router.GET("/export/zip", NewExportHandler().ZIPCompleto)

	req := httptest.NewRequest("GET", "/export/zip", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	r, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)

	nomes := make([]string, 0, len(r.File))
	for _, f := range r.File {
		nomes = append(nomes, f.Name)
	}
	assert.Contains(t, nomes, "00_Informacoes.csv")
	assert.Contains(t, nomes, "01_Contas.csv")
	assert.Contains(t, nomes, "02_Janeiro.csv")
	assert.Contains(t, nomes, "03_Eventos_Calendario.csv")
	assert.Contains(t, nomes, "04_Usuarios.csv")
	// meses vazios ficam de fora
	assert.NotContains(t, nomes, "02_Fevereiro.csv")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_Excel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `lancamentos`").
		WithArgs("Janeiro").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mes", "data", "historico", "entrada", "saida", "saldo"}).
			AddRow(1, "Janeiro", time.Now(), "Mensalidades", "1500.00", "0.00", "1500.00"))
	for i := 1; i < 12; i++ {
		mock.ExpectQuery("SELECT .* FROM `lancamentos`").
			WillReturnRows(sqlmock.NewRows([]string{}))
	}

	router := gin.New()
	router.GET("/export/excel", NewExportHandler().Excel)

	req := httptest.NewRequest("GET", "/export/excel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	// xlsx é um ZIP
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
	require.NoError(t, mock.ExpectationsWereMet())
}
