package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLancamentoHandler_Create_PartindoDoUltimoSaldo(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// transação: busca o último saldo do mês e insere
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `lancamentos`").
		WithArgs("Janeiro").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mes", "data", "historico", "entrada", "saida", "saldo"}).
			AddRow(7, "Janeiro", time.Now(), "Mensalidades", "1500.00", "0.00", "1500.00"))
	mock.ExpectExec("INSERT INTO `lancamentos`").
		WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/lancamentos", NewLancamentoHandler().Create)

	body := `{"mes":"Janeiro","data":"2024-01-20","historico":"Energia elétrica","saida":"350.00"}`
	req := httptest.NewRequest("POST", "/lancamentos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	lanc := resp.Data.(map[string]interface{})
	// 1500.00 - 350.00
	assert.Equal(t, "1150", lanc["saldo"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLancamentoHandler_Create_MesVazio(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `lancamentos`").
		WithArgs("Fevereiro").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectExec("INSERT INTO `lancamentos`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/lancamentos", NewLancamentoHandler().Create)

	body := `{"mes":"Fevereiro","data":"2024-02-01","historico":"Doação","entrada":"200.00"}`
	req := httptest.NewRequest("POST", "/lancamentos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	lanc := resp.Data.(map[string]interface{})
	assert.Equal(t, "200", lanc["saldo"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLancamentoHandler_Create_MesInvalido(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/lancamentos", NewLancamentoHandler().Create)

	body := `{"mes":"Treze","data":"2024-01-20","historico":"x"}`
	req := httptest.NewRequest("POST", "/lancamentos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "mês inválido")
}

func TestLancamentoHandler_Delete_RecalculaMes(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// busca o lançamento a excluir
	mock.ExpectQuery("SELECT .* FROM `lancamentos`").
		WithArgs(uint(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "mes", "data", "historico", "entrada", "saida", "saldo"}).
			AddRow(5, "Janeiro", time.Now(), "Mensalidades", "1500.00", "0.00", "1500.00"))

	// transação: exclui e reescreve os saldos restantes
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `lancamentos`").
		WithArgs(uint(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM `lancamentos`").
		WithArgs("Janeiro").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mes", "data", "historico", "entrada", "saida", "saldo"}).
			AddRow(6, "Janeiro", time.Now(), "Energia elétrica", "0.00", "350.00", "1150.00"))
	mock.ExpectExec("UPDATE `lancamentos`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/lancamentos/:id", NewLancamentoHandler().Delete)

	req := httptest.NewRequest("DELETE", "/lancamentos/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "lançamento excluído com sucesso")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLancamentoHandler_List_ComTotais(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `lancamentos`").
		WithArgs("Janeiro").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mes", "data", "historico", "entrada", "saida", "saldo"}).
			AddRow(1, "Janeiro", time.Now(), "Mensalidades", "1500.00", "0.00", "1500.00").
			AddRow(2, "Janeiro", time.Now(), "Energia elétrica", "0.00", "350.00", "1150.00"))

	router := gin.New()
	router.GET("/lancamentos", NewLancamentoHandler().List)

	req := httptest.NewRequest("GET", "/lancamentos?mes=Janeiro", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "1500", data["total_entradas"])
	assert.Equal(t, "350", data["total_saidas"])
	assert.Equal(t, "1150", data["saldo_atual"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLancamentoHandler_LimparMes(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `lancamentos`").
		WithArgs("Março").
		WillReturnResult(sqlmock.NewResult(0, 12))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/lancamentos/mes/:mes", NewLancamentoHandler().LimparMes)

	req := httptest.NewRequest("DELETE", "/lancamentos/mes/Mar%C3%A7o", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "removidos com sucesso")
	require.NoError(t, mock.ExpectationsWereMet())
}
