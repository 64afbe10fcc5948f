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

func TestEventoHandler_Calendario(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `eventos_calendario`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "titulo", "data_evento", "tipo_evento", "created_by"}).
			AddRow(1, "Sessão ordinária", time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local), "Reunião", "admin"))

	router := gin.New()
	router.GET("/calendario", NewEventoHandler().Calendario)

	req := httptest.NewRequest("GET", "/calendario?ano=2024&mes=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Janeiro", data["nome_mes"])

	// janeiro de 2024 começa numa segunda: primeira semana sem zeros à esquerda
	semanas := data["semanas"].([]interface{})
	primeira := semanas[0].([]interface{})
	assert.Equal(t, float64(1), primeira[0])
	assert.Len(t, primeira, 7)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventoHandler_Calendario_MesInvalido(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/calendario", NewEventoHandler().Calendario)

	req := httptest.NewRequest("GET", "/calendario?ano=2024&mes=13", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestEventoHandler_CreateEvento(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `eventos_calendario`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setAuthContext(2, "tesoureiro", "editor"))
	router.POST("/eventos", NewEventoHandler().CreateEvento)

	body := `{"titulo":"Sessão ordinária","data_evento":"2024-03-12","hora_evento":"19:30:00","tipo_evento":"Reunião"}`
	req := httptest.NewRequest("POST", "/eventos", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	evento := resp.Data.(map[string]interface{})
	assert.Equal(t, "tesoureiro", evento["created_by"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventoHandler_DeleteEvento_SemPermissao(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `eventos_calendario`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "titulo", "data_evento", "created_by"}).
			AddRow(1, "Sessão ordinária", time.Now(), "admin"))

	// editor que não criou o evento não pode excluir
	router := gin.New()
	router.Use(setAuthContext(2, "tesoureiro", "editor"))
	router.DELETE("/eventos/:id", NewEventoHandler().DeleteEvento)

	req := httptest.NewRequest("DELETE", "/eventos/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 403, w.Code)
	assert.Contains(t, w.Body.String(), "apenas o criador do evento ou um administrador")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventoHandler_DeleteEvento_AdminPodeSempre(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `eventos_calendario`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "titulo", "data_evento", "created_by"}).
			AddRow(1, "Sessão ordinária", time.Now(), "tesoureiro"))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `eventos_calendario`").
		WithArgs(uint(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setAuthContext(1, "admin", "admin"))
	router.DELETE("/eventos/:id", NewEventoHandler().DeleteEvento)

	req := httptest.NewRequest("DELETE", "/eventos/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
