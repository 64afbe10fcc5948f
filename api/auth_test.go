package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"livrocaixa/config"
	"livrocaixa/database"
	"livrocaixa/middleware"
	"livrocaixa/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func setupTestConfig(t *testing.T) *config.Config {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	t.Cleanup(func() { config.GlobalConfig = nil })
	return cfg
}

func setAuthContext(userID uint, username, permissao string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("username", username)
		c.Set("permissao", permissao)
		c.Next()
	}
}

func TestAuthHandler_Login(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupTestConfig(t)

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "permissao"}).
			AddRow(1, "admin", models.HashPassword("admin123"), "admin"))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	body := `{"username":"admin","password":"admin123"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	require.NoError(t, mock.ExpectationsWereMet())

	claims, err := middleware.ParseToken(data["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, models.PermissaoAdmin, claims.Permissao)
}

func TestAuthHandler_Login_SenhaErrada(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupTestConfig(t)

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "permissao"}).
			AddRow(1, "admin", models.HashPassword("admin123"), "admin"))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	body := `{"username":"admin","password":"senha-errada"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "usuário ou senha incorretos")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_UsuarioInexistente(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupTestConfig(t)

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs("fantasma").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	body := `{"username":"fantasma","password":"qualquer"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// mesma mensagem da senha errada, sem revelar se o usuário existe
	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "usuário ou senha incorretos")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	setupTestConfig(t)

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "permissao"}).
			AddRow(2, "visual", models.HashPassword("visual123"), "visualizador"))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `usuarios`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	cfg := config.GlobalConfig
	router := gin.New()
	router.Use(setAuthContext(2, "visual", "visualizador"))
	router.PUT("/senha", NewAuthHandler(cfg).ChangePassword)

	body := `{"senha_atual":"visual123","nova_senha":"nova-senha-1"}`
	req := httptest.NewRequest("PUT", "/senha", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "senha alterada com sucesso")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_ChangePassword_SenhaAtualIncorreta(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	setupTestConfig(t)

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "permissao"}).
			AddRow(2, "visual", models.HashPassword("visual123"), "visualizador"))

	cfg := config.GlobalConfig
	router := gin.New()
	router.Use(setAuthContext(2, "visual", "visualizador"))
	router.PUT("/senha", NewAuthHandler(cfg).ChangePassword)

	body := `{"senha_atual":"errada","nova_senha":"nova-senha-1"}`
	req := httptest.NewRequest("PUT", "/senha", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "senha atual incorreta")
	require.NoError(t, mock.ExpectationsWereMet())
}
