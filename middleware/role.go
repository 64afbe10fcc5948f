package middleware

import (
	"net/http"

	"livrocaixa/models"

	"github.com/gin-gonic/gin"
)

// RequireEdicao libera apenas admin e editor; visualizador é somente leitura.
// Deve ser usado depois de JWTAuth.
func RequireEdicao() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetCurrentPermissao(c)
		if p != models.PermissaoAdmin && p != models.PermissaoEditor {
			c.JSON(http.StatusForbidden, gin.H{"code": 403, "message": "permissão de edição necessária"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin libera apenas administradores.
// Deve ser usado depois de JWTAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetCurrentPermissao(c) != models.PermissaoAdmin {
			c.JSON(http.StatusForbidden, gin.H{"code": 403, "message": "acesso restrito ao administrador"})
			c.Abort()
			return
		}
		c.Next()
	}
}
