package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"livrocaixa/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// Claims identidade e permissão carregadas no token de sessão
type Claims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Permissao string `json:"permissao"`
	jwt.RegisteredClaims
}

// InitJWT configura o segredo a partir da configuração
func InitJWT(cfg *config.Config) {
	jwtSecret = []byte(cfg.JWT.Secret)
}

// GenerateToken emite um token para o usuário autenticado
func GenerateToken(userID uint, username, permissao string, expire time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID,
		Username:  username,
		Permissao: permissao,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "livrocaixa",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken valida e extrai os claims de um token
func ParseToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inesperado")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("token inválido")
	}
	return claims, nil
}

// JWTAuth exige um token Bearer válido e grava a identidade no contexto
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "faça login para continuar"})
			c.Abort()
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		claims, err := ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "sessão inválida ou expirada"})
			c.Abort()
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("permissao", claims.Permissao)
		c.Next()
	}
}

// GetCurrentUserID retorna o id do usuário autenticado (0 se ausente)
func GetCurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetCurrentUsername retorna o username autenticado ("" se ausente)
func GetCurrentUsername(c *gin.Context) string {
	return c.GetString("username")
}

// GetCurrentPermissao retorna a permissão da sessão ("" se ausente)
func GetCurrentPermissao(c *gin.Context) string {
	return c.GetString("permissao")
}
