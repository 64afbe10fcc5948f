package router

import (
	"io/fs"
	"net/http"
	"time"

	"livrocaixa/api"
	"livrocaixa/config"
	_ "livrocaixa/docs"
	"livrocaixa/middleware"
	"livrocaixa/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter monta as rotas da aplicação
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	// página única embutida no binário
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "erro ao carregar a página")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	conviteHandler := api.NewConviteHandler(cfg)

	// RSVP público, acessado pelo link enviado ao convidado
	r.GET("/rsvp/:codigo", conviteHandler.Cartao)
	r.POST("/rsvp/:codigo", conviteHandler.Responder)

	v1 := r.Group("/api/v1")
	{
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimit(10, time.Minute), authHandler.Login)
		}

		// rotas autenticadas; leitura liberada para qualquer permissão
		autenticado := v1.Group("")
		autenticado.Use(middleware.JWTAuth())
		{
			autenticado.GET("/auth/perfil", authHandler.GetPerfil)
			autenticado.PUT("/auth/perfil", authHandler.UpdatePerfil)
			autenticado.PUT("/auth/senha", authHandler.ChangePassword)

			lancamentoHandler := api.NewLancamentoHandler()
			autenticado.GET("/lancamentos", lancamentoHandler.List)

			contaHandler := api.NewContaHandler()
			autenticado.GET("/contas", contaHandler.List)

			eventoHandler := api.NewEventoHandler()
			autenticado.GET("/calendario", eventoHandler.Calendario)
			autenticado.GET("/eventos", eventoHandler.ListEventos)

			balancoHandler := api.NewBalancoHandler()
			autenticado.GET("/balanco", balancoHandler.Balanco)

			exportHandler := api.NewExportHandler()
			export := autenticado.Group("/export")
			{
				export.GET("/csv", exportHandler.CSVMes)
				export.GET("/zip", exportHandler.ZIPCompleto)
				export.GET("/excel", exportHandler.Excel)
				export.GET("/sql", middleware.RequireAdmin(), exportHandler.SQLEstrutura)
			}

			autenticado.GET("/convites", conviteHandler.ListEventos)
			autenticado.GET("/convites/:id", conviteHandler.GetEvento)
			autenticado.GET("/convidados/:id/cartao", conviteHandler.CartaoPorID)

			// escrita exige permissão de edição (admin ou editor)
			edicao := autenticado.Group("")
			edicao.Use(middleware.RequireEdicao())
			{
				edicao.POST("/lancamentos", lancamentoHandler.Create)
				edicao.PUT("/lancamentos/:id", lancamentoHandler.Update)
				edicao.DELETE("/lancamentos/:id", lancamentoHandler.Delete)
				edicao.DELETE("/lancamentos/mes/:mes", lancamentoHandler.LimparMes)

				edicao.POST("/contas", contaHandler.Create)
				edicao.DELETE("/contas/:id", contaHandler.Delete)

				edicao.POST("/eventos", eventoHandler.CreateEvento)
				edicao.PUT("/eventos/:id", eventoHandler.UpdateEvento)
				edicao.DELETE("/eventos/:id", eventoHandler.DeleteEvento)

				edicao.POST("/convites", conviteHandler.CreateEvento)
				edicao.PUT("/convites/:id", conviteHandler.UpdateEvento)
				edicao.DELETE("/convites/:id", conviteHandler.DeleteEvento)
				edicao.POST("/convites/:id/convidados", conviteHandler.AddConvidado)
				edicao.PUT("/convidados/:id", conviteHandler.UpdateConvidado)
				edicao.DELETE("/convidados/:id", conviteHandler.DeleteConvidado)
				edicao.POST("/convidados/:id/enviar", conviteHandler.EnviarConvite)
				edicao.POST("/convites/pdf", conviteHandler.GerarPDF)
				edicao.POST("/convites/preview", conviteHandler.GerarPreview)
			}

			// gestão de usuários é exclusiva do administrador
			admin := autenticado.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				usuarioHandler := api.NewUsuarioHandler()
				admin.GET("/usuarios", usuarioHandler.List)
				admin.POST("/usuarios", usuarioHandler.Create)
				admin.PUT("/usuarios/:id/permissao", usuarioHandler.UpdatePermissao)
				admin.PUT("/usuarios/:id/senha", usuarioHandler.ResetSenha)
				admin.DELETE("/usuarios/:id", usuarioHandler.Delete)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware libera o acesso do front servido em outra origem
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
