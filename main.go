package main

import (
	"flag"
	"log"
	"strings"

	"livrocaixa/config"
	"livrocaixa/database"
	"livrocaixa/middleware"
	"livrocaixa/router"
	"livrocaixa/service"

	"github.com/joho/godotenv"
)

// @title Livro Caixa API
// @version 1.0
// @description Sistema de livro caixa com lançamentos mensais, calendário de eventos, exportação e convites
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "caminho do arquivo de configuração externo (opcional)")
	flag.StringVar(&configFile, "c", "", "caminho do arquivo de configuração (abreviado)")
	flag.StringVar(&port, "port", "", "porta de escuta, ex: 8080 ou :8080")
	flag.StringVar(&port, "p", "", "porta de escuta (abreviado)")
	flag.BoolVar(&showVersion, "version", false, "exibe a versão")
	flag.BoolVar(&showVersion, "v", false, "exibe a versão (abreviado)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Livro Caixa v1.0.0")
		return
	}

	// .env local é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	// configuração embutida + arquivo externo + variáveis LIVROCAIXA_*
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("erro ao carregar configuração: %v", err)
	}

	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("porta definida pela linha de comando: %s", port)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuração inválida: %v", err)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("erro ao inicializar o banco: %v", err)
	}

	middleware.InitJWT(cfg)

	// backup agendado (quando habilitado na configuração)
	backup := service.NewBackupService(&cfg.Backup, database.GetDB(), database.Tabelas())
	if err := backup.Start(); err != nil {
		log.Fatalf("erro ao agendar backup: %v", err)
	}
	defer backup.Stop()

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  Livro Caixa no ar")
	log.Printf("==========================================")
	log.Printf("  Painel:  http://localhost%s/", cfg.Server.Port)
	log.Printf("  Swagger: http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:     http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("erro ao iniciar o servidor: %v", err)
	}
}
