package database

import (
	"fmt"
	"log"

	"livrocaixa/config"
	"livrocaixa/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init abre a conexão com o MySQL e prepara o esquema.
// O AutoMigrate cumpre o papel das migrações idempotentes de
// "adicionar coluna se não existir" executadas na subida.
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)
	if cfg.Database.TLS {
		// provedores gerenciados (PlanetScale e afins) exigem TLS
		dsn += "&tls=true"
	}

	logMode := logger.Warn
	if cfg.Server.Mode == "debug" {
		logMode = logger.Info
	}

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("erro ao conectar ao banco: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Lancamento{},
		&models.Conta{},
		&models.EventoCalendario{},
		&models.EventoConvite{},
		&models.Convidado{},
	); err != nil {
		return err
	}

	if cfg.Seed.DefaultUsers {
		if err := seedUsuariosPadrao(); err != nil {
			return err
		}
	}

	log.Println("banco de dados inicializado")
	return nil
}

// seedUsuariosPadrao cria admin/admin123 e visual/visual123 quando a tabela
// está vazia. As senhas padrão são públicas: o aviso abaixo existe para que
// o operador as troque no primeiro acesso.
func seedUsuariosPadrao() error {
	var total int64
	if err := DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	padrao := []models.User{
		{Username: "admin", PasswordHash: models.HashPassword("admin123"), Permissao: models.PermissaoAdmin},
		{Username: "visual", PasswordHash: models.HashPassword("visual123"), Permissao: models.PermissaoVisualizador},
	}
	if err := DB.Create(&padrao).Error; err != nil {
		return fmt.Errorf("erro ao criar usuários padrão: %w", err)
	}

	log.Println("AVISO: usuários padrão criados (admin/admin123, visual/visual123); troque as senhas imediatamente")
	return nil
}

// GetDB retorna a conexão
func GetDB() *gorm.DB {
	return DB
}

// Tabelas nomes das tabelas do sistema, na ordem usada por exportação e backup.
func Tabelas() []string {
	return []string{
		models.User{}.TableName(),
		models.Lancamento{}.TableName(),
		models.Conta{}.TableName(),
		models.EventoCalendario{}.TableName(),
		models.EventoConvite{}.TableName(),
		models.Convidado{}.TableName(),
	}
}
