package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config configuração da aplicação
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
	Backup   BackupConfig   `mapstructure:"backup"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// ServerConfig servidor HTTP
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig banco MySQL gerenciado (TLS obrigatório no provedor)
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
	TLS      bool   `mapstructure:"tls"`
}

// JWTConfig tokens de sessão
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig envio de convites por e-mail
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// BackupConfig backup agendado (ZIP de CSVs + dump estrutural)
type BackupConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"` // expressão cron
	Dir      string `mapstructure:"dir"`
}

// SeedConfig criação dos usuários padrão quando a base está vazia
type SeedConfig struct {
	DefaultUsers bool `mapstructure:"default_users"`
}

var (
	// GlobalConfig instância global
	GlobalConfig *Config
)

// LoadConfig carrega a configuração.
// Prioridade: variáveis de ambiente > arquivo externo > padrão embutido.
// configPath: caminho opcional de um arquivo externo.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. configuração padrão embutida
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("erro ao ler configuração embutida: %w", err)
	}

	// 2. arquivo externo (opcional, sobrepõe o padrão)
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("aviso: não foi possível ler %s: %v", configPath, err)
		} else {
			log.Printf("configuração externa aplicada: %s", configPath)
		}
	} else {
		externo := viper.New()
		externo.SetConfigName("config")
		externo.SetConfigType("yaml")
		externo.AddConfigPath(".")
		externo.AddConfigPath("./config")
		externo.AddConfigPath("/etc/livrocaixa")
		externo.AddConfigPath("$HOME/.livrocaixa")

		if err := externo.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externo.AllSettings()); err != nil {
				log.Printf("aviso: erro ao mesclar configuração externa: %v", err)
			} else {
				log.Printf("configuração externa aplicada: %s", externo.ConfigFileUsed())
			}
		}
	}

	// 3. variáveis de ambiente (LIVROCAIXA_DATABASE_PASSWORD etc.)
	v.SetEnvPrefix("LIVROCAIXA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("erro ao interpretar configuração: %w", err)
	}

	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour

	GlobalConfig = &cfg

	return &cfg, nil
}

// Validate exige os segredos obrigatórios. Sem senha de banco o processo
// não sobe: não existe modo demonstração que mascare má configuração.
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("database.password não definido (use LIVROCAIXA_DATABASE_PASSWORD)")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret não definido (use LIVROCAIXA_JWT_SECRET)")
	}
	return nil
}

// GetConfig retorna a configuração global
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("configuração não inicializada; chame LoadConfig antes")
	}
	return GlobalConfig
}

// PrintConfig registra a configuração atual (sem segredos)
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("configuração atual:")
	log.Printf("  servidor: %s (modo: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  banco: %s@%s:%s/%s (tls: %v)",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName,
		GlobalConfig.Database.TLS)
	log.Printf("  e-mail: %v | backup agendado: %v", GlobalConfig.Email.Enabled, GlobalConfig.Backup.Enabled)
}
