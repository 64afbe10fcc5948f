package service

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"livrocaixa/config"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// BackupService backup agendado: ZIP completo de CSVs + dump estrutural SQL
type BackupService struct {
	cfg     *config.BackupConfig
	db      *gorm.DB
	tabelas []string
	cron    *cron.Cron
}

// NewBackupService cria o serviço de backup
func NewBackupService(cfg *config.BackupConfig, db *gorm.DB, tabelas []string) *BackupService {
	return &BackupService{cfg: cfg, db: db, tabelas: tabelas}
}

// Start agenda o backup conforme backup.schedule. Sem efeito quando desativado.
func (s *BackupService) Start() error {
	if !s.cfg.Enabled {
		return nil
	}
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		if err := s.Executar(); err != nil {
			log.Printf("backup agendado falhou: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("expressão de agendamento inválida %q: %w", s.cfg.Schedule, err)
	}
	s.cron.Start()
	log.Printf("backup agendado: %q em %s", s.cfg.Schedule, s.cfg.Dir)
	return nil
}

// Stop interrompe o agendamento.
func (s *BackupService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Executar grava em backup.dir o ZIP completo e o dump estrutural.
func (s *BackupService) Executar() error {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de backup: %w", err)
	}
	agora := time.Now()

	zipBytes, err := GerarZIPCompleto(s.db)
	if err != nil {
		return err
	}
	nomeZip := filepath.Join(s.cfg.Dir,
		fmt.Sprintf("livro_caixa_completo_%s.zip", agora.Format("20060102_150405")))
	if err := os.WriteFile(nomeZip, zipBytes, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", nomeZip, err)
	}

	dump, err := DumpEstrutura(s.db, s.tabelas)
	if err != nil {
		return err
	}
	nomeSQL := filepath.Join(s.cfg.Dir,
		fmt.Sprintf("estrutura_%s.sql", agora.Format("20060102_150405")))
	if err := os.WriteFile(nomeSQL, dump, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", nomeSQL, err)
	}

	log.Printf("backup gravado: %s, %s", nomeZip, nomeSQL)
	return nil
}

// DumpEstrutura reúne o SHOW CREATE TABLE de cada tabela num script SQL de
// backup estrutural.
func DumpEstrutura(db *gorm.DB, tabelas []string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "-- Livro Caixa: estrutura do banco\n-- Gerado em %s\n\n",
		time.Now().Format("02/01/2006 15:04:05"))

	for _, tabela := range tabelas {
		var nome, ddl string
		row := db.Raw(fmt.Sprintf("SHOW CREATE TABLE `%s`", tabela)).Row()
		if err := row.Scan(&nome, &ddl); err != nil {
			return nil, fmt.Errorf("erro ao exportar estrutura de %s: %w", tabela, err)
		}
		fmt.Fprintf(&buf, "-- %s\n%s;\n\n", nome, ddl)
	}
	return buf.Bytes(), nil
}
