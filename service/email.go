package service

import (
	"fmt"

	"livrocaixa/config"
	"livrocaixa/models"

	"gopkg.in/gomail.v2"
)

// EmailService envio de convites por e-mail
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService cria o serviço de e-mail
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// EnviarConvite envia ao convidado o link público de confirmação de presença.
func (s *EmailService) EnviarConvite(convidado models.Convidado, evento models.EventoConvite, linkRSVP string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("serviço de e-mail desativado; habilite email.enabled na configuração")
	}
	if convidado.Email == "" {
		return fmt.Errorf("convidado %q não tem e-mail cadastrado", convidado.Nome)
	}

	assunto := fmt.Sprintf("Convite: %s", evento.Titulo)
	corpo := s.corpoConvite(convidado, evento, linkRSVP)
	return s.enviar(convidado.Email, assunto, corpo)
}

func (s *EmailService) corpoConvite(convidado models.Convidado, evento models.EventoConvite, linkRSVP string) string {
	quando := evento.DataEvento.Format("02/01/2006")
	if evento.HoraEvento != "" {
		quando += " às " + evento.HoraEvento
	}
	prazo := ""
	if evento.PrazoRSVP != nil {
		prazo = fmt.Sprintf(`<p>Por favor, confirme sua presença até <strong>%s</strong>.</p>`,
			evento.PrazoRSVP.Format("02/01/2006"))
	}
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Georgia, serif; background: #f4f1ea; padding: 24px;">
  <div style="max-width: 600px; margin: 0 auto; background: #fff; border-radius: 8px; padding: 32px;">
    <h1 style="margin-top: 0;">%s</h1>
    <p>Prezado(a) <strong>%s</strong>,</p>
    <p>Temos a honra de convidá-lo(a) para <strong>%s</strong>, em %s%s.</p>
    %s
    <p style="text-align: center; margin: 28px 0;">
      <a href="%s" style="background: #1f77b4; color: #fff; padding: 12px 32px; border-radius: 6px; text-decoration: none;">Confirmar presença</a>
    </p>
    <p style="color: #888; font-size: 12px;">Se o botão não funcionar, copie o endereço: %s</p>
  </div>
</body>
</html>`,
		evento.Titulo, convidado.Nome, evento.Titulo, quando, localOuVazio(evento.Local), prazo, linkRSVP, linkRSVP)
}

func localOuVazio(local string) string {
	if local == "" {
		return ""
	}
	return ", no " + local
}

func (s *EmailService) enviar(para, assunto, corpoHTML string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", para)
	m.SetHeader("Subject", assunto)
	m.SetBody("text/html", corpoHTML)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar e-mail: %w", err)
	}
	return nil
}
