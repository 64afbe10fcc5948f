package service

import (
	"bytes"
	"fmt"
	"html/template"
	"image/png"
	"net/http"
	"os"
	"strconv"
	"strings"

	"livrocaixa/models"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/jung-kurt/gofpdf"
)

// Página A4 paisagem em pontos; o modelo enviado é esticado para essa área e
// as posições dos textos são medidas nela, com origem no canto superior esquerdo.
const (
	LarguraPagina = 842.0
	AlturaPagina  = 595.0
)

// fatorAscendente aproxima a altura da ascendente da fonte para converter a
// posição do topo do texto em baseline, que é onde o PDF e o gg desenham.
const fatorAscendente = 0.7

// TextoConvite um dos cinco campos de texto do convite
type TextoConvite struct {
	Conteudo string  `json:"conteudo"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Tamanho  float64 `json:"tamanho"`
	Cor      string  `json:"cor"` // #rrggbb
}

// TextosPadrao as cinco posições fixas do modelo de convite:
// nome do VM, descrição da sessão, candidatos e data/hora.
func TextosPadrao() []TextoConvite {
	return []TextoConvite{
		{X: 300, Y: 240, Tamanho: 18, Cor: "#000000"},
		{X: 300, Y: 300, Tamanho: 13, Cor: "#000000"},
		{X: 350, Y: 330, Tamanho: 23, Cor: "#000000"},
		{X: 350, Y: 390, Tamanho: 23, Cor: "#000000"},
		{X: 268, Y: 465, Tamanho: 10, Cor: "#000000"},
	}
}

// BaselineY converte a coordenada Y do topo do texto na baseline usada pelas
// primitivas de desenho.
func BaselineY(yTopo, tamanho float64) float64 {
	return yTopo + tamanho*fatorAscendente
}

// ParseCorHex interpreta uma cor #rrggbb.
func ParseCorHex(cor string) (r, g, b int, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(cor), "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("cor inválida: %q", cor)
	}
	valores := [3]int{}
	for i := 0; i < 3; i++ {
		v, convErr := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("cor inválida: %q", cor)
		}
		valores[i] = int(v)
	}
	return valores[0], valores[1], valores[2], nil
}

// tipoImagem identifica o formato aceito do modelo enviado.
func tipoImagem(modelo []byte) (string, error) {
	switch http.DetectContentType(modelo) {
	case "image/png":
		return "PNG", nil
	case "image/jpeg":
		return "JPG", nil
	}
	return "", fmt.Errorf("modelo deve ser uma imagem JPG ou PNG")
}

// GerarConvitePDF desenha o modelo como fundo de uma página A4 paisagem e
// sobrepõe os textos em Times-Roman, alinhados à esquerda nas posições fixas.
func GerarConvitePDF(modelo []byte, textos []TextoConvite) ([]byte, error) {
	tipo, err := tipoImagem(modelo)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: LarguraPagina, Ht: AlturaPagina},
	})
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	opts := gofpdf.ImageOptions{ImageType: tipo, ReadDpi: false}
	pdf.RegisterImageOptionsReader("modelo", opts, bytes.NewReader(modelo))
	pdf.ImageOptions("modelo", 0, 0, LarguraPagina, AlturaPagina, false, opts, 0, "")

	for _, t := range textos {
		if strings.TrimSpace(t.Conteudo) == "" {
			continue
		}
		r, g, b, err := ParseCorHex(t.Cor)
		if err != nil {
			return nil, err
		}
		pdf.SetTextColor(r, g, b)
		pdf.SetFont("Times", "", t.Tamanho)
		pdf.Text(t.X, BaselineY(t.Y, t.Tamanho), tr(t.Conteudo))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// caminhos de fontes serifadas procuradas para a prévia; sem nenhuma delas o
// gg usa a fonte embutida, suficiente para conferir as posições
var caminhosFonteSerifada = []string{
	"/usr/share/fonts/truetype/freefont/FreeSerif.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSerif-Regular.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf",
	"/Library/Fonts/Times New Roman.ttf",
}

// GerarConvitePreview produz um PNG com os mesmos textos do PDF, para
// conferência antes da geração final.
func GerarConvitePreview(modelo []byte, textos []TextoConvite) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(modelo))
	if err != nil {
		return nil, fmt.Errorf("erro ao processar imagem: %w", err)
	}
	img = imaging.Resize(img, int(LarguraPagina), int(AlturaPagina), imaging.Lanczos)

	dc := gg.NewContextForImage(img)
	for _, t := range textos {
		if strings.TrimSpace(t.Conteudo) == "" {
			continue
		}
		if _, _, _, err := ParseCorHex(t.Cor); err != nil {
			return nil, err
		}
		carregarFonteSerifada(dc, t.Tamanho)
		dc.SetHexColor(t.Cor)
		dc.DrawString(t.Conteudo, t.X, BaselineY(t.Y, t.Tamanho))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("erro ao gerar prévia: %w", err)
	}
	return buf.Bytes(), nil
}

func carregarFonteSerifada(dc *gg.Context, tamanho float64) {
	for _, caminho := range caminhosFonteSerifada {
		if _, err := os.Stat(caminho); err != nil {
			continue
		}
		if err := dc.LoadFontFace(caminho, tamanho); err == nil {
			return
		}
	}
}

var cartaoTemplate = template.Must(template.New("cartao").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="UTF-8">
<title>Convite - {{.Evento.Titulo}}</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; background: #f4f1ea; margin: 0; padding: 40px; }
  .cartao { max-width: 640px; margin: 0 auto; background: #fff; border: 1px solid #c9c2b2;
            border-radius: 8px; padding: 48px; text-align: center; }
  h1 { font-size: 28px; margin: 0 0 8px; color: #2c2a26; }
  .detalhes { color: #555; margin: 24px 0; line-height: 1.8; }
  .convidado { font-size: 20px; margin: 16px 0; }
  .codigo { font-size: 12px; color: #999; letter-spacing: 1px; margin-top: 32px; }
</style>
</head>
<body>
<div class="cartao">
  <h1>{{.Evento.Titulo}}</h1>
  <p class="convidado">Convidado: <strong>{{.Convidado.Nome}}</strong>{{if gt .Convidado.Acompanhantes 0}} e {{.Convidado.Acompanhantes}} acompanhante(s){{end}}</p>
  <div class="detalhes">
    <div>Data: {{.Evento.DataEvento.Format "02/01/2006"}}{{if .Evento.HoraEvento}} às {{.Evento.HoraEvento}}{{end}}</div>
    {{if .Evento.Local}}<div>Local: {{.Evento.Local}}</div>{{end}}
    {{if .Evento.PrazoRSVP}}<div>Confirme sua presença até {{.Evento.PrazoRSVP.Format "02/01/2006"}}</div>{{end}}
  </div>
  {{if .LinkRSVP}}<p><a href="{{.LinkRSVP}}">Confirmar presença</a></p>{{end}}
  <p class="codigo">Código de confirmação: {{.Convidado.Codigo}}</p>
</div>
</body>
</html>
`))

// GerarCartaoHTML monta o cartão de convite avulso em HTML.
func GerarCartaoHTML(evento models.EventoConvite, convidado models.Convidado, linkRSVP string) ([]byte, error) {
	var buf bytes.Buffer
	err := cartaoTemplate.Execute(&buf, struct {
		Evento    models.EventoConvite
		Convidado models.Convidado
		LinkRSVP  string
	}{evento, convidado, linkRSVP})
	if err != nil {
		return nil, fmt.Errorf("erro ao montar cartão: %w", err)
	}
	return buf.Bytes(), nil
}
