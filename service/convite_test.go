package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"livrocaixa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modeloPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 80, 60))
	for x := 0; x < 80; x++ {
		for y := 0; y < 60; y++ {
			img.Set(x, y, color.RGBA{R: 240, G: 236, B: 220, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestBaselineY(t *testing.T) {
	// topo em 240 com fonte 18: baseline desloca 0.7 do corpo
	assert.InDelta(t, 252.6, BaselineY(240, 18), 0.001)
	assert.InDelta(t, 472.0, BaselineY(465, 10), 0.001)
	assert.Equal(t, 0.0, BaselineY(0, 0))
}

func TestParseCorHex(t *testing.T) {
	r, g, b, err := ParseCorHex("#1f77b4")
	require.NoError(t, err)
	assert.Equal(t, []int{31, 119, 180}, []int{r, g, b})

	r, g, b, err = ParseCorHex("000000")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})

	_, _, _, err = ParseCorHex("#fff")
	assert.Error(t, err)
	_, _, _, err = ParseCorHex("#zzzzzz")
	assert.Error(t, err)
	_, _, _, err = ParseCorHex("")
	assert.Error(t, err)
}

func TestTextosPadrao(t *testing.T) {
	textos := TextosPadrao()
	require.Len(t, textos, 5)
	assert.Equal(t, 300.0, textos[0].X)
	assert.Equal(t, 240.0, textos[0].Y)
	assert.Equal(t, 18.0, textos[0].Tamanho)
	assert.Equal(t, 10.0, textos[4].Tamanho)
}

func TestGerarConvitePDF(t *testing.T) {
	textos := TextosPadrao()
	textos[0].Conteudo = "José da Silva"
	textos[4].Conteudo = "20/09/2026 às 20h"

	pdf, err := GerarConvitePDF(modeloPNG(t), textos)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")), "saída deve ser um PDF")
	assert.Greater(t, len(pdf), 500)
}

func TestGerarConvitePDFModeloInvalido(t *testing.T) {
	_, err := GerarConvitePDF([]byte("não é imagem"), TextosPadrao())
	assert.Error(t, err)
}

func TestGerarConvitePDFCorInvalida(t *testing.T) {
	textos := TextosPadrao()
	textos[0].Conteudo = "x"
	textos[0].Cor = "azul"
	_, err := GerarConvitePDF(modeloPNG(t), textos)
	assert.Error(t, err)
}

func TestGerarConvitePreview(t *testing.T) {
	textos := TextosPadrao()
	textos[0].Conteudo = "Prévia"

	out, err := GerarConvitePreview(modeloPNG(t), textos)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, int(LarguraPagina), img.Bounds().Dx())
	assert.Equal(t, int(AlturaPagina), img.Bounds().Dy())
}

func TestGerarCartaoHTML(t *testing.T) {
	prazo := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	evento := models.EventoConvite{
		Titulo:     "Sessão Magna",
		DataEvento: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		HoraEvento: "20:00",
		Local:      "Sede da loja",
		PrazoRSVP:  &prazo,
	}
	convidado := models.Convidado{
		Nome:          "João <script>alert(1)</script>",
		Acompanhantes: 2,
		Codigo:        "abc-123",
	}

	out, err := GerarCartaoHTML(evento, convidado, "https://exemplo/rsvp/abc-123")
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "Sessão Magna")
	assert.Contains(t, html, "20/09/2026")
	assert.Contains(t, html, "10/09/2026")
	assert.Contains(t, html, "2 acompanhante(s)")
	assert.Contains(t, html, "abc-123")
	// html/template escapa conteúdo do convidado
	assert.NotContains(t, html, "<script>")
}
