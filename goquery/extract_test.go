package goquery_test

import (
	"testing"
	"time"

	"github.com/brunesco/tenderwatch"
	"github.com/brunesco/tenderwatch/dateparse"
	"github.com/brunesco/tenderwatch/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins status resolution to 2024-06-15.
func fixedClock() time.Time {
	return time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)
}

func newExtractor(t *testing.T) *goquery.Extractor {
	t.Helper()
	return goquery.NewExtractor(dateparse.NewExtractor(), goquery.WithClock(fixedClock))
}

func htmlResponse(body string) *tenderwatch.Response {
	return &tenderwatch.Response{StatusCode: 200, ContentType: "text/html; charset=utf-8", Body: body}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts all fields from a typical detail page", func(t *testing.T) {
		t.Parallel()

		body := `<html><head><title>ignored</title></head><body>
			<h1>Travaux de réfection de la voirie</h1>
			<p>Organisme : Province Sud. Référence : AO-2024/015.</p>
			<p>Avis publié le 10/01/2024. Date limite de remise des offres : 05/03/2024.
			Le présent marché porte sur la réfection complète de la voirie communale,
			y compris le renouvellement des réseaux d'évacuation des eaux pluviales.</p>
		</body></html>`

		tender, err := newExtractor(t).Extract(htmlResponse(body), "https://example.nc/avis/15")
		require.NoError(t, err)

		assert.Equal(t, "https://example.nc/avis/15", tender.DetailURL)
		assert.Equal(t, "Travaux de réfection de la voirie", tender.Title)
		assert.Equal(t, "Province Sud", tender.Organization)
		assert.Equal(t, "AO-2024/015", tender.Reference)
		assert.Equal(t, "2024-01-10", tender.PublicationDate)
		assert.Equal(t, "2024-03-05", tender.DeadlineDate)
		assert.Equal(t, tenderwatch.StatusClosed, tender.Status)
		assert.NotEmpty(t, tender.Excerpt)
	})

	t.Run("title falls back to og:title then document title", func(t *testing.T) {
		t.Parallel()

		e := newExtractor(t)

		ogBody := `<html><head>
			<meta property="og:title" content="Appel d'offres entretien des espaces verts">
			<title>Portail</title></head><body></body></html>`
		tender, err := e.Extract(htmlResponse(ogBody), "https://example.nc/avis/1")
		require.NoError(t, err)
		assert.Equal(t, "Appel d'offres entretien des espaces verts", tender.Title)

		titleBody := `<html><head><title> Consultation  IFAP </title></head><body></body></html>`
		tender, err = e.Extract(htmlResponse(titleBody), "https://example.nc/avis/2")
		require.NoError(t, err)
		assert.Equal(t, "Consultation IFAP", tender.Title)
	})

	t.Run("empty h1 does not win over og:title", func(t *testing.T) {
		t.Parallel()

		body := `<html><head>
			<meta property="og:title" content="Avis de consultation"></head>
			<body><h1>  </h1></body></html>`

		tender, err := newExtractor(t).Extract(htmlResponse(body), "https://example.nc/avis/3")
		require.NoError(t, err)
		assert.Equal(t, "Avis de consultation", tender.Title)
	})

	t.Run("organization cascade tries labels in order", func(t *testing.T) {
		t.Parallel()

		body := `<html><body>
			<p>Pouvoir adjudicateur : Ville de Nouméa</p>
		</body></html>`

		tender, err := newExtractor(t).Extract(htmlResponse(body), "https://example.nc/avis/4")
		require.NoError(t, err)
		assert.Equal(t, "Ville de Nouméa", tender.Organization)
	})

	t.Run("PDF content type short-circuits to sentinels", func(t *testing.T) {
		t.Parallel()

		resp := &tenderwatch.Response{
			StatusCode:  200,
			ContentType: "application/pdf",
			Body:        "<html><h1>Organisme: should be ignored 15/03/2024</h1></html>",
		}

		tender, err := newExtractor(t).Extract(resp, "https://example.nc/avis/5")
		require.NoError(t, err)
		assert.Equal(t, goquery.PDFTitleSentinel, tender.Title)
		assert.Equal(t, goquery.PDFExcerptSentinel, tender.Excerpt)
		assert.Empty(t, tender.Organization)
		assert.Empty(t, tender.Reference)
		assert.Empty(t, tender.PublicationDate)
		assert.Empty(t, tender.DeadlineDate)
		assert.Equal(t, tenderwatch.StatusUnknown, tender.Status)
	})

	t.Run("pdf URL suffix triggers the same short-circuit", func(t *testing.T) {
		t.Parallel()

		tender, err := newExtractor(t).Extract(htmlResponse("<p>anything</p>"), "https://example.nc/docs/avis.PDF")
		require.NoError(t, err)
		assert.Equal(t, goquery.PDFTitleSentinel, tender.Title)
	})

	t.Run("deadline before today resolves to closed", func(t *testing.T) {
		t.Parallel()

		body := `<body><p>Date limite: 14/06/2024</p></body>`
		tender, err := newExtractor(t).Extract(htmlResponse(body), "https://example.nc/avis/6")
		require.NoError(t, err)
		assert.Equal(t, "2024-06-14", tender.DeadlineDate)
		assert.Equal(t, tenderwatch.StatusClosed, tender.Status)
	})

	t.Run("deadline on or after today resolves to open", func(t *testing.T) {
		t.Parallel()

		e := newExtractor(t)

		sameDay := `<body><p>Date limite: 15/06/2024</p></body>`
		tender, err := e.Extract(htmlResponse(sameDay), "https://example.nc/avis/7")
		require.NoError(t, err)
		assert.Equal(t, tenderwatch.StatusOpen, tender.Status)

		later := `<body><p>Date limite: 20/07/2024</p></body>`
		tender, err = e.Extract(htmlResponse(later), "https://example.nc/avis/8")
		require.NoError(t, err)
		assert.Equal(t, tenderwatch.StatusOpen, tender.Status)
	})

	t.Run("page without deadline resolves to published", func(t *testing.T) {
		t.Parallel()

		body := `<body><h1>Avis</h1><p>Aucune date ici.</p></body>`
		tender, err := newExtractor(t).Extract(htmlResponse(body), "https://example.nc/avis/9")
		require.NoError(t, err)
		assert.Empty(t, tender.DeadlineDate)
		assert.Equal(t, tenderwatch.StatusPublished, tender.Status)
	})

	t.Run("excerpt takes the first block longer than sixty characters", func(t *testing.T) {
		t.Parallel()

		body := `<body>
			<p>Trop court.</p>
			<p>Le présent appel d'offres concerne la fourniture et la pose de
			clôtures autour des installations techniques de la collectivité.</p>
		</body>`

		tender, err := newExtractor(t).Extract(htmlResponse(body), "https://example.nc/avis/10")
		require.NoError(t, err)
		assert.Contains(t, tender.Excerpt, "Le présent appel d'offres")
	})

	t.Run("excerpt is capped at six hundred characters", func(t *testing.T) {
		t.Parallel()

		long := ""
		for i := 0; i < 100; i++ {
			long += "travaux publics "
		}
		body := "<body><p>" + long + "</p></body>"

		tender, err := newExtractor(t).Extract(htmlResponse(body), "https://example.nc/avis/11")
		require.NoError(t, err)
		assert.LessOrEqual(t, len([]rune(tender.Excerpt)), 600)
		assert.NotEmpty(t, tender.Excerpt)
	})

	t.Run("nil response yields a degraded record", func(t *testing.T) {
		t.Parallel()

		tender, err := newExtractor(t).Extract(nil, "https://example.nc/avis/12")
		require.NoError(t, err)
		assert.Equal(t, "https://example.nc/avis/12", tender.DetailURL)
		assert.Empty(t, tender.Title)
		assert.Equal(t, tenderwatch.StatusUnknown, tender.Status)
	})

	t.Run("script and style text is not part of the flattened view", func(t *testing.T) {
		t.Parallel()

		body := `<body>
			<script>var organisme = "Organisme: Fausse Entite";</script>
			<p>Organisme : Mairie du Mont-Dore</p>
		</body>`

		tender, err := newExtractor(t).Extract(htmlResponse(body), "https://example.nc/avis/13")
		require.NoError(t, err)
		assert.Equal(t, "Mairie du Mont-Dore", tender.Organization)
	})
}
