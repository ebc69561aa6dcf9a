package feed

// Source describes one RSS feed to pull from. Encoding marks feeds known in
// advance to publish something other than UTF-8.
type Source struct {
	Name     string
	URL      string
	Encoding string
}

// DefaultCategory is used whenever the requested category is unknown.
const DefaultCategory = "geral"

// Feeds maps a news category to the Brazilian sources polled for it.
var Feeds = map[string][]Source{
	"geral": {
		{Name: "G1", URL: "https://g1.globo.com/rss/g1/"},
		{Name: "Metrópoles", URL: "https://www.metropoles.com/feed"},
		{Name: "Oeste", URL: "https://revistaoeste.com/feed/"},
		{Name: "Folha", URL: "https://feeds.folha.uol.com.br/emcimadahora/rss091.xml", Encoding: "latin1"},
	},
	"politica": {
		{Name: "G1 Política", URL: "https://g1.globo.com/rss/g1/politica/"},
		{Name: "Metrópoles", URL: "https://www.metropoles.com/brasil/politica-brasil/feed"},
		{Name: "Oeste", URL: "https://revistaoeste.com/politica/feed/"},
		{Name: "Folha Poder", URL: "https://feeds.folha.uol.com.br/poder/rss091.xml", Encoding: "latin1"},
		{Name: "Senado", URL: "https://www12.senado.leg.br/noticias/feed"},
	},
	"economia": {
		{Name: "G1 Economia", URL: "https://g1.globo.com/rss/g1/economia/"},
		{Name: "Metrópoles", URL: "https://www.metropoles.com/negocios/feed"},
		{Name: "Oeste", URL: "https://revistaoeste.com/economia/feed/"},
		{Name: "Folha Mercado", URL: "https://feeds.folha.uol.com.br/mercado/rss091.xml", Encoding: "latin1"},
	},
	"esportes": {
		{Name: "ge", URL: "https://ge.globo.com/rss/ge/"},
		{Name: "Metrópoles Esportes", URL: "https://www.metropoles.com/esportes/feed"},
		{Name: "Folha Esporte", URL: "https://feeds.folha.uol.com.br/esporte/rss091.xml", Encoding: "latin1"},
		{Name: "Lance", URL: "https://www.lance.com.br/rss.xml"},
		{Name: "UOL Esporte", URL: "https://rss.uol.com.br/feed/esporte.xml"},
	},
	"saude": {
		{Name: "G1 Saúde", URL: "https://g1.globo.com/rss/g1/ciencia-e-saude/"},
		{Name: "Metrópoles Saúde", URL: "https://www.metropoles.com/saude/feed"},
		{Name: "Folha Saúde", URL: "https://feeds.folha.uol.com.br/equilibrioesaude/rss091.xml", Encoding: "latin1"},
	},
}

// SourcesFor resolves a category against feeds, falling back to the default
// category when the key is unrecognized. The resolved key is returned so
// callers can echo it back to the client.
func SourcesFor(feeds map[string][]Source, category string) ([]Source, string) {
	if sources, ok := feeds[category]; ok {
		return sources, category
	}
	return feeds[DefaultCategory], DefaultCategory
}
