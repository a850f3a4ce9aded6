package ideas

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// Fixed messages returned in place of a suggestion when the service
// can't be used. The caller treats them like any other suggestion text.
const (
	NotConfiguredMessage   = "Chave de API não configurada. Por favor, configure a API Key para usar a IA."
	ConnectionErrorMessage = "Erro de conexão com a IA. Tente novamente mais tarde."
	EmptyResponseMessage   = "Não foi possível gerar ideias no momento."
)

const generationModel = "gemini-2.5-flash"

// Generator produces party-activity suggestions through the Gemini API.
// With no API key configured it answers immediately with a fixed
// message and never touches the network.
type Generator struct {
	client *genai.Client
}

// NewGenerator builds a Generator. An empty apiKey yields an
// unconfigured Generator, which is valid to use.
func NewGenerator(ctx context.Context, apiKey string) (*Generator, error) {
	if apiKey == "" {
		return &Generator{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating genai client: %w", err)
	}

	return &Generator{client: client}, nil
}

// PartyIdeas asks for three activity suggestions fitting the theme and
// age. The result is always printable text: failures come back as a
// fallback message, never as an error.
func (g *Generator) PartyIdeas(ctx context.Context, theme string, age int) string {
	if g.client == nil {
		return NotConfiguredMessage
	}

	prompt := fmt.Sprintf(`Atue como um especialista em recreação infantil.
Eu tenho uma festa com o tema: %q para crianças de %d anos.
Sugira 3 brincadeiras criativas, seguras e originais que se encaixem nesse tema e idade.
Para cada brincadeira, dê um nome e uma breve explicação de como funciona.
Formate a resposta como uma lista simples e direta.`, theme, age)

	resp, err := g.client.Models.GenerateContent(ctx, generationModel, genai.Text(prompt), nil)
	if err != nil {
		log.Warn().Err(err).Msg("error generating party ideas")

		return ConnectionErrorMessage
	}

	if text := resp.Text(); text != "" {
		return text
	}

	return EmptyResponseMessage
}
