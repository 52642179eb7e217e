package google

import (
	"context"

	"github.com/identitykit/aadhaar-extract/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config: cfg,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	client, err := c.newClient(ctx)

	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{}

	if system := convertSystem(messages); system != nil {
		config.SystemInstruction = system
	}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	if options.Temperature != nil {
		config.Temperature = options.Temperature
	}

	contents := convertContents(messages)

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, config)

	if err != nil {
		return nil, err
	}

	return &provider.Completion{
		ID:    uuid.NewString(),
		Model: c.model,

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: []provider.Content{provider.TextContent(resp.Text())},
		},

		Usage: toUsage(resp.UsageMetadata),
	}, nil
}

func convertSystem(messages []provider.Message) *genai.Content {
	var parts []*genai.Part

	for _, m := range messages {
		if m.Role != provider.MessageRoleSystem {
			continue
		}

		for _, c := range m.Content {
			if c.Text != "" {
				parts = append(parts, genai.NewPartFromText(c.Text))
			}
		}
	}

	if len(parts) == 0 {
		return nil
	}

	return &genai.Content{
		Parts: parts,
	}
}

func convertContents(messages []provider.Message) []*genai.Content {
	var contents []*genai.Content

	for _, m := range messages {
		if m.Role != provider.MessageRoleUser {
			continue
		}

		var parts []*genai.Part

		for _, c := range m.Content {
			if c.Text != "" {
				parts = append(parts, genai.NewPartFromText(c.Text))
			}

			if c.File != nil {
				parts = append(parts, &genai.Part{
					InlineData: &genai.Blob{
						MIMEType: c.File.ContentType,
						Data:     c.File.Content,
					},
				})
			}
		}

		if len(parts) == 0 {
			continue
		}

		contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
	}

	return contents
}

func toUsage(metadata *genai.GenerateContentResponseUsageMetadata) *provider.Usage {
	if metadata == nil {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(metadata.PromptTokenCount),
		OutputTokens: int(metadata.CandidatesTokenCount),
	}
}
