package openai

import (
	"context"
	"fmt"

	"tosraider/internal/domain/entity"

	openai "github.com/sashabaranov/go-openai"
)

type ChatClient struct {
	client *openai.Client
	model  string
}

func NewChatClient(apiKey, model string) *ChatClient {
	return &ChatClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *ChatClient) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no content in completion response")
	}

	return resp.Choices[0].Message.Content, nil
}

// AnalyzeClause asks the model to classify one candidate clause. The reply is
// free text that should contain a JSON object; parsing it is the caller's
// problem.
func (c *ChatClient) AnalyzeClause(ctx context.Context, clauseText string) (string, error) {
	systemPrompt := "You are a legal expert analyzing Terms of Service agreements. Identify the category, risk level (low/medium/high), and enforceability of clauses."

	userPrompt := fmt.Sprintf(`Analyze this clause from Terms of Service:
"""%s"""

Return a JSON object with these fields:
- category: The type of clause (e.g., arbitration, data usage, cancellation)
- risk_level: "low", "medium", or "high" based on potential consumer harm
- enforceable: true if likely enforceable, false if likely not enforceable, null if unclear
- loophole_summary: A brief explanation of any potential loopholes or concerns

Format as valid JSON only.`, clauseText)

	return c.complete(ctx, systemPrompt, userPrompt)
}

// one prompt template per action kind, each naming the company and quoting the clause
var actionPrompts = map[entity.ActionType]string{
	entity.ActionCancel:     `Generate a professionally-worded email to cancel a service with %s based on this problematic clause: "%s". Include any specific legal rights that may apply.`,
	entity.ActionOptOut:     `Create an opt-out request email for %s referencing this clause: "%s". Include relevant legal protections if applicable.`,
	entity.ActionRefund:     `Draft a refund request email to %s based on issues with this clause: "%s". Cite consumer protection laws where relevant.`,
	entity.ActionDeleteData: `Create a formal data deletion request email for %s referencing GDPR/CCPA rights and this clause: "%s".`,
}

// GenerateActionEmail drafts the remediation email for an action kind.
func (c *ChatClient) GenerateActionEmail(ctx context.Context, actionType entity.ActionType, companyName, clauseText string) (string, error) {
	tmpl, ok := actionPrompts[actionType]
	if !ok {
		return "", fmt.Errorf("unknown action type: %s", actionType)
	}

	systemPrompt := "You are a helpful legal assistant drafting formal response letters."
	userPrompt := fmt.Sprintf(tmpl, companyName, clauseText)

	return c.complete(ctx, systemPrompt, userPrompt)
}

// GenerateLegalReferences asks for 1-3 supporting legal references.
func (c *ChatClient) GenerateLegalReferences(ctx context.Context, actionType entity.ActionType, clauseText string) (string, error) {
	systemPrompt := "You are a legal expert. Provide relevant legal references or consumer protection laws."
	userPrompt := fmt.Sprintf(`Provide 1-3 specific legal references (laws, court cases, or regulations) that would support a consumer taking %s action related to this clause: "%s"`, actionType, clauseText)

	return c.complete(ctx, systemPrompt, userPrompt)
}
