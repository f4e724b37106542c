package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
)

// Greeting is the first bot message shown when the chat widget opens.
const Greeting = "Hello! I'm here to help you with any questions about our software. How can I assist you today?"

// FallbackMessage is shown for any assistant failure. Collaborator errors are
// never surfaced to the user beyond this fixed sentence.
const FallbackMessage = "I'm having trouble connecting right now. Please try again in a moment or browse our FAQ sections for immediate help."

// softwareContext is the fixed product description prepended to every user
// question so the model answers about Binder specifically.
const softwareContext = `You are a helpful assistant for the Binder software system. This is a comprehensive business management platform with the following features:

DEPARTMENTS AND MODULES:
1. CHD CODE CREATION - Generate codes for Buyers, Vendors, and Factories
2. CHD PO ISSUE - Purchase Order generation and management
3. SOURCING - Manage various categories including Yarn, Recycled Yarn, Fabric, DYE, Knitting, Quilting, Embroidery, Cut & Sew, Artworks & Trims, Packaging Material, Factory Supplies, Fiber, Weaving, Braided, Printing, Job Card Service, Tufting, Carpet, and Manpower
4. IMS (Inventory Management System) - Inward and Outward Store Sheets
5. OPERATIONS - Production, Merchandising, and Sampling management
6. TOTAL QUALITY MANAGEMENT - Goods Receipt Notes, Quality Formats, and Production Quality Formats
7. DESIGNING - Product Category management
8. SHIPPING - Shipped Goods and Shipping Master
9. ACCOUNTS - Accounts Tally, SBI-4034, and Cashbook management
10. HR - Leave Applications, Personal Aspirations, Advance Requests, Exit Interviews, and Attendance tracking

KEY FEATURES:
- Role-based access (Master Admin, Manager, Tenant)
- Code generation system for buyers and vendors
- Master sheet management for data tracking
- Community help center with FAQ
- Real-time chatbot support

Always provide clear, concise, and helpful answers about the software's features, navigation, and usage.`

// AssistantService answers user questions about the Binder software.
type AssistantService interface {
	Reply(ctx context.Context, userMessage string) (string, error)
}

// Assistant calls the generative-text collaborator. The API key is held
// server-side; handlers only ever see the request/response contract.
type Assistant struct {
	client *openai.Client
}

// NewAssistant constructs an Assistant with the given API key.
func NewAssistant(apiKey string) *Assistant {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Assistant{client: &client}
}

// assistantReply is the structured output contract for a chat answer.
type assistantReply struct {
	Reply string `json:"reply" jsonschema_description:"The answer shown to the user, plain text with optional **bold** emphasis"`
}

// Reply sends the fixed software context plus the user's message and returns
// the model's answer verbatim.
func (a *Assistant) Reply(ctx context.Context, userMessage string) (string, error) {
	prompt := fmt.Sprintf("%s\n\nUser Question: %s\n\nProvide a helpful response about the Binder software. Keep responses concise and well-structured.",
		softwareContext, userMessage)

	schemaJSON, err := json.Marshal(generateSchema())
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return "", fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "assistant_reply",
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt("A help-desk answer about the Binder software"),
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return "", fmt.Errorf("empty response content")
	}

	var reply assistantReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return "", fmt.Errorf("failed to parse completion: %w", err)
	}
	if reply.Reply == "" {
		return "", fmt.Errorf("blank reply")
	}
	return reply.Reply, nil
}

func generateSchema() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v assistantReply
	return reflector.Reflect(v)
}

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// FormatBold converts markdown-style **bold** spans to <strong> emphasis.
// This is the only markdown the chat surface renders.
func FormatBold(text string) string {
	return boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
}
