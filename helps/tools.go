package helps

// Tool describes a method accepted by the server.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

const (
	MethodInject = "hermes_inject"
	MethodHelp   = "hermes_help"
)

// Tools returns descriptors keyed by method name.
func Tools() map[string]Tool {
	return map[string]Tool{
		MethodInject: {
			Name:        "Hermes Auto-Inject Context",
			Description: "Inject Hermes language help, syntax, and examples",
			InputSchema: objectSchema("query", "User message or topic", []string{"query"}),
		},
		MethodHelp: {
			Name:        "Hermes Help",
			Description: "Get Hermes language reference and usage examples",
			InputSchema: objectSchema("topic", "Specific topic (e.g., 'sangam skin', 'transpiler')", []string{}),
		},
	}
}

func objectSchema(property, description string, required []string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			property: map[string]any{
				"type":        "string",
				"description": description,
			},
		},
		"required": required,
	}
}
