package signature

// Defaults returns the built-in signature set: local LLM runtimes and calls
// to well-known hosted model API endpoints. Registry order is match order.
func Defaults() []Signature {
	return []Signature{
		{
			Name:        "ollama_local_llm",
			Description: "Local LLM runtime (Ollama)",
			MatchType:   MatchProcessName,
			Pattern:     "ollama",
			Risk:        RiskMedium,
			Category:    "local_llm",
		},
		{
			Name:        "open_webui_frontend",
			Description: "Open WebUI interface",
			MatchType:   MatchProcessName,
			Pattern:     "open-webui",
			Risk:        RiskMedium,
			Category:    "local_llm_ui",
		},
		{
			Name:        "openai_api_call",
			Description: "Process calling OpenAI API endpoint",
			MatchType:   MatchCmdline,
			Pattern:     "api.openai.com",
			Risk:        RiskHigh,
			Category:    "remote_llm",
		},
		{
			Name:        "anthropic_api_call",
			Description: "Process calling Anthropic API endpoint",
			MatchType:   MatchCmdline,
			Pattern:     "api.anthropic.com",
			Risk:        RiskHigh,
			Category:    "remote_llm",
		},
		{
			Name:        "google_gemini_api_call",
			Description: "Process calling Google Gemini / generative AI endpoint",
			MatchType:   MatchCmdline,
			Pattern:     "generativelanguage.googleapis.com",
			Risk:        RiskHigh,
			Category:    "remote_llm",
		},
		{
			Name:        "generic_llm_keyword",
			Description: "Process with generic LLM-related keyword in command line",
			MatchType:   MatchCmdline,
			Pattern:     "llm",
			Risk:        RiskLow,
			Category:    "generic_ai",
		},
	}
}
