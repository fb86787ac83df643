package config

type AI string

const (
	AIOpenAI AI = "openai"
	AIGemini AI = "gemini"
)

type Model string

const (
	ModelGPTV4o     Model = "gpt-4o"
	ModelGPTV4oMini Model = "gpt-4o-mini"

	ModelGeminiV25Pro   Model = "gemini-2.5-pro"
	ModelGeminiV25Flash Model = "gemini-2.5-flash"
)

func SupportedAIs() []AI {
	return []AI{
		AIOpenAI,
		AIGemini,
	}
}

func ModelsForAI(ai AI) []Model {
	switch ai {
	case AIOpenAI:
		return []Model{
			ModelGPTV4oMini,
			ModelGPTV4o,
		}
	case AIGemini:
		return []Model{
			ModelGeminiV25Flash,
			ModelGeminiV25Pro,
		}
	default:
		return []Model{}
	}
}

func DefaultModelForAI(ai AI) Model {
	models := ModelsForAI(ai)
	if len(models) == 0 {
		return ""
	}
	return models[0]
}
