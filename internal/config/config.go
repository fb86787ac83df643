package config

import (
	"os"
	"strings"

	domainErrors "github.com/Tomas-vilte/MateSync/internal/domain/errors"
)

type (
	// Config es la configuración inmutable del proceso. Se carga una sola vez
	// desde el entorno al inicio y se pasa explícitamente a cada componente.
	Config struct {
		VCS      VCSConfig
		Sync     SyncConfig
		AI       AIConfig
		Language string
	}

	// VCSConfig contiene la identidad y credencial del proveedor VCS.
	VCSConfig struct {
		Provider string
		Owner    string
		Repo     string
		Token    string
	}

	// SyncConfig contiene las ramas a sincronizar y los flags del pipeline.
	SyncConfig struct {
		BaseBranch string
		HeadBranch string
		DryRun     bool
	}

	// AIConfig contiene el proveedor de IA activo y sus credenciales.
	AIConfig struct {
		Enabled        bool
		ActiveProvider AI
		Model          Model
		APIKeys        map[AI]string
	}
)

const (
	defaultLang       = "en"
	defaultBaseBranch = "develop"
	defaultHeadBranch = "release123"
)

// LoadConfig construye la configuración desde las variables de entorno.
// Falla rápido si falta alguna variable requerida.
func LoadConfig() (*Config, error) {
	var missing []string
	required := func(key string) string {
		v := os.Getenv(key)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg := &Config{
		VCS: VCSConfig{
			Provider: "github",
			Owner:    required("REPO_OWNER"),
			Repo:     required("REPO_NAME"),
			Token:    required("GITHUB_TOKEN"),
		},
		Sync: SyncConfig{
			BaseBranch: envOr("BASE_BRANCH", defaultBaseBranch),
			HeadBranch: envOr("HEAD_BRANCH", defaultHeadBranch),
			DryRun:     envBool("DRY_RUN"),
		},
		AI: AIConfig{
			Enabled:        envBool("ENABLE_AI"),
			ActiveProvider: AI(envOr("AI_PROVIDER", string(AIOpenAI))),
			APIKeys: map[AI]string{
				AIOpenAI: os.Getenv("OPENAI_API_KEY"),
				AIGemini: os.Getenv("GEMINI_API_KEY"),
			},
		},
		Language: envOr("MATE_SYNC_LANG", defaultLang),
	}

	if len(missing) > 0 {
		return nil, domainErrors.NewConfigError(
			strings.Join(missing, ", "),
			"variables de entorno requeridas no definidas",
			nil,
		)
	}

	if cfg.AI.Enabled && !isSupportedAI(cfg.AI.ActiveProvider) {
		return nil, domainErrors.NewConfigError(
			"AI_PROVIDER",
			"proveedor de IA no soportado: "+string(cfg.AI.ActiveProvider),
			nil,
		)
	}

	cfg.AI.Model = Model(envOr("AI_MODEL", string(DefaultModelForAI(cfg.AI.ActiveProvider))))

	return cfg, nil
}

// APIKeyForActiveProvider retorna la API key del proveedor de IA activo.
func (c *Config) APIKeyForActiveProvider() string {
	return c.AI.APIKeys[c.AI.ActiveProvider]
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	return strings.EqualFold(os.Getenv(key), "true")
}

func isSupportedAI(ai AI) bool {
	for _, supported := range SupportedAIs() {
		if ai == supported {
			return true
		}
	}
	return false
}
