package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations crea el bundle de traducciones con los mensajes en inglés
// embebidos por defecto y los locales adicionales encontrados en localesPath.
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Sync a release branch into develop via pull request"

	[app_description]
	other = "mate-sync compares the release branch against develop and opens a pull request summarizing the missing commits, optionally with an AI-generated risk analysis"

	[help_command_usage]
	other = "Shows help for the commands"

	[sync_command_usage]
	other = "Run the branch synchronization pipeline"

	[doctor_command_usage]
	other = "Validate the loaded configuration and provider availability"

	[flag.dry_run_usage]
	other = "Print the pull request instead of creating it"

	[flag.enable_ai_usage]
	other = "Append an AI risk analysis to the report"

	[ui.guard_check]
	other = "🔍 Checking for an existing pull request..."

	[ui.comparing]
	other = "🔍 Comparing branches: {{.Base}} ← {{.Head}}"

	[ui.commits_found]
	one = "✅ Found {{.Count}} missing commit"
	other = "✅ Found {{.Count}} missing commits"

	[ui.ai_analyzing]
	other = "🤖 Generating AI risk analysis..."

	[ui.publishing]
	other = "🚀 Creating the pull request..."

	[sync.pr_exists]
	other = "⚠️ PR already exists. Exiting."

	[sync.up_to_date]
	other = "✅ No missing commits found."

	[sync.dry_run_header]
	other = "🧪 DRY-RUN MODE"

	[sync.pr_created]
	other = "✅ PR created: {{.URL}}"

	[warning.ai_unavailable]
	other = "⚠️ AI disabled or provider unavailable"

	[error.sync_failed]
	other = "Branch synchronization failed"

	[error.missing_api_key]
	other = "API key for {{.Provider}} is not configured"

	[error.ai_client]
	other = "Error creating the AI client: {{.Error}}"

	[error.find_pr]
	other = "Error listing open pull requests for {{.Head}} → {{.Base}}"

	[error.compare]
	other = "Error comparing {{.Base}}...{{.Head}}"

	[error.create_pr]
	other = "Error creating pull request {{.Head}} → {{.Base}}"

	[doctor.checking]
	other = "Checking mate-sync configuration..."

	[doctor.vcs_ok]
	other = "✅ VCS: {{.Provider}} ({{.Owner}}/{{.Repo}})"

	[doctor.branches]
	other = "✅ Branches: {{.Head}} → {{.Base}}"

	[doctor.ai_disabled]
	other = "ℹ️ AI: disabled"

	[doctor.ai_ok]
	other = "✅ AI: {{.Provider}} ({{.Model}})"

	[doctor.ai_misconfigured]
	other = "⚠️ AI: {{.Provider}} is not usable: {{.Reason}}"

	[doctor.done]
	other = "Configuration looks good"
	`
