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

func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath != "" {
		files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
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
	other = "Autonomous pull-request triage agent"

	[app_description]
	other = "Classifies CI results for every open PR, keeps the ci-passing/ci-failing/needs-review labels in sync, maintains a single bot status comment and squash-merges PRs labeled auto-merge once CI passes."

	[run_command_usage]
	other = "Process every open pull request of the configured repository once"

	[run.starting]
	other = "PR agent running for {{.Repository}}"

	[run.found_prs]
	one = "Found {{.Count}} open PR"
	other = "Found {{.Count}} open PRs"

	[run.summary]
	other = "Processed {{.Processed}} PR(s): {{.Merged}} merged, {{.Failed}} with errors"

	[run.done]
	other = "PR agent done"

	[error.load_config]
	other = "Invalid configuration"

	[error.list_prs]
	other = "error listing open pull requests"

	[error.list_check_runs]
	other = "error listing check runs for commit {{.SHA}}"

	[error.ensure_label]
	other = "error ensuring label '{{.Label}}' exists"

	[error.add_labels]
	other = "error adding labels to PR #{{.Number}}"

	[error.remove_label]
	other = "error removing label '{{.Label}}' from PR #{{.Number}}"

	[error.list_comments]
	other = "error listing comments of PR #{{.Number}}"

	[error.create_comment]
	other = "error creating comment on PR #{{.Number}}"

	[error.update_comment]
	other = "error updating comment {{.ID}}"

	[error.merge_pr]
	other = "error merging PR #{{.Number}}"

	[merge.no_response]
	other = "no response from the platform"

	[merge.unknown_error]
	other = "unknown error"
	`
