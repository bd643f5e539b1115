package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations(t *testing.T) {
	t.Run("should resolve a default message with template data", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		msg := trans.GetMessage("run.starting", 0, map[string]interface{}{
			"Repository": "octocat/hello-world",
		})

		assert.Equal(t, "PR agent running for octocat/hello-world", msg)
	})

	t.Run("should pluralize the PR count", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		one := trans.GetMessage("run.found_prs", 1, map[string]interface{}{"Count": 1})
		many := trans.GetMessage("run.found_prs", 3, map[string]interface{}{"Count": 3})

		assert.Equal(t, "Found 1 open PR", one)
		assert.Equal(t, "Found 3 open PRs", many)
	})

	t.Run("should report a missing message id", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		msg := trans.GetMessage("no_such_key", 0, nil)

		assert.Contains(t, msg, "Translation missing")
	})

	t.Run("should reject an unsupported language", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		assert.Error(t, trans.SetLanguage("xx"))
	})
}
