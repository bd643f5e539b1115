package config

import (
	"os"
	"strings"

	apperrors "github.com/Tomas-vilte/MatePRAgent/internal/domain/errors"
)

// Variables de entorno que inyecta el workflow que dispara al agente.
const (
	EnvToken      = "GITHUB_TOKEN"
	EnvRepository = "GITHUB_REPOSITORY"
	EnvLanguage   = "MATE_PR_AGENT_LANG"
)

const defaultLang = "en"

// Config agrupa toda la configuración del agente. Se construye una sola vez
// al inicio y se pasa por referencia; no hay estado global de proceso.
type Config struct {
	Token    string
	Owner    string
	Repo     string
	Language string
}

// Load lee la configuración desde el entorno. Token y repositorio son
// precondiciones fatales: si falta cualquiera de los dos no se procesa
// ningún PR.
func Load() (*Config, error) {
	config := &Config{
		Token:    os.Getenv(EnvToken),
		Language: os.Getenv(EnvLanguage),
	}

	if config.Language == "" {
		config.Language = defaultLang
	}

	repository := os.Getenv(EnvRepository)
	if repository != "" {
		owner, repo, ok := splitRepository(repository)
		if !ok {
			return nil, apperrors.NewConfigError(EnvRepository, "debe tener la forma 'owner/repo'", nil)
		}
		config.Owner = owner
		config.Repo = repo
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Repository retorna el identificador "owner/repo" del repositorio.
func (c *Config) Repository() string {
	return c.Owner + "/" + c.Repo
}

func splitRepository(repository string) (owner, repo string, ok bool) {
	parts := strings.SplitN(repository, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func validateConfig(config *Config) error {
	if config.Token == "" {
		return apperrors.NewConfigError(EnvToken, "no está definido", nil)
	}
	if config.Owner == "" || config.Repo == "" {
		return apperrors.NewConfigError(EnvRepository, "no está definido", nil)
	}
	return nil
}
