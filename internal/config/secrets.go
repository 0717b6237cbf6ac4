package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LLMAPIKeyField is the secrets document key holding the LLM API key.
const LLMAPIKeyField = "llm_api_key"

// Secrets is a validated secrets document.
type Secrets struct {
	LLMAPIKey string `yaml:"llm_api_key" validate:"required"`
}

// ValidateSecrets loads the secrets document at path and returns the LLM API key.
func ValidateSecrets(path string) (string, error) {
	root, err := loadDocument(path)
	if err != nil {
		return "", err
	}

	node, ok := lookup(root, LLMAPIKeyField)
	if !ok {
		return "", schemaError(path, LLMAPIKeyField, "non-empty string",
			fmt.Sprintf("missing secret '%s'", LLMAPIKeyField))
	}
	if node.Kind != yaml.ScalarNode {
		return "", schemaError(path, LLMAPIKeyField, "non-empty string",
			fmt.Sprintf("secret '%s' must be a string", LLMAPIKeyField))
	}

	secrets := Secrets{}
	if !isNull(node) {
		secrets.LLMAPIKey = node.Value
	}
	if err := validate.Struct(secrets); err != nil {
		return "", schemaError(path, LLMAPIKeyField, "non-empty string",
			fmt.Sprintf("secret '%s' cannot be empty", LLMAPIKeyField))
	}
	return secrets.LLMAPIKey, nil
}
