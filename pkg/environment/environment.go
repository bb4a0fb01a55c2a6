// Package environment loads named variable sets and substitutes {{VAR}}
// placeholders in request definitions before execution.
package environment

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/restbook/restbook/pkg/request"
)

// varPattern matches {{VAR_NAME}} or {{env:VAR_NAME}}
var varPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Load reads environment variables from a YAML file. {{env:VAR}} references
// inside values are resolved against the process environment at load time.
func Load(filePath string) (map[string]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment file: %w", err)
	}

	var vars map[string]string
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("failed to parse environment YAML: %w", err)
	}

	for key, value := range vars {
		vars[key] = resolveEnvRefs(value)
	}
	return vars, nil
}

// Substitute replaces {{VAR}} placeholders with values from vars. Unknown
// variables are left untouched so partially-resolved URLs stay visible;
// {{env:VAR}} falls back to the process environment.
func Substitute(text string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		varName := strings.TrimPrefix(strings.TrimSuffix(match, "}}"), "{{")
		varName = strings.TrimSpace(varName)

		if strings.HasPrefix(varName, "env:") {
			sysVar := strings.TrimPrefix(varName, "env:")
			if val := os.Getenv(sysVar); val != "" {
				return val
			}
			return match
		}

		if val, ok := vars[varName]; ok {
			return val
		}
		return match
	})
}

// Apply returns a copy of req with variables substituted in the URL, header
// and parameter values, and a raw body. The original request is untouched;
// structured JSON bodies pass through as-is.
func Apply(req *request.Request, vars map[string]string) *request.Request {
	applied := *req
	applied.URL = Substitute(req.URL, vars)
	applied.Headers = applyFields(req.Headers, vars)
	applied.Params = applyFields(req.Params, vars)

	switch b := req.Body.(type) {
	case request.RawBody:
		applied.Body = request.RawBody(Substitute(string(b), vars))
	case request.FormBody:
		applied.Body = request.FormBody(applyFields(b, vars))
	}
	return &applied
}

func applyFields(fields []request.Field, vars map[string]string) []request.Field {
	if fields == nil {
		return nil
	}
	out := make([]request.Field, len(fields))
	for i, f := range fields {
		f.Value = Substitute(f.Value, vars)
		out[i] = f
	}
	return out
}

// resolveEnvRefs resolves {{env:VAR}} references in a string.
func resolveEnvRefs(text string) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		varName := strings.TrimPrefix(strings.TrimSuffix(match, "}}"), "{{")
		varName = strings.TrimSpace(varName)

		if strings.HasPrefix(varName, "env:") {
			sysVar := strings.TrimPrefix(varName, "env:")
			if val := os.Getenv(sysVar); val != "" {
				return val
			}
		}
		return match
	})
}
