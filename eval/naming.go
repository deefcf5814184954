package eval

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// Namer derives a name from a (partial) command chain.
type Namer func(chain []string) string

const (
	methodBaseName = "Exec"
	typeBaseName   = "Evaluator"
	nameSeparator  = "_"
)

// MethodName is the default method namer: Exec for the root and Exec_print_tree
// for the chain [print tree].
func MethodName(chain []string) string {
	return joinName(methodBaseName, chain)
}

// TypeName is the default type namer used by auto-resolution: Evaluator for the
// root and Evaluator_print for the chain [print].
func TypeName(chain []string) string {
	return joinName(typeBaseName, chain)
}

// CamelMethodNamer names methods ExecPrintTree instead of Exec_print_tree. Commands
// containing dashes (dry-run) need it, as they cannot appear in a Go identifier.
func CamelMethodNamer(chain []string) string {
	return camelName(methodBaseName, chain)
}

// CamelTypeNamer is the CamelMethodNamer counterpart for type names.
func CamelTypeNamer(chain []string) string {
	return camelName(typeBaseName, chain)
}

func joinName(base string, chain []string) string {
	if len(chain) == 0 {
		return base
	}

	return base + nameSeparator + strings.Join(chain, nameSeparator)
}

func camelName(base string, chain []string) string {
	var sb strings.Builder
	sb.WriteString(base)
	for _, segment := range chain {
		sb.WriteString(strcase.ToCamel(segment))
	}

	return sb.String()
}
