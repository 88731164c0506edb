package yamlenv

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Env[T] — значение конфигурации из yaml с подстановкой переменных окружения.
// Строка вида "${PG_CONN}" раскрывается через os.ExpandEnv перед разбором.
type Env[T any] struct {
	Value T
}

func (e *Env[T]) UnmarshalYAML(node *yaml.Node) error {
	raw := os.ExpandEnv(node.Value)

	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("yamlenv: int value %q: %w", raw, err)
		}
		*p = n
	case *int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("yamlenv: int64 value %q: %w", raw, err)
		}
		*p = n
	case *bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("yamlenv: bool value %q: %w", raw, err)
		}
		*p = b
	default:
		if err := node.Decode(&out); err != nil {
			return fmt.Errorf("yamlenv: decode: %w", err)
		}
	}

	e.Value = out

	return nil
}
