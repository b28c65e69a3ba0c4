package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Source supplies values for ${VAR} references in declarations.
// The loader never touches the process environment directly.
type Source interface {
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a lookup function to Source
type SourceFunc func(key string) (string, bool)

func (f SourceFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// EnvSource reads the process environment
func EnvSource() Source {
	return SourceFunc(os.LookupEnv)
}

// MapSource serves fixed values
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// DotenvSource reads the given dotenv files without exporting them into the
// process environment. Files that do not exist are skipped; later files
// override earlier ones.
func DotenvSource(paths ...string) (MapSource, error) {
	values := make(MapSource)
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		env, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		for k, v := range env {
			values[k] = v
		}
	}
	return values, nil
}

// Layered returns a Source that consults each source in order; the first hit wins
func Layered(sources ...Source) Source {
	return SourceFunc(func(key string) (string, bool) {
		for _, s := range sources {
			if s == nil {
				continue
			}
			if v, ok := s.Lookup(key); ok {
				return v, true
			}
		}
		return "", false
	})
}
