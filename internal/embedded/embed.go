// Package embedded ships the report schema definitions inside the binary so
// a reconciliation run needs no configuration files on disk.
package embedded

import (
	"embed"
	"path"

	"github.com/fitnz/fieldcheck/pkg/errors"
	"github.com/fitnz/fieldcheck/pkg/validate"
)

//go:embed schemas/*.yaml
var schemaFS embed.FS

// Schema returns the embedded validation schema for the named report.
func Schema(report string) (validate.Schema, error) {
	data, err := schemaFS.ReadFile(path.Join("schemas", report+".yaml"))
	if err != nil {
		return validate.Schema{}, errors.NewNotFoundError("report schema", report)
	}
	return validate.ParseSchema(data)
}

// Reports lists the report names with embedded schemas.
func Reports() []string {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		names = append(names, name[:len(name)-len(path.Ext(name))])
	}
	return names
}
