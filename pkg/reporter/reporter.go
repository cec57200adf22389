package reporter

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"fixturegen/pkg/utils"
	"fixturegen/pkg/writer"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Reporter struct {
	Generator string
	Params    interface{}
	Files     []*writer.Result
}

// Manifest is the document written to disk
type Manifest struct {
	Generator   string           `json:"generator" yaml:"generator"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Params      interface{}      `json:"params" yaml:"params"`
	Files       []*writer.Result `json:"files" yaml:"files"`
}

// CanonicalParams records a canonical run
type CanonicalParams struct {
	MaxNumber int64    `json:"max_number" yaml:"max_number"`
	Sets      []string `json:"sets" yaml:"sets"`
}

func NewReporter(generator string, params interface{}) *Reporter {
	return &Reporter{
		Generator: generator,
		Params:    params,
	}
}

func (r *Reporter) AddFiles(results ...*writer.Result) {
	r.Files = append(r.Files, results...)
}

// GenerateReport writes the manifest, as YAML for .yaml/.yml and JSON otherwise
func (r *Reporter) GenerateReport(filename string) error {
	manifest := Manifest{
		Generator:   r.Generator,
		GeneratedAt: time.Now().UTC(),
		Params:      r.Params,
		Files:       r.Files,
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(manifest)
	default:
		data, err = json.MarshalIndent(manifest, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "failed to encode manifest")
	}

	if err := utils.WriteFile(filename, data); err != nil {
		return errors.Wrapf(err, "failed to write manifest %s", filename)
	}
	return nil
}
