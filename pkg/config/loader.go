package config

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPaths lists the file names probed (in order) in the working
// directory when no explicit config path is given.
var DefaultPaths = []string{
	".renamerc",
	".renamerc.yaml",
	".renamerc.yml",
	".renamerc.hcl",
	".renamerc.json",
}

// 🔍 Load reads a config file, picking the decoder from the extension.
// A bare ".renamerc" is tried as YAML first, then HCL.
func Load(ctx context.Context, path string) (*File, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading config file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	switch filepath.Ext(path) {
	case ".json":
		return decodeJSON(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".hcl":
		return decodeHCL(path, data)
	default:
		file, yamlErr := decodeYAML(data)
		if yamlErr == nil {
			return file, nil
		}
		file, hclErr := decodeHCL(path, data)
		if hclErr == nil {
			return file, nil
		}
		return nil, errors.Errorf("parsing %s (as yaml: %s): %w", filepath.Base(path), yamlErr, hclErr)
	}
}

// 🔍 Discover probes DefaultPaths under dir and loads the first file found.
// It returns (nil, "", nil) when no config file exists.
func Discover(ctx context.Context, dir string) (*File, string, error) {
	for _, name := range DefaultPaths {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		file, err := Load(ctx, path)
		if err != nil {
			return nil, "", err
		}
		return file, path, nil
	}
	return nil, "", nil
}

func decodeJSON(data []byte) (*File, error) {
	var file File
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Errorf("parsing JSON config: %w", err)
	}
	return &file, nil
}

func decodeYAML(data []byte) (*File, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			// empty file, nothing configured
			return &File{}, nil
		}
		return nil, errors.Errorf("parsing YAML config: %w", err)
	}
	return &file, nil
}

func decodeHCL(path string, data []byte) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL config: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var file File
	if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &file); diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL config: %s", diags.Error())
	}
	return &file, nil
}
