package cli

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"

	"github.com/example/optgen/internal/extractor"
	"github.com/example/optgen/internal/generator"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Flag defaults. Config file values only replace a setting still at its
// default.
const (
	DefaultInput  = "options.md"
	DefaultOutput = "-"
	DefaultFormat = "java"
)

// GenerateConfig holds configuration for table generation.
type GenerateConfig struct {
	InputPath  string `validate:"required"`
	OutputPath string `validate:"required"`
	Format     string `validate:"required,format"`
	Package    string `validate:"omitempty,goident"`
	ConfigPath string
	Verbose    bool
	Watch      bool
}

// NewGenerateConfig returns a config holding the flag defaults.
func NewGenerateConfig() *GenerateConfig {
	return &GenerateConfig{
		InputPath:  DefaultInput,
		OutputPath: DefaultOutput,
		Format:     DefaultFormat,
		Package:    generator.DefaultPackage,
	}
}

// Validate checks config against the formats known to formats.
func (c *GenerateConfig) Validate(formats *generator.Registry) error {
	v := validator.New()
	_ = v.RegisterValidation("format", func(fl validator.FieldLevel) bool {
		_, err := formats.Get(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	})

	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			switch fe.Tag() {
			case "format":
				return fmt.Errorf("invalid config: unsupported format %q (available: %v)", fe.Value(), formats.IDs())
			case "goident":
				return fmt.Errorf("invalid config: package %q is not a Go identifier", fe.Value())
			}
			return fmt.Errorf("invalid config: %s is %s", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func loadConfigFile(config *GenerateConfig) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(config.ConfigPath))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Optgen struct {
			Input   string `yaml:"input"`
			Output  string `yaml:"output"`
			Format  string `yaml:"format"`
			Package string `yaml:"package"`
		} `yaml:"optgen"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values if flags weren't set
	if config.InputPath == DefaultInput && cfg.Optgen.Input != "" {
		config.InputPath = cfg.Optgen.Input
	}
	if config.OutputPath == DefaultOutput && cfg.Optgen.Output != "" {
		config.OutputPath = cfg.Optgen.Output
	}
	if config.Format == DefaultFormat && cfg.Optgen.Format != "" {
		config.Format = cfg.Optgen.Format
	}
	if config.Package == generator.DefaultPackage && cfg.Optgen.Package != "" {
		config.Package = cfg.Optgen.Package
	}

	return nil
}

// GenerateTables loads the optional config file, validates the result and runs
// one generation. In watch mode it then keeps regenerating until ctx is done.
func GenerateTables(config *GenerateConfig, env *Env) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}

	gen := generator.New(nil)
	if err := config.Validate(gen.Formats()); err != nil {
		return err
	}

	if err := generateOnce(config, gen, env); err != nil {
		return err
	}

	if config.Watch {
		return watchInput(env.Context(), config, gen, env)
	}
	return nil
}

// generateOnce is a full, stateless run: read, extract, emit, write.
func generateOnce(config *GenerateConfig, gen *generator.Generator, env *Env) error {
	doc, err := extractor.ReadDocument(config.InputPath)
	if err != nil {
		return err
	}

	cat := extractor.New(env.Log).Extract(doc)

	var buf bytes.Buffer
	if err := gen.Generate(&buf, config.Format, cat, generator.Options{Package: config.Package}); err != nil {
		return err
	}

	if err := writeOutput(buf.Bytes(), config, env.Stdout); err != nil {
		return err
	}

	env.Log.WithFields(logrus.Fields{
		"input":    config.InputPath,
		"output":   config.OutputPath,
		"format":   config.Format,
		"tables":   len(generator.BuildTables(cat)),
		"options":  cat.OptionCount(),
		"sections": cat.Len(),
	}).Info("tables generated")
	return nil
}

// FileSystem interface for dependency injection
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	Create(name string) (io.WriteCloser, error)
}

// DefaultFileSystem implements FileSystem
type DefaultFileSystem struct{}

func (fs *DefaultFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *DefaultFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(filepath.Clean(name))
}

var defaultFileSystem FileSystem = &DefaultFileSystem{}

func writeOutput(data []byte, config *GenerateConfig, stdout io.Writer) error {
	return writeOutputWithFS(data, config, stdout, defaultFileSystem)
}

func writeOutputWithFS(data []byte, config *GenerateConfig, stdout io.Writer, fs FileSystem) error {
	if config.OutputPath == "-" {
		_, err := stdout.Write(data)
		return err
	}

	outDir := filepath.Dir(config.OutputPath)
	if fi, err := fs.Stat(outDir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("output directory %s does not exist", outDir)
		}
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("output path %s is not a directory", outDir)
	}

	f, err := fs.Create(config.OutputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	return f.Close()
}
