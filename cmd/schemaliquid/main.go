// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

// schemaliquid generates Jekyll include fragments and page skeletons from record schemas.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/schemaliquid"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/schemaliquid"
	_buildTime string
)

// cliOptions describes schemaliquid CLI flags and subcommands.
type cliOptions struct {
	Version    versionCommand    `command:"version" description:"Print version information"`
	Generate   generateCommand   `command:"generate" description:"Generate include fragment and page skeleton from record schema"`
	ConfigMap  configMapCommand  `command:"configmap" description:"Build config_map YAML from a Jekyll collection directory"`
	MetaSchema metaSchemaCommand `command:"metaschema" description:"Print JSON Schema of the record schema dialect"`
	Example    exampleCommand    `command:"example" description:"Print built-in example record schema"`
}

// generateCommand renders both artifacts from one record schema.
type generateCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"input" description:"Input record schema file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`

	IncludePath     string `short:"i" long:"include" description:"Output Liquid include fragment path" default:"record.html"`
	PagePath        string `short:"p" long:"page" description:"Output page skeleton path" default:"record.md"`
	Separator       string `short:"s" long:"separator" description:"Token appended after each scalar value" default:"<br/>"`
	BodyPlaceholder string `short:"b" long:"body" description:"Page skeleton body line" default:"<!-- Add page content here -->"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(
		command.Args.Input,
		command.IncludePath,
		command.PagePath,
		command.Separator,
		command.BodyPlaceholder,
	)
}

// configMapCommand builds the config_map block from a collection directory.
type configMapCommand struct {
	runner *cliRunner
	Args   struct {
		Directory string   `positional-arg-name:"directory" description:"Jekyll collection directory to scan" required:"yes"`
		Fields    []string `positional-arg-name:"fields" description:"Front matter fields to extract" required:"1"`
	} `positional-args:"yes"`

	Output string `short:"o" long:"output" description:"Output file path (optional; stdout when omitted)"`
}

// Execute runs configmap subcommand.
func (command *configMapCommand) Execute(_ []string) error {
	return command.runner.runConfigMap(command.Args.Directory, command.Args.Fields, command.Output)
}

// metaSchemaCommand exports the record schema dialect meta-schema.
type metaSchemaCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output schema file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs metaschema subcommand.
func (command *metaSchemaCommand) Execute(_ []string) error {
	return command.runner.runMetaSchema(command.Args.Output)
}

// exampleCommand exports the built-in example record schema.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output schema file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(command.Args.Output)
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "schemaliquid"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runGenerate renders both artifacts from schema input and persists them.
func (runner *cliRunner) runGenerate(inputPath, includePath, pagePath, separator, bodyPlaceholder string) error {
	schemaBytes, err := runner.readSchemaInput(inputPath)
	if err != nil {
		return fmt.Errorf("read schema input: %w", err)
	}

	artifacts, err := schemaliquid.Generate(schemaBytes, schemaliquid.Options{
		Separator:       separator,
		BodyPlaceholder: bodyPlaceholder,
	})
	if err != nil {
		return fmt.Errorf("generate artifacts: %w", err)
	}

	if err := artifacts.Write(includePath, pagePath); err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}

	return nil
}

// runConfigMap builds config_map YAML and writes result to stdout or file.
func (runner *cliRunner) runConfigMap(dir string, fields []string, outputPath string) error {
	data, skipped, err := schemaliquid.BuildConfigMap(dir, fields)
	if err != nil {
		return fmt.Errorf("build config map: %w", err)
	}

	for _, name := range skipped {
		_, _ = fmt.Fprintf(runner.stderr, "warning: skipping %s: no front matter\n", name)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write config map to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write config map file %q: %w", outputPath, err)
	}

	return nil
}

// runMetaSchema writes the dialect meta-schema to stdout or file.
func (runner *cliRunner) runMetaSchema(outputPath string) error {
	data, err := schemaliquid.DialectSchema()
	if err != nil {
		return fmt.Errorf("generate dialect schema: %w", err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write dialect schema to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write dialect schema file %q: %w", outputPath, err)
	}

	return nil
}

// runExample writes the built-in example schema to stdout or file.
func (runner *cliRunner) runExample(outputPath string) error {
	example, err := schemaliquid.ExampleSchema()
	if err != nil {
		return fmt.Errorf("load built-in example schema: %w", err)
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, example); err != nil {
			return fmt.Errorf("write example schema to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(example), 0o600); err != nil {
		return fmt.Errorf("write example schema file %q: %w", outputPath, err)
	}

	return nil
}

// readSchemaInput reads record schema from file path or stdin.
func (runner *cliRunner) readSchemaInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read schema file %q: %w", path, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read schema from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read schema from stdin: empty input")
	}

	return data, nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Generate.runner = runner
	options.ConfigMap.runner = runner
	options.MetaSchema.runner = runner
	options.Example.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Generate the Liquid include fragment and the markdown page skeleton from one record schema.
Reads the schema from file argument or stdin; writes both artifacts to the --include and --page paths.

Examples:
> $ %s generate record.schema.json
> $ cat record.schema.json | %s generate -i _includes/record.html -p _templates/record.md
`, programName, programName)),
		"configmap": strings.TrimSpace(fmt.Sprintf(`
Scan a Jekyll collection directory for *.md files and print selected front matter fields
as a config_map YAML block, suitable for copying into another site's _config.yml.

Examples:
> $ %s configmap ../opensourceconduct/_cocs identifier commonName
> $ %s configmap -o config_map.yml _licenses identifier commonName
`, programName, programName)),
		"metaschema": strings.TrimSpace(fmt.Sprintf(`
Print the JSON Schema describing the record schema dialect.
Point your editor at it to validate format, section, and $comment conventions while authoring.

Examples:
> $ %s metaschema > dialect.schema.json
> $ %s metaschema schema/dialect.schema.json
`, programName, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Print the built-in example record schema.
It exercises sections, url and urlfragment formats, resolver lookups, and skeleton exclusions.

Examples:
> $ %s example > record.schema.json
> $ %s example | %s generate
`, programName, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
