// Package main provides the gbu command-line tool: it creates, extends,
// and exports workplace risk assessments backed by the industry template
// catalog.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sifa-tools/gbu/internal/assessment"
	"github.com/sifa-tools/gbu/internal/catalog"
	"github.com/sifa-tools/gbu/internal/cmdcommon"
	"github.com/sifa-tools/gbu/internal/color"
	"github.com/sifa-tools/gbu/internal/export"
	"github.com/sifa-tools/gbu/internal/logging"
	"github.com/sifa-tools/gbu/internal/safefile"
	"github.com/sifa-tools/gbu/internal/serialize"
	"github.com/sifa-tools/gbu/internal/terminal"
)

// Error definitions
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInputRequired  = errors.New("input file is required (-in)")
)

const usageText = `Usage: gbu <command> [flags]

Commands:
  new         create a new assessment seeded from an industry template
  apply       merge template items into an existing assessment
  export      render an assessment as a multi-sheet xlsx workbook
  industries  list the industries of the template catalog
  items       list the template items of one industry

Run 'gbu <command> -h' for command flags.
`

// commonFlags are shared by every subcommand.
type commonFlags struct {
	logLevel    *string
	envFile     *string
	noColor     *bool
	interactive *bool
	quiet       *bool
	catalog     *string
}

func addCommonFlags(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		logLevel:    fs.String("log-level", "info", "log level (debug, info, warn, error)"),
		envFile:     fs.String("env-file", "", "path to environment file (default: ./.env if present)"),
		noColor:     fs.Bool("no-color", false, "disable colored output"),
		interactive: fs.Bool("interactive", false, "force interactive mode with colored output (overrides environment detection)"),
		quiet:       fs.Bool("quiet", false, "force non-interactive mode (disables colored output)"),
		catalog:     fs.String("catalog", "", "additional catalog file (.toml, .yaml) merged over the built-in library"),
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return cmdcommon.ExitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "new":
		return cmdNew(rest)
	case "apply":
		return cmdApply(rest)
	case "export":
		return cmdExport(rest)
	case "industries":
		return cmdIndustries(rest)
	case "items":
		return cmdItems(rest)
	case "-h", "--help", "help":
		fmt.Print(usageText)
		return cmdcommon.ExitOK
	default:
		fmt.Fprintf(os.Stderr, "gbu: %v: %s\n\n%s", ErrUnknownCommand, cmd, usageText)
		return cmdcommon.ExitUsage
	}
}

// setup finishes common flag handling: env file, logging, terminal
// capabilities. Must run after fs.Parse.
func setup(cf *commonFlags) (terminal.Capabilities, error) {
	if err := cmdcommon.LoadEnvFile(*cf.envFile); err != nil {
		return nil, fmt.Errorf("failed to load environment file: %w", err)
	}
	caps := terminal.NewCapabilities(terminal.Options{
		ForceInteractive:    *cf.interactive,
		ForceNonInteractive: *cf.quiet,
		DisableColor:        *cf.noColor,
	})
	if err := logging.Setup(*cf.logLevel, caps); err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return caps, nil
}

// loadLibrary returns the built-in catalog, with the optional catalog file
// merged over it.
func loadLibrary(path string) (catalog.Library, error) {
	lib := catalog.BuiltinLibrary()
	if path == "" {
		return lib, nil
	}
	extra, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	lib.Merge(extra)
	slog.Debug("merged catalog file", "path", path, "industries", len(extra))
	return lib, nil
}

func loadAssessment(path string) (*assessment.Assessment, error) {
	if path == "" {
		return nil, ErrInputRequired
	}
	data, err := safefile.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read assessment: %w", err)
	}
	return serialize.Unmarshal(data)
}

func saveAssessment(a *assessment.Assessment, path string) error {
	data, err := serialize.Marshal(a)
	if err != nil {
		return err
	}
	if err := safefile.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write assessment: %w", err)
	}
	return nil
}

func fail(err error) int {
	slog.Error("command failed", "error", err)
	return cmdcommon.ExitError
}

func cmdNew(args []string) int {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	cf := addCommonFlags(fs)
	industry := fs.String("industry", assessment.DefaultIndustry, "industry whose template seeds the assessment")
	company := fs.String("company", "", "company name (default: $"+cmdcommon.EnvCompany+")")
	location := fs.String("location", "", "site location (default: $"+cmdcommon.EnvLocation+")")
	createdBy := fs.String("created-by", "", "author (default: $"+cmdcommon.EnvCreatedBy+")")
	out := fs.String("out", "assessment.json", "output file")
	noTemplate := fs.Bool("no-template", false, "start empty instead of seeding from the template")
	noSplit := fs.Bool("no-split", false, "keep composite hazard phrases as-is")
	fs.Parse(args) //nolint:errcheck // ExitOnError

	if _, err := setup(cf); err != nil {
		return fail(err)
	}

	a := assessment.New(
		orEnv(*company, cmdcommon.EnvCompany),
		orEnv(*location, cmdcommon.EnvLocation),
		cmdcommon.Today(),
		orEnv(*createdBy, cmdcommon.EnvCreatedBy),
	)

	if *noTemplate {
		a.Industry = *industry
	} else {
		lib, err := loadLibrary(*cf.catalog)
		if err != nil {
			return fail(err)
		}
		n := catalog.Preload(a, lib, *industry, true, !*noSplit)
		slog.Info("template preloaded", "industry", *industry, "hazards", n)
	}

	if err := saveAssessment(a, *out); err != nil {
		return fail(err)
	}
	slog.Info("assessment created", "file", *out, "hazards", len(a.Hazards))
	return cmdcommon.ExitOK
}

func cmdApply(args []string) int {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	cf := addCommonFlags(fs)
	in := fs.String("in", "", "assessment file to extend")
	out := fs.String("out", "", "output file (default: overwrite -in)")
	industry := fs.String("industry", "", "industry template to apply (default: the assessment's industry)")
	keys := fs.String("keys", "", "comma-separated item keys; empty applies the full template")
	replace := fs.Bool("replace", false, "clear existing hazards before applying")
	noSplit := fs.Bool("no-split", false, "keep composite hazard phrases as-is")
	fs.Parse(args) //nolint:errcheck // ExitOnError

	if _, err := setup(cf); err != nil {
		return fail(err)
	}

	a, err := loadAssessment(*in)
	if err != nil {
		return fail(err)
	}
	lib, err := loadLibrary(*cf.catalog)
	if err != nil {
		return fail(err)
	}

	name := *industry
	if name == "" {
		name = a.Industry
	}

	var added int
	if *keys == "" {
		added = catalog.Preload(a, lib, name, *replace, !*noSplit)
	} else {
		if *replace {
			a.Hazards = []assessment.Hazard{}
			a.Industry = name
		}
		added = catalog.Apply(a, lib.Template(name), catalog.ApplyOptions{
			SelectedKeys: strings.Split(*keys, ","),
			IndustryName: name,
			SplitMulti:   !*noSplit,
		})
	}

	target := *out
	if target == "" {
		target = *in
	}
	if err := saveAssessment(a, target); err != nil {
		return fail(err)
	}
	slog.Info("template applied", "industry", name, "added", added, "total", len(a.Hazards), "file", target)
	return cmdcommon.ExitOK
}

func cmdExport(args []string) int {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	cf := addCommonFlags(fs)
	in := fs.String("in", "", "assessment file to export")
	out := fs.String("out", "risk-assessment.xlsx", "output workbook")
	fs.Parse(args) //nolint:errcheck // ExitOnError

	if _, err := setup(cf); err != nil {
		return fail(err)
	}

	a, err := loadAssessment(*in)
	if err != nil {
		return fail(err)
	}

	data, err := export.Bytes(a)
	if err != nil {
		return fail(err)
	}
	if err := safefile.WriteFile(*out, data, 0o600); err != nil {
		return fail(fmt.Errorf("failed to write workbook: %w", err))
	}
	slog.Info("workbook exported", "file", *out, "hazards", len(a.Hazards), "bytes", len(data))
	return cmdcommon.ExitOK
}

func cmdIndustries(args []string) int {
	fs := flag.NewFlagSet("industries", flag.ExitOnError)
	cf := addCommonFlags(fs)
	fs.Parse(args) //nolint:errcheck // ExitOnError

	caps, err := setup(cf)
	if err != nil {
		return fail(err)
	}
	lib, err := loadLibrary(*cf.catalog)
	if err != nil {
		return fail(err)
	}

	bold := pick(color.Bold, caps)
	for _, name := range lib.Industries() {
		items := len(lib.IterItems(name))
		fmt.Printf("%s (%d items)\n", bold(name), items)
	}
	return cmdcommon.ExitOK
}

func cmdItems(args []string) int {
	fs := flag.NewFlagSet("items", flag.ExitOnError)
	cf := addCommonFlags(fs)
	industry := fs.String("industry", assessment.DefaultIndustry, "industry to list")
	fs.Parse(args) //nolint:errcheck // ExitOnError

	caps, err := setup(cf)
	if err != nil {
		return fail(err)
	}
	lib, err := loadLibrary(*cf.catalog)
	if err != nil {
		return fail(err)
	}

	bold := pick(color.Bold, caps)
	gray := pick(color.Gray, caps)
	area := ""
	for _, ref := range lib.IterItems(*industry) {
		if ref.Area != area {
			area = ref.Area
			fmt.Println(bold(area))
		}
		fmt.Printf("  %s — %s\n", ref.Item.Activity, ref.Item.Hazard)
		fmt.Printf("    %s\n", gray(ref.Key))
	}
	return cmdcommon.ExitOK
}

func orEnv(value, envKey string) string {
	if value != "" {
		return value
	}
	return cmdcommon.EnvDefault(envKey, "")
}

func pick(c color.Color, caps terminal.Capabilities) color.Color {
	if caps.SupportsColor() {
		return c
	}
	return color.None
}
