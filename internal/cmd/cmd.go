package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/kong"
	"github.com/philipparndt/gouvtile/internal/buildplan"
	"github.com/philipparndt/gouvtile/internal/config"
	"github.com/philipparndt/gouvtile/internal/inspect"
	"github.com/philipparndt/gouvtile/internal/layout"
	"github.com/philipparndt/gouvtile/internal/models"
	"github.com/philipparndt/gouvtile/internal/ui"
	"github.com/philipparndt/gouvtile/version"
)

type CLI struct {
	Verbose bool `help:"Print every step instead of progress bars" short:"v"`

	Arrange    *ArrangeCmd    `cmd:"" help:"Arrange the UV shells of an OBJ scene into unit tiles"`
	Inspect    *InspectCmd    `cmd:"" help:"Show topology classes and the planned tiles of an OBJ scene"`
	Config     *ConfigCmd     `cmd:"" help:"Work with arrange configuration files"`
	Version    *VersionCmd    `cmd:"" help:"Show version information"`
	Completion *CompletionCmd `cmd:"" help:"Generate shell completion script"`
}

// AfterApply switches the output mode before any command runs
func (cli *CLI) AfterApply() error {
	ui.SetVerbose(cli.Verbose)
	return nil
}

// LayoutFlags are the arrangement parameters shared by arrange and inspect
type LayoutFlags struct {
	Config         string   `help:"YAML configuration file" short:"c" type:"existingfile"`
	Select         []string `help:"Groups or objects to arrange (default: all top-level nodes)" short:"s" sep:","`
	StartTile      string   `help:"1-based tile to start in (default: 1)" short:"t"`
	Spacing        string   `help:"Spacing added around every shell in UV units (default: 0.03)"`
	UseCurrentTile bool     `help:"Start in the tile the first selected shell currently occupies"`
	Stacking       bool     `help:"Stack identical shells into dense column blocks"`
	StackColumns   string   `help:"Block width in shells when stacking (default: 3)"`
}

func (f *LayoutFlags) overrides() models.Overrides {
	return models.Overrides{
		Selection:      f.Select,
		StartTile:      f.StartTile,
		Spacing:        f.Spacing,
		UseCurrentTile: f.UseCurrentTile,
		Stacking:       f.Stacking,
		StackColumns:   f.StackColumns,
	}
}

// resolve loads the config file if given and applies the flags on top
func (f *LayoutFlags) resolve(o models.Overrides) (*models.ArrangeConfig, error) {
	loader := config.NewLoader()
	cfg := config.Default()
	if f.Config != "" {
		var err error
		if cfg, err = loader.Load(f.Config); err != nil {
			return nil, err
		}
	}
	if err := loader.Apply(cfg, o); err != nil {
		return nil, err
	}
	return cfg, nil
}

type ArrangeCmd struct {
	Layout LayoutFlags `embed:""`

	Input   string `arg:"" optional:"" help:"OBJ scene to arrange (may be set in the config file)"`
	Output  string `help:"Output OBJ file (default: <input>_arranged.obj)" short:"o"`
	Preview string `help:"Write a PDF preview with one page per tile"`
	Report  string `help:"Write an XLSX placement report"`
	Outline string `help:"Write a DXF outline of tiles and shells"`
	DryRun  bool   `help:"Plan the layout without writing anything"`
	Strict  bool   `help:"Fail when some groups cannot be arranged"`
	Open    bool   `help:"Open the preview in the default application"`
}

// Help adds additional help text with examples
func (c *ArrangeCmd) Help() string {
	return renderArrangeHelp()
}

// openFile opens a file in the default application for the current platform
func openFile(filepath string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", filepath)
	case "linux":
		cmd = exec.Command("xdg-open", filepath)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", filepath)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

func (c *ArrangeCmd) Run(ctx context.Context) error {
	o := c.Layout.overrides()
	o.Input = c.Input
	o.Output = c.Output
	o.Preview = c.Preview
	o.Report = c.Report
	o.Outline = c.Outline

	cfg, err := c.Layout.resolve(o)
	if err != nil {
		return err
	}

	plan, err := buildplan.NewPlanner().CreatePlan(cfg, c.DryRun)
	if err != nil {
		return err
	}
	plan.Strict = c.Strict

	if err := plan.Execute(ctx); err != nil {
		if errors.Is(err, layout.ErrEmptySelection) {
			return fmt.Errorf("nothing to arrange: %w", err)
		}
		return err
	}

	if c.Open && !c.DryRun && cfg.Exports.Preview != "" {
		if err := openFile(cfg.Exports.Preview); err != nil {
			ui.PrintError("Failed to open file: " + err.Error())
		}
	}
	return nil
}

type InspectCmd struct {
	Layout LayoutFlags `embed:""`

	File string `arg:"" help:"OBJ file to inspect"`
}

func (c *InspectCmd) Run(ctx context.Context) error {
	cfg, err := c.Layout.resolve(c.Layout.overrides())
	if err != nil {
		return err
	}

	inspector := inspect.NewInspector()
	inspector.Params = config.Params(cfg)
	inspector.Tile = config.TileSize(cfg)
	inspector.Selection = cfg.Selection
	return inspector.Inspect(ctx, c.File)
}

type ConfigCmd struct {
	Show *ConfigShowCmd `cmd:"" help:"Print the effective configuration with all defaults"`
}

type ConfigShowCmd struct {
	File  string `arg:"" optional:"" help:"YAML configuration file" type:"existingfile"`
	Plain bool   `help:"Disable syntax highlighting"`
	Style string `help:"Highlighting style" default:"monokai"`
}

func (c *ConfigShowCmd) Run() error {
	cfg := config.Default()
	if c.File != "" {
		var err error
		if cfg, err = config.NewLoader().Load(c.File); err != nil {
			return err
		}
	}

	data, err := config.Marshal(config.Effective(cfg))
	if err != nil {
		return err
	}

	if c.Plain || os.Getenv("NO_COLOR") != "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := quick.Highlight(os.Stdout, string(data), "yaml", "terminal256", c.Style); err != nil {
		return fmt.Errorf("failed to highlight configuration: %w", err)
	}
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := version.Get()
	fmt.Println(info.String())
	return nil
}

// Parse parses command line arguments and executes the appropriate command
func Parse() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("gouvtile"),
		kong.Description("UV shell tile packer for OBJ scenes"),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err := kctx.Run(); err != nil {
		ui.PrintError(err.Error())
		stop()
		os.Exit(1)
	}
}
