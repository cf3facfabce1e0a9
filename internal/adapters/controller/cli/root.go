package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Badsnus/qrforge/internal/app"
	"github.com/Badsnus/qrforge/internal/adapters/config"
	"github.com/Badsnus/qrforge/internal/domain/dto"
	"github.com/Badsnus/qrforge/internal/domain/entity"
	qr "github.com/Badsnus/qrforge/pkg/qrcode"
)

var Version = "dev"

type renderFlags struct {
	level     string
	scale     int
	border    int
	preset    string
	dark      string
	light     string
	quietZone string
	logo      string
	noLogo    bool
	output    string
	format    string
	show      bool
}

type runner struct {
	configPath string
	flags      renderFlags
	app        *app.App
}

// NewRootCommand builds the qrforge command tree. The app is wired lazily
// so --config is honored.
func NewRootCommand() *cobra.Command {
	r := &runner{}

	root := &cobra.Command{
		Use:           "qrforge",
		Short:         "Generate QR codes for text, links, Wi-Fi, contacts and more",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&r.configPath, "config", "c", "", "Path to config file (default ./config.yaml)")
	pf.StringVar(&r.flags.level, "level", "", "Error correction level: L, M, Q or H")
	pf.IntVar(&r.flags.scale, "scale", 0, "Pixels per module")
	pf.IntVar(&r.flags.border, "border", 0, "Light border width in modules")
	pf.StringVar(&r.flags.preset, "preset", "", "Color preset: "+strings.Join(presetNames(), ", "))
	pf.StringVar(&r.flags.dark, "dark", "", "Module color (#RRGGBB or a color name)")
	pf.StringVar(&r.flags.light, "light", "", "Background color")
	pf.StringVar(&r.flags.quietZone, "quiet-zone", "", "Color of the area around the border")
	pf.StringVar(&r.flags.logo, "logo", "", "Image placed in the center of PNG output")
	pf.BoolVar(&r.flags.noLogo, "no-logo", false, "Ignore the logo set in the config file")
	pf.StringVarP(&r.flags.output, "output", "o", "", "Output file; .svg selects vector output, - writes to stdout")
	pf.StringVar(&r.flags.format, "format", "png", "Output format when --output is not a file name: png or svg")
	pf.BoolVar(&r.flags.show, "show", false, "Print the code to the terminal as well")

	for _, cmd := range r.recordCommands() {
		root.AddCommand(cmd)
	}
	root.AddCommand(r.serveCommand())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qrforge %s\n", Version)
		},
	})

	return root
}

func (r *runner) load() error {
	if r.app != nil {
		return nil
	}
	cfg, err := config.Load(r.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	r.app = a
	return nil
}

// options layers the flags the user actually set over the configured options.
func (r *runner) options(cmd *cobra.Command, base entity.RenderOptions) (entity.RenderOptions, error) {
	flags := cmd.Flags()

	if flags.Changed("preset") {
		preset, ok := qr.Presets[strings.ToLower(r.flags.preset)]
		if !ok {
			return base, fmt.Errorf("unknown preset %q", r.flags.preset)
		}
		base.Dark, base.Light, base.QuietZone = preset.Dark, preset.Light, preset.QuietZone
	}

	var form dto.RenderForm
	if flags.Changed("level") {
		form.Level = r.flags.level
	}
	if flags.Changed("scale") {
		form.Scale = &r.flags.scale
	}
	if flags.Changed("border") {
		form.Border = &r.flags.border
	}
	if flags.Changed("dark") {
		form.Dark = r.flags.dark
	}
	if flags.Changed("light") {
		form.Light = r.flags.light
	}
	if flags.Changed("quiet-zone") {
		form.QuietZone = r.flags.quietZone
	}

	return form.Apply(base)
}

// configure applies the render flags to the studio. --no-logo starts from a
// reset studio, dropping the configured logo.
func (r *runner) configure(cmd *cobra.Command) error {
	studio := r.app.Studio
	flags := cmd.Flags()

	if r.flags.noLogo && flags.Changed("logo") {
		return fmt.Errorf("--logo and --no-logo cannot be used together")
	}
	if r.flags.noLogo {
		studio.Reset()
	}

	opts, err := r.options(cmd, studio.Options())
	if err != nil {
		return err
	}
	if err = studio.SetOptions(opts); err != nil {
		return err
	}

	if flags.Changed("logo") {
		studio.SetLogo(r.flags.logo)
	}
	return nil
}

func presetNames() []string {
	names := make([]string, 0, len(qr.Presets))
	for name := range qr.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
