package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/disintegration/imaging"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"sct/config"
	"sct/state"
	"sct/style"
	"sct/widget"
)

type outcomeDoc struct {
	Path   string       `yaml:"path"`
	Line   int          `yaml:"line"`
	Status style.Status `yaml:"status"`
	Value  string       `yaml:"value,omitempty"`
	Error  string       `yaml:"error,omitempty"`
}

type applyDoc struct {
	Theme    string        `yaml:"theme"`
	Style    string        `yaml:"style"`
	Widget   string        `yaml:"widget"`
	Outcomes []outcomeDoc  `yaml:"outcomes"`
	Result   widget.Widget `yaml:"result"`
}

// Apply applies style to a sample widget and prints outcomes together with
// the resulting widget state. Failed assignments are reported, not returned
// as errors.
func Apply(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("apply")

	if cmd.Args().Len() < 2 {
		return errors.New("theme file and style name must be specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	path, styleName := cmd.Args().Get(0), cmd.Args().Get(1)

	kind := cmd.String("widget")
	if len(kind) == 0 {
		kind = env.Cfg.Apply.Widget
	}
	w, err := widget.New(kind)
	if err != nil {
		return err
	}

	format := env.Cfg.Apply.Output
	if cmd.IsSet("output") {
		if format, err = config.ParseOutputFormat(cmd.String("output")); err != nil {
			return fmt.Errorf("unknown output format: %w", err)
		}
	}

	th, release, err := openTheme(env, path)
	if err != nil {
		return err
	}
	defer release()
	if !th.HasStyle(styleName) {
		log.Warn("Style not found, nothing to apply", zap.String("style", styleName))
	}

	var outs style.Outcomes
	if cmd.IsSet("only") {
		outs = th.ApplyStyleOnly(w, styleName, cmd.StringSlice("only")...)
	} else {
		outs = th.ApplyStyle(w, styleName)
	}
	if failed := outs.Failed(); len(failed) > 0 {
		log.Warn("Some assignments were not applied", zap.Int("failed", len(failed)), zap.Int("total", len(outs)))
	}
	env.Rpt.StoreData(fmt.Sprintf("outcomes/%s-%s.txt", th.Name(), styleName), []byte(outs.Dump()))

	doc := applyDoc{Theme: th.Name(), Style: styleName, Widget: kind, Result: w}
	for _, o := range outs {
		d := outcomeDoc{Path: o.Path.String(), Line: o.Line, Status: o.Status}
		if o.Value != nil {
			d.Value = o.Value.String()
		}
		if o.Err != nil {
			d.Error = o.Err.Error()
		}
		doc.Outcomes = append(doc.Outcomes, d)
	}
	if err := printResult(cmd.Root().Writer, format, outs, &doc); err != nil {
		return err
	}

	if dst := cmd.String("render"); len(dst) > 0 {
		return render(env, log, w, dst, &doc)
	}
	return nil
}

func printResult(out io.Writer, format config.OutputFormat, outs style.Outcomes, doc *applyDoc) error {
	if format == config.OutputFormatYaml {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("unable to encode result: %w", err)
		}
		return enc.Close()
	}

	if len(outs) == 0 {
		fmt.Fprintln(out, "nothing applied")
	} else {
		fmt.Fprintln(out, outs.Dump())
	}
	data, err := yaml.Marshal(doc.Result)
	if err != nil {
		return fmt.Errorf("unable to encode widget: %w", err)
	}
	fmt.Fprintf(out, "\n%s:\n%s", doc.Widget, indent(string(data), "    "))
	return nil
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	for i, l := range lines {
		if l != "" && l != "\n" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "")
}

// render draws widget background to PNG file. When destination is a
// directory file name is produced from configured template.
func render(env *state.LocalEnv, log *zap.Logger, w widget.Widget, dst string, doc *applyDoc) error {
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		name, err := renderName(env.Cfg.Apply.RenderNameTemplate, doc)
		if err != nil {
			return err
		}
		dst = filepath.Join(dst, name)
	}

	img, err := widget.Render(w)
	if err != nil {
		return fmt.Errorf("unable to render %s: %w", doc.Widget, err)
	}
	if err := imaging.Save(img, dst); err != nil {
		return fmt.Errorf("unable to save rendered image: %w", err)
	}
	env.Rpt.Store("render/"+filepath.Base(dst), dst)
	log.Info("Widget rendered", zap.String("file", dst), zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	return nil
}

func renderName(tmpl string, doc *applyDoc) (string, error) {
	t, err := template.New(string(config.RenderNameTemplateFieldName)).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("bad render name template: %w", err)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, doc); err != nil {
		return "", fmt.Errorf("unable to expand render name template: %w", err)
	}
	name := config.CleanFileName(sb.String())
	if filepath.Ext(name) == "" {
		name += ".png"
	}
	return name, nil
}
