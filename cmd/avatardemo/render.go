package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/avatar"
	"github.com/gogpu/avatar/internal/config"
	"github.com/gogpu/avatar/text"
)

type renderFlags struct {
	configPath    string
	fontPath      string
	outDir        string
	shape         string
	size          int
	seed          uint64
	deterministic bool
	shaping       bool
}

func newRenderCmd() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render NAME...",
		Short: "Render one avatar PNG per name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	f.StringVar(&flags.fontPath, "font", "", "TTF/OTF font file (default: Go Regular)")
	f.StringVarP(&flags.outDir, "out", "o", ".", "output directory")
	f.StringVar(&flags.shape, "shape", "", "override shape: rectangle, oval, rounded or hexagon")
	f.IntVar(&flags.size, "size", 0, "override avatar size in pixels")
	f.Uint64Var(&flags.seed, "seed", 0, "seed for palette selection (0 picks a random seed)")
	f.BoolVar(&flags.deterministic, "deterministic", false, "derive each color from the name instead of the random source")
	f.BoolVar(&flags.shaping, "shaping", false, "measure glyphs with HarfBuzz shaping")

	return cmd
}

func runRender(cmd *cobra.Command, flags *renderFlags, names []string) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if flags.shape != "" {
		cfg.Shape = flags.shape
	}

	opts, err := cfg.RendererOptions()
	if err != nil {
		return err
	}
	if flags.seed != 0 {
		opts = append(opts, avatar.WithRandomSource(rand.New(rand.NewPCG(flags.seed, flags.seed))))
	}
	r, err := avatar.NewRenderer(opts...)
	if err != nil {
		return err
	}

	source, err := loadFont(flags.fontPath, flags.shaping)
	if err != nil {
		return err
	}
	defer func() {
		_ = source.Close()
	}()

	size := cfg.SizePx()
	if flags.size > 0 {
		size = flags.size
	}

	if err := os.MkdirAll(flags.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for i, name := range names {
		a := r.NewAvatar()
		if err := a.SetSize(float64(size), float64(size)); err != nil {
			return err
		}
		if err := a.SetPadding(cfg.PaddingPx()); err != nil {
			return err
		}
		a.SetLetterRune(avatar.Initial(name))
		if flags.deterministic {
			c, err := avatar.SelectColorFor(r.Palette(), name)
			if err != nil {
				return err
			}
			a.SetShapeColor(c)
		}

		pm := avatar.NewPixmap(size, size)
		pm.SetFont(source)
		res, err := a.Render(pm, source)
		if err != nil {
			return fmt.Errorf("render %q: %w", name, err)
		}

		path := filepath.Join(flags.outDir, fileName(i, name))
		if err := writePNG(path, pm); err != nil {
			return err
		}
		slog.Info("avatar written",
			slog.String("name", name),
			slog.String("path", path),
			slog.String("color", res.Background.String()))
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func loadFont(path string, shaping bool) (*text.FontSource, error) {
	var opts []text.SourceOption
	if shaping {
		opts = append(opts, text.WithShaper(text.NewGoTextShaper()))
	}
	if path == "" {
		return text.NewFontSource(goregular.TTF, opts...)
	}
	return text.NewFontSourceFromFile(path, opts...)
}

// fileName builds a file-system safe name such as "01-grace-hopper.png".
func fileName(i int, name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		case r == ' ' || r == '-' || r == '_':
			return '-'
		}
		return -1
	}, strings.TrimSpace(name))
	if slug == "" {
		slug = "avatar"
	}
	return fmt.Sprintf("%02d-%s.png", i+1, slug)
}

func writePNG(path string, pm *avatar.Pixmap) error {
	f, err := os.Create(path) //nolint:gosec // path is built from the output flag
	if err != nil {
		return err
	}
	if err := png.Encode(f, pm.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
