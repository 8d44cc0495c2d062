/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"textimg/fontlib"
	"textimg/internal/config"
	"textimg/internal/crash"
	applog "textimg/internal/log"
	"textimg/internal/version"
	"textimg/palette"
	"textimg/textimage"
)

func usage() {
	fmt.Println("textimg — render text to raster images")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  textimg version|-v|--version     Show version")
	fmt.Println("  textimg fonts                    List installed font files")
	fmt.Println("  textimg scheme                   Print a random color scheme")
	fmt.Println("  textimg render [flags] <text> <out.png>")
	fmt.Println()
	fmt.Println("Render flags:")
	fmt.Println("  -font <name>        font by filename stem (default: by style)")
	fmt.Println("  -style <key>        serif|sans-serif|monospace (default sans-serif)")
	fmt.Println("  -bold -italic       style modifiers")
	fmt.Println("  -width <px>         target width (default 600)")
	fmt.Println("  -height <px>        fixed box height; 0 fits the height to the text")
	fmt.Println("  -min-chars <n>      minimum characters per wrapped line (default 10)")
	fmt.Println("  -fg -bg <#rrggbbaa> colors")
	fmt.Println("  -spacing <f>        line spacing factor (default 1.0)")
	fmt.Println("  -justify <j>        left|center|right (default center)")
	fmt.Println("  -valign <v>         top|center|bottom, with -height (default top)")
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	defer crash.Recover()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println(version.String())
			return
		case "fonts":
			runFonts(l)
			return
		case "scheme":
			fg, bg, text := palette.Scheme()
			fmt.Printf("foreground: %s\nbackground: %s\ntext:       %s\n", fg, bg, text)
			return
		case "render":
			runRender(l, args[2:])
			return
		}
	}

	usage()
}

func runFonts(l *slog.Logger) {
	cfg, err := config.Load()
	if err != nil {
		fail(l, "load config", err)
	}
	cat, err := fontlib.NewCatalog(cfg)
	if err != nil {
		fail(l, "open font catalog", err)
	}
	defer cat.Close()

	fonts := cat.Fonts()
	for _, path := range fonts {
		fmt.Println(path)
	}
	l.Info("fonts listed", slog.Int("count", len(fonts)))
}

func runRender(l *slog.Logger, args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	fontName := fs.String("font", "", "font by filename stem")
	style := fs.String("style", fontlib.StyleSansSerif, "font style key")
	bold := fs.Bool("bold", false, "bold variant")
	italic := fs.Bool("italic", false, "italic variant")
	width := fs.Int("width", 600, "target width in pixels")
	height := fs.Int("height", 0, "fixed box height; 0 fits the text")
	minChars := fs.Int("min-chars", 10, "minimum characters per wrapped line")
	fg := fs.String("fg", "", "foreground color")
	bg := fs.String("bg", "", "background color")
	spacing := fs.Float64("spacing", 1.0, "line spacing factor")
	justify := fs.String("justify", "center", "left|center|right")
	valign := fs.String("valign", "top", "top|center|bottom")
	_ = fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Println("render requires <text> and <out.png>")
		usage()
		os.Exit(2)
	}
	text := fs.Arg(0)
	out := fs.Arg(1)

	cfg, err := config.Load()
	if err != nil {
		fail(l, "load config", err)
	}
	cat, err := fontlib.NewCatalog(cfg)
	if err != nil {
		fail(l, "open font catalog", err)
	}
	defer cat.Close()

	var fnt *fontlib.Font
	if *fontName != "" {
		fnt, err = cat.Resolve(*fontName)
		if err != nil {
			fail(l, "resolve font", err)
		}
	} else {
		fnt = cat.BasicFont(*style, *bold, *italic)
	}

	st := textimage.Style{
		Foreground: *fg,
		Background: *bg,
		Spacing:    *spacing,
		Justify:    parseJustify(*justify),
	}

	render(l, text, out, fnt, *width, *height, *minChars, st, parseVertical(*valign))
}

func render(l *slog.Logger, text, out string, fnt *fontlib.Font, width, height, minChars int, st textimage.Style, v textimage.Vertical) {
	var err error
	if height > 0 {
		pic, e := textimage.FitBox(text, fnt, width, height, minChars, st, v)
		if e != nil {
			fail(l, "render", e)
		}
		err = textimage.WritePNG(out, pic)
	} else {
		pic, e := textimage.FitWidth(text, fnt, width, minChars, st)
		if e != nil {
			fail(l, "render", e)
		}
		err = textimage.WritePNG(out, pic)
	}
	if err != nil {
		fail(l, "write png", err)
	}
	l.Info("rendered", slog.String("out", out))
	fmt.Println("Wrote", out)
}

func parseJustify(s string) textimage.Justify {
	switch s {
	case "left":
		return textimage.JustifyLeft
	case "right":
		return textimage.JustifyRight
	default:
		return textimage.JustifyCenter
	}
}

func parseVertical(s string) textimage.Vertical {
	switch s {
	case "center":
		return textimage.VerticalCenter
	case "bottom":
		return textimage.VerticalBottom
	default:
		return textimage.VerticalTop
	}
}

func fail(l *slog.Logger, what string, err error) {
	l.Error(what+" failed", slog.Any("err", err))
	fmt.Println("Error:", err)
	os.Exit(1)
}
