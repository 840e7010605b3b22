package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/bmfont/core"
	"github.com/npillmayer/bmfont/core/font/bmfont"
	"github.com/npillmayer/bmfont/core/font/bmfont/bmquery"
	"github.com/npillmayer/bmfont/core/locate/resources"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'bmfont.cli'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.bmfont.cli":       "Info",
		"trace.bmfont.binary":    "Info",
		"trace.bmfont.resources": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load (packaged name or path to .fnt file)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)  // will set the correct level later
	pterm.Info.Println("Welcome to BMFont CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// load font to inspect
	intp := &Intp{}
	if err := intp.loadFont(*fontname); err != nil {
		core.UserError(err)
		os.Exit(4)
	}
	//
	// set up REPL
	repl, err := readline.New("bmf > ")
	if err != nil {
		tracer().Errorf("cannot start REPL: %v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	setTraceLevel(*tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(l string) {
	switch strings.ToLower(l) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().SetTraceLevel(tracing.LevelInfo)
	}
}

// Intp is our interpreter object
type Intp struct {
	font  *bmfont.Font
	index *bmquery.Index
	repl  *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command codes
const (
	QUIT int = iota
	HELP
	INFO
	COMMON
	PAGES
	CHARS
	CHAR
	KERN
	METRICS
)

// Command is a parsed command line, e.g. "kern:65:86".
type Command struct {
	code int
	args []string
}

func parseCommand(line string) (Command, error) {
	c := strings.Split(line, ":")
	tracer().Debugf("parse command = %v", c)
	cmd := Command{args: c[1:]}
	switch strings.ToLower(c[0]) {
	case "quit", "exit":
		cmd.code = QUIT
	case "help", "?":
		cmd.code = HELP
	case "info":
		cmd.code = INFO
	case "common":
		cmd.code = COMMON
	case "pages":
		cmd.code = PAGES
	case "chars":
		cmd.code = CHARS
	case "char":
		cmd.code = CHAR
	case "kern", "kerning":
		cmd.code = KERN
	case "metrics":
		cmd.code = METRICS
	default:
		return cmd, fmt.Errorf("unknown command: %s", c[0])
	}
	return cmd, nil
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help(getOptArg(cmd.args, 0))
	case INFO:
		info := intp.font.Info()
		pterm.Printfln("face = %q, size = %d, charset = %s", info.Face, info.Size, info.Charset)
		pterm.Printfln("smooth = %v, unicode = %v, italic = %v, bold = %v, fixed height = %v",
			info.Smooth, info.Unicode, info.Italic, info.Bold, info.FixedHeight)
		pterm.Printfln("stretchH = %d%%, aa = %d, outline = %d", info.StretchH, info.AA, info.Outline)
		pterm.Printfln("padding = %v, spacing = %v", info.Padding, info.Spacing)
	case COMMON:
		c := intp.font.Common()
		pterm.Printfln("line height = %d, base = %d, scale = %dx%d, pages = %d, packed = %v",
			c.LineHeight, c.Base, c.ScaleW, c.ScaleH, c.Pages, c.Packed)
		pterm.Printfln("channels: alpha = %s, red = %s, green = %s, blue = %s",
			c.AlphaChnl, c.RedChnl, c.GreenChnl, c.BlueChnl)
	case PAGES:
		for i, p := range intp.font.Pages() {
			pterm.Printfln("page %d = %s", i, p)
		}
	case CHARS:
		n, err := optInt(cmd.args, 0, intp.font.CharCount())
		if err != nil {
			return false, err
		}
		chars := intp.font.Chars()
		pterm.Printfln("Font has %d chars", len(chars))
		for _, ch := range chars[:min(n, len(chars))] {
			printChar(ch)
		}
	case CHAR:
		r, err := runeArg(cmd.args, 0)
		if err != nil {
			return false, err
		}
		ch, ok := intp.index.Glyph(r)
		if !ok {
			return false, fmt.Errorf("no char %#U in font", r)
		}
		printChar(ch)
		if page, ok := intp.index.PageFor(r); ok {
			pterm.Printfln("  on page %s", page)
		}
	case KERN:
		a, err := runeArg(cmd.args, 0)
		if err != nil {
			return false, err
		}
		b, err := runeArg(cmd.args, 1)
		if err != nil {
			return false, err
		}
		pterm.Printfln("kerning %#U -> %#U = %v", a, b, intp.index.Kern(a, b))
	case METRICS:
		m := intp.index.Metrics()
		pterm.Printfln("height = %v, ascent = %v, descent = %v", m.Height, m.Ascent, m.Descent)
	}
	return false, nil
}

func (intp *Intp) loadFont(fontname string) error {
	if fontname == "" {
		return core.Error(core.EMISSING, "no font given, use -font")
	}
	f, err := resources.ResolveBMFont(fontname).Font()
	if err != nil {
		tracer().Errorf("cannot load font %s: %v", fontname, err)
		return err
	}
	intp.font = f
	intp.index = bmquery.NewIndex(f)
	pterm.Printfln("loaded %v", f)
	return nil
}

func printChar(ch bmfont.Char) {
	pterm.Printfln("char %#U at (%d,%d) size %dx%d offset (%d,%d) advance %d page %d chnl %s",
		rune(ch.ID), ch.X, ch.Y, ch.Width, ch.Height, ch.XOffset, ch.YOffset, ch.XAdvance,
		ch.Page, ch.Chnl)
}

// runeArg interprets an argument as a code point. A single character stands
// for itself, longer arguments are read as U+XXXX, 0x-prefixed or decimal
// numbers.
func runeArg(args []string, inx int) (rune, error) {
	arg := getOptArg(args, inx)
	if arg == "" {
		return 0, errors.New("missing character argument")
	}
	if r := []rune(arg); len(r) == 1 {
		return r[0], nil
	}
	num := arg
	if hex, ok := strings.CutPrefix(strings.ToUpper(arg), "U+"); ok {
		num = "0x" + hex
	}
	if n, err := strconv.ParseInt(num, 0, 32); err == nil && n >= 0 {
		return rune(n), nil
	}
	return 0, fmt.Errorf("not a character: %s", arg)
}

func optInt(args []string, inx int, dflt int) (int, error) {
	arg := getOptArg(args, inx)
	if arg == "" {
		return dflt, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("not a count: %s", arg)
	}
	return n, nil
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "char", "kern":
		pterm.Info.Println("Characters")
		pterm.Println(`
	Single characters stand for themselves, longer arguments are
	code points:
	   char:A   char:5   char:U+0041   char:0x41   char:65
	Kerning pairs take two characters:
	   kern:A:V
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	info              generation info of the font
	common            line metrics and texture layout
	pages             texture page files
	chars[:n]         list (the first n) chars
	char:<c>          show a single char
	kern:<c1>:<c2>    kerning between two chars
	metrics           line metrics in fixed point
	help[:char]       this text
	quit              leave
	`)
	}
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
