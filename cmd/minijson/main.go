package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"gopkg.in/yaml.v3"

	"github.com/yuantj/minijson"
	"github.com/yuantj/minijson/element"
	"github.com/yuantj/minijson/log"
	"github.com/yuantj/minijson/parser"
	"github.com/yuantj/minijson/xerrors"
)

const version = "0.3.0"

var (
	indent             int
	ascii              bool
	checkOnly          bool
	encodingName       string
	outPath            string
	configPath         string
	needOutputConfTmpl bool
)

// Config is the optional YAML config file layout.
type Config struct {
	Log    *log.Options `yaml:"log"`
	Format struct {
		// Indent width; negative means compact output.
		Indent int  `yaml:"indent"`
		ASCII  bool `yaml:"ascii"`
	} `yaml:"format"`
}

func defaultConf() *Config {
	conf := &Config{
		Log: &log.Options{
			Mode:  "FULL",
			Level: "INFO",
			Sink:  "CONSOLE",
		},
	}
	conf.Format.Indent = -1
	return conf
}

func main() {
	var rootCmd = &cobra.Command{
		Use:     "minijson [FILE]...",
		Version: genVersion(),
		Short:   "Minijson validates and reformats JSON documents",
		Long: `Minijson parses each FILE (or standard input when no FILE is given)
as a single JSON document and reformats it to standard output.`,
		Run: runCmd,
	}

	rootCmd.Flags().IntVarP(&indent, "indent", "n", -1, "Indent width per nesting level; negative means compact output")
	rootCmd.Flags().BoolVarP(&ascii, "ascii", "a", false, "Escape all characters outside printable ASCII")
	rootCmd.Flags().BoolVarP(&checkOnly, "check", "c", false, "Validate only, write nothing")
	rootCmd.Flags().StringVarP(&encodingName, "encoding", "e", "", "Input encoding as an IANA name, e.g. UTF-8, ISO-8859-1")
	rootCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file path, default is standard output")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.Flags().BoolVarP(&needOutputConfTmpl, "output-config-template", "t", false, "Output config template")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

func runCmd(cmd *cobra.Command, args []string) {
	if needOutputConfTmpl {
		outputConfTmpl()
		return
	}

	conf := defaultConf()
	if configPath != "" {
		if err := loadConf(configPath, conf); err != nil {
			log.Errorf("load config failed: %+v", err)
			os.Exit(-1)
		}
	}
	if err := log.Init(conf.Log); err != nil {
		log.Errorf("init log failed: %+v", err)
		os.Exit(-1)
	}
	log.Debugf("loaded minijson config: %+v", spew.Sdump(conf))

	// flags win over the config file
	if !cmd.Flags().Changed("indent") {
		indent = conf.Format.Indent
	}
	if !cmd.Flags().Changed("ascii") {
		ascii = conf.Format.ASCII
	}

	enc, err := resolveEncoding(encodingName)
	if err != nil {
		log.Errorf("resolve encoding failed: %+v", err)
		os.Exit(-1)
	}

	out := os.Stdout
	if outPath != "" && !checkOnly {
		f, err := os.Create(outPath)
		if err != nil {
			log.Errorf("create output failed: %+v",
				xerrors.WrapKV(err, xerrors.KeyOutFile, outPath))
			os.Exit(-1)
		}
		defer f.Close()
		out = f
	}

	if len(args) == 0 {
		if err := process("<stdin>", os.Stdin, out, enc); err != nil {
			logError("<stdin>", err)
			os.Exit(-1)
		}
		return
	}
	for _, file := range args {
		if err := processFile(file, out, enc); err != nil {
			logError(file, err)
			os.Exit(-1)
		}
	}
}

func processFile(file string, out io.Writer, enc encoding.Encoding) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return process(file, f, out, enc)
}

func process(name string, in io.Reader, out io.Writer, enc encoding.Encoding) error {
	e, err := parser.DecodeReader(in, enc)
	if err != nil {
		return err
	}
	log.Debugf("%s: parsed a %s document", name, e.Type())
	if checkOnly {
		return nil
	}
	var opts []element.EncodeOption
	if indent >= 0 {
		opts = append(opts, element.WithIndent(indent))
	}
	if ascii {
		opts = append(opts, element.WithASCII())
	}
	if err := element.Encode(out, e, opts...); err != nil {
		return err
	}
	_, err = io.WriteString(out, "\n")
	return err
}

func resolveEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil // parser defaults to UTF-8
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, xerrors.WrapKV(err, xerrors.KeyEncoding, name)
	}
	if enc == nil {
		return nil, xerrors.ErrorKV("encoding has no Go implementation",
			xerrors.KeyEncoding, name)
	}
	return enc, nil
}

func logError(file string, err error) {
	err = xerrors.WrapKV(err,
		xerrors.KeyFile, file,
		xerrors.KeyEncoding, displayEncoding())
	log.Errorf("process failed: %+v", err)
}

func displayEncoding() string {
	if encodingName == "" {
		return "UTF-8"
	}
	return encodingName
}

func loadConf(path string, out any) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return xerrors.Wrap(err)
	}
	err = yaml.Unmarshal(d, out)
	if err != nil {
		return xerrors.Wrap(err)
	}
	return nil
}

func outputConfTmpl() {
	d, err := yaml.Marshal(defaultConf())
	if err != nil {
		fmt.Printf("marshal failed: %+v\n", err)
		os.Exit(-1)
	}
	fmt.Println(string(d))
}

func genVersion() string {
	ver := version
	info := minijson.GetVersionInfo()
	if info.Revision != "" {
		ver += fmt.Sprintf(" (%s, %s)", info.Revision, info.Time)
	}
	return ver
}
