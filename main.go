package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heathj/html5tok/parser"
)

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

type options struct {
	state        string
	lastStartTag string
	format       string
	cdata        bool
	coalesce     bool
	eof          bool
	errors       bool
	contentModel bool
	debug        bool
}

var initialStates = map[string]parser.State{
	"data":      parser.DataState,
	"rcdata":    parser.RCDataState,
	"rawtext":   parser.RawTextState,
	"script":    parser.ScriptDataState,
	"plaintext": parser.PlaintextState,
	"cdata":     parser.CDataSectionState,
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "html5tok [file...]",
		Short: "Tokenize HTML documents",
		Long: `html5tok runs each file (or stdin when no file is given) through the
HTML tokenizer and prints the resulting tokens.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return tokenizeReader(opts, "<stdin>", stdin, stdout, stderr)
			}
			for _, name := range args {
				f, err := os.Open(name)
				if err != nil {
					return errors.Wrapf(err, "opening %s", name)
				}
				err = tokenizeReader(opts, name, f, stdout, stderr)
				f.Close()
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.state, "state", "data", "initial state: data, rcdata, rawtext, script, plaintext or cdata")
	flags.StringVar(&opts.lastStartTag, "last-start-tag", "", "name of the last start tag, used to close rcdata, rawtext and script")
	flags.StringVar(&opts.format, "format", "text", "output format: text, yaml or html")
	flags.BoolVar(&opts.cdata, "cdata", false, "treat <![CDATA[ as a CDATA section")
	flags.BoolVar(&opts.coalesce, "coalesce", true, "merge adjacent character tokens")
	flags.BoolVar(&opts.eof, "eof", false, "print the end-of-file token")
	flags.BoolVar(&opts.errors, "errors", false, "print parse errors to stderr")
	flags.BoolVar(&opts.contentModel, "content-model", false, "switch states after script, style, title and the other raw text elements")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log parse errors as they happen")
	return cmd
}

func tokenizeReader(opts *options, name string, r io.Reader, stdout, stderr io.Writer) error {
	input, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}

	state, ok := initialStates[strings.ToLower(opts.state)]
	if !ok {
		return errors.Errorf("unknown state %q", opts.state)
	}
	tokOpts := []parser.Option{
		parser.WithInitialState(state),
		parser.WithLastStartTag(strings.ToLower(opts.lastStartTag)),
		parser.WithCDATA(opts.cdata),
		parser.WithLogger(logrus.StandardLogger()),
	}
	if opts.coalesce {
		tokOpts = append(tokOpts, parser.WithCoalescedText())
	}
	if opts.eof {
		tokOpts = append(tokOpts, parser.WithEOFToken())
	}

	var (
		p      *parser.HTMLTokenizer
		tokens []parser.Token
	)
	if opts.contentModel {
		driver := parser.NewParser(input, tokOpts...)
		tokens = driver.Tokens()
		p = driver.Tokenizer
	} else {
		p = parser.NewHTMLTokenizer(input, tokOpts...)
		tokens = p.Tokens()
	}

	switch opts.format {
	case "text":
		for _, t := range tokens {
			fmt.Fprintf(stdout, "%d\t%s\n", t.Position, t)
		}
	case "html":
		fmt.Fprint(stdout, parser.SerializeTokens(tokens))
	case "yaml":
		if err := writeYAML(stdout, name, tokens); err != nil {
			return err
		}
	default:
		return errors.Errorf("unknown format %q", opts.format)
	}

	if opts.errors {
		loc := parser.NewLocator(input)
		for _, e := range p.Errors() {
			line, col := loc.Position(e.Offset)
			fmt.Fprintf(stderr, "%s:%d:%d: %s\n", name, line, col, e.Code)
		}
	}
	return nil
}

type yamlAttribute struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type yamlToken struct {
	Type        string          `yaml:"type"`
	Position    int             `yaml:"position"`
	Name        string          `yaml:"name,omitempty"`
	Data        string          `yaml:"data,omitempty"`
	Attributes  []yamlAttribute `yaml:"attributes,omitempty"`
	SelfClosing bool            `yaml:"selfClosing,omitempty"`
	ForceQuirks bool            `yaml:"forceQuirks,omitempty"`
	PublicID    *string         `yaml:"publicId,omitempty"`
	SystemID    *string         `yaml:"systemId,omitempty"`
}

type yamlDocument struct {
	Source string      `yaml:"source"`
	Tokens []yamlToken `yaml:"tokens"`
}

func writeYAML(w io.Writer, name string, tokens []parser.Token) error {
	doc := yamlDocument{Source: name, Tokens: make([]yamlToken, 0, len(tokens))}
	for _, t := range tokens {
		yt := yamlToken{
			Type:        t.TokenType.String(),
			Position:    t.Position,
			Name:        t.TagName,
			Data:        t.Data,
			SelfClosing: t.SelfClosing,
			ForceQuirks: t.ForceQuirks,
		}
		for _, a := range t.Attributes {
			yt.Attributes = append(yt.Attributes, yamlAttribute{Name: a.Name, Value: a.Value})
		}
		if t.HasPublicIdentifier {
			id := t.PublicIdentifier
			yt.PublicID = &id
		}
		if t.HasSystemIdentifier {
			id := t.SystemIdentifier
			yt.SystemID = &id
		}
		doc.Tokens = append(doc.Tokens, yt)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return enc.Close()
}
