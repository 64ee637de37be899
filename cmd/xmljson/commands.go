package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/xmljson-format/go-xmljson/convert"
	"github.com/xmljson-format/go-xmljson/xmlpath"
)

type MainConfig struct {
	Zeros   bool `cli:"name=zeros desc='keep zero-padded numbers as strings'"`
	Compact bool `cli:"name=c aliases=compact desc='compact single-line output'"`
	Color   bool `cli:"name=color desc='encode with color'"`

	Prefix string
	Text   string
	Empty  *convert.EmptyMode
	Rules  *xmlpath.Rules

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{
		Prefix: "@",
		Text:   "#text",
	}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "prefix",
			Description: "attribute key prefix (default @)",
			Type:        cli.NamedFuncOpt(cfg.prefixOpt, "(string)"),
		},
		&cli.Opt{
			Name:        "text",
			Description: "key for text content of elements with attributes (default #text)",
			Type:        cli.NamedFuncOpt(cfg.textOpt, "(string)"),
		},
		&cli.Opt{
			Name:        "empty",
			Description: "empty element handling: object, null or ignore",
			Type:        cli.NamedFuncOpt(cfg.emptyOpt, "(mode)"),
		},
		&cli.Opt{
			Name:        "rules",
			Description: "YAML file of per-path array/type rules",
			Type:        cli.NamedFuncOpt(cfg.rulesOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "xmljson").
		WithSynopsis("xmljson [opts] [files]").
		WithDescription("xmljson converts XML documents to JSON.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xmljsonMain(cfg, cc, args)
		})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) prefixOpt(cc *cli.Context, a string) (any, error) {
	cfg.Prefix = a
	return a, nil
}

func (cfg *MainConfig) textOpt(cc *cli.Context, a string) (any, error) {
	if a == "" {
		return nil, fmt.Errorf("%w: text property name may not be empty", cli.ErrUsage)
	}
	cfg.Text = a
	return a, nil
}

func (cfg *MainConfig) emptyOpt(cc *cli.Context, a string) (any, error) {
	m, err := convert.ParseEmptyMode(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	cfg.Empty = &m
	return m, nil
}

func (cfg *MainConfig) rulesOpt(cc *cli.Context, a string) (any, error) {
	rules, err := xmlpath.LoadRulesFile(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	cfg.Rules = rules
	return nil, nil
}
