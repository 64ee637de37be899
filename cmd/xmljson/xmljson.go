package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/xmljson-format/go-xmljson/convert"
	"github.com/xmljson-format/go-xmljson/encode"
)

func xmljsonMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	conf := cfg.convertConfig()
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := convertArg(conf, cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *MainConfig) convertConfig() *convert.Config {
	opts := []convert.Option{
		convert.LeadingZeroAsString(cfg.Zeros),
		convert.AttrPrefix(cfg.Prefix),
		convert.TextPropName(cfg.Text),
	}
	if cfg.Empty != nil {
		opts = append(opts, convert.EmptyElements(*cfg.Empty))
	}
	if cfg.Rules != nil {
		opts = append(opts, convert.WithRules(cfg.Rules))
	}
	return convert.NewConfig(opts...)
}

func convertArg(conf *convert.Config, cfg *MainConfig, cc *cli.Context, arg string) error {
	var in io.Reader
	if arg == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		in = f
	}
	d, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	node, err := convert.Bytes(d, conf)
	if err != nil {
		return fmt.Errorf("error converting %s: %w", arg, err)
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Compact(cfg.Compact),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}
