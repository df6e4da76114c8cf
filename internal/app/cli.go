package app

import (
	"flag"
)

type CLIOpts struct {
	doLog      bool
	configPath string
	snapshot   string
}

func parseCLIOpts(args []string) (CLIOpts, error) {
	var opt CLIOpts
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.BoolVar(&opt.doLog, "log", false, "Print debugging output to stdout")
	fs.StringVar(&opt.configPath, "config", "", "Use the specified config file instead of the per-user one")
	fs.StringVar(&opt.snapshot, "snapshot", "", "Render the initial drawing to the specified PNG file and exit")
	err := fs.Parse(args[1:])

	return opt, err
}
