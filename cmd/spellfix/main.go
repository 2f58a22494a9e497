package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/JackWReid/spellfix/internal/config"
	"github.com/JackWReid/spellfix/internal/host"
	"github.com/JackWReid/spellfix/internal/linemode"
	"github.com/JackWReid/spellfix/internal/logger"
	"github.com/JackWReid/spellfix/internal/spell"
	"github.com/JackWReid/spellfix/internal/store"
	"github.com/JackWReid/spellfix/internal/suggest"
	"github.com/JackWReid/spellfix/internal/tui"
)

var Version = "dev"

// setFlags collects repeated -set option=value flags.
type setFlags []string

func (s *setFlags) String() string     { return strings.Join(*s, ",") }
func (s *setFlags) Set(v string) error { *s = append(*s, v); return nil }

func main() {
	var sets setFlags
	configPath := flag.String("config", config.DefaultPath(), "config file")
	dbPath := flag.String("db", "", "database path (overrides config)")
	logDir := flag.String("log", "", "log directory (overrides config)")
	debug := flag.Bool("debug", false, "log engine events")
	version := flag.Bool("version", false, "print version and exit")
	flag.Var(&sets, "set", "set and save an option, as option=value (repeatable)")
	flag.Parse()

	if *version {
		fmt.Println("spellfix", Version)
		return
	}
	if err := run(*configPath, *dbPath, *logDir, *debug, sets); err != nil {
		fmt.Fprintf(os.Stderr, "spellfix: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, dbPath, logDir string, debug bool, sets []string) error {
	file, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		file.Database = dbPath
	}
	if logDir != "" {
		file.LogDir = logDir
	}

	if err := logger.Init(file.LogDir); err != nil {
		return err
	}
	defer logger.Close()
	if debug {
		logger.SetLevel("debug")
	}
	logger.Info("spellfix %s starting, config %s", Version, configPath)

	db, err := store.Open(file.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	options, err := loadOptions(file, db, sets)
	if err != nil {
		return err
	}

	checker, err := openChecker(file, db)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	var palette suggest.Palette = suggest.PlainPalette
	if interactive {
		palette = suggest.TermPalette(termenv.ColorProfile())
	}

	session := host.NewSession(checker, options.Options(), palette)
	session.Engine().Watch(options)

	if !interactive {
		_, err := linemode.Run(os.Stdin, os.Stdout, session)
		return err
	}
	return tui.Run(session, options)
}

// loadOptions layers the config file, saved values and -set flags.
func loadOptions(file *config.File, db *store.Store, sets []string) (*config.Store, error) {
	options := config.NewStore(db)
	if err := options.Load(file.Options); err != nil {
		return nil, err
	}
	saved, err := db.LoadOptions()
	if err != nil {
		return nil, fmt.Errorf("loading saved options: %w", err)
	}
	if err := options.Load(saved); err != nil {
		logger.Error("ignoring saved options: %v", err)
	}
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("-set %q: expected option=value", s)
		}
		if err := options.Set(k, v); err != nil {
			return nil, err
		}
	}
	return options, nil
}

func openChecker(file *config.File, db *store.Store) (*spell.Checker, error) {
	var dicts []spell.Dictionary
	for _, cfg := range file.Dictionaries {
		d, err := spell.Open(cfg)
		if err != nil {
			return nil, err
		}
		personal, err := db.Words(cfg.Name)
		if err != nil {
			return nil, fmt.Errorf("loading personal words for %s: %w", cfg.Name, err)
		}
		for _, w := range personal {
			d.Add(w)
		}
		logger.Info("dictionary %s (%s): %d personal words", cfg.Name, cfg.Engine, len(personal))
		dicts = append(dicts, d)
	}
	return spell.NewChecker(db, dicts...), nil
}
