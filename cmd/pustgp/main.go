package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/johker/pustgp"
)

const (
	appName     = "pustgp"
	historyFile = ".pustgp_history"
	promptMain  = "==> "
)

var banner = fmt.Sprintf("pustgp %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", pustgp.Version)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(pustgp.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %[1]s <command> [flags]

Commands:
  run [-config file.yaml] [-steps n] <program.push>
        Parse and execute a Push program, then dump the final stacks.
  repl  Interactive session; each line is parsed and run against one
        persistent state.
  version
`, appName)
}

// loadLimits resolves the run limits from flags: an optional YAML config
// file, with -steps overriding its step budget.
func loadLimits(configPath string, steps int) (pustgp.Config, error) {
	cfg := pustgp.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = pustgp.LoadConfig(configPath)
		if err != nil {
			return pustgp.Config{}, err
		}
	}
	if steps > 0 {
		cfg.MaxSteps = steps
	}
	return cfg, nil
}

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML limits file")
	steps := fs.Int("steps", 0, "maximum interpreter steps (overrides config)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "run: expected exactly one program file")
		return 2
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	cfg, err := loadLimits(*configPath, *steps)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}

	set := pustgp.NewInstructionSet()
	set.Load()
	program, err := pustgp.Parse(string(src), set)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(pustgp.WrapErrorWithSource(err, string(src)).Error()))
		return 1
	}

	st := pustgp.NewPushState(cfg)
	reason := pustgp.NewInterpreter(set, cfg).RunProgram(program, st)
	fmt.Printf("halt: %s\n", reason)
	fmt.Print(st.Dump())
	return 0
}

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	set := pustgp.NewInstructionSet()
	set.Load()
	cfg := pustgp.DefaultConfig()
	cfg.MaxSteps = 100000 // interactive sessions should not hang on a Y combinator
	ip := pustgp.NewInterpreter(set, cfg)
	st := pustgp.NewPushState(cfg)

	for {
		line, err := ln.Prompt(promptMain)
		if err != nil {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			case ":reset":
				st.Reset()
				continue
			default:
				fmt.Println("unknown command. Type :quit to exit, :reset to clear the state.")
				continue
			}
		}

		program, perr := pustgp.Parse(line, set)
		if perr != nil {
			fmt.Fprintln(os.Stderr, red(pustgp.WrapErrorWithSource(perr, line).Error()))
			continue
		}
		reason := ip.RunProgram(program, st)
		if reason != pustgp.HaltSuccess {
			fmt.Printf("halt: %s\n", reason)
		}
		fmt.Print(st.Dump())
		ln.AppendHistory(line)
	}
}
