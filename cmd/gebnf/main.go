package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gebnf/grammar"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI, where users may enter EBNF definitions
// and inspect the normalized grammar and its FIRST and FOLLOW sets.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	export := flag.String("export", "", "Write analysis of grammar file as YAML and exit")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	if *export == "" {
		pterm.Info.Println("Welcome to gebnf") // colored welcome message
	}
	tracer().Infof("Trace level is %s", *tlevel)
	setTraceLevels(traceLevel(*tlevel))
	//
	name, source := "G", ""
	if flag.NArg() > 0 {
		b, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(2)
		}
		name = strings.TrimSuffix(filepath.Base(flag.Arg(0)), filepath.Ext(flag.Arg(0)))
		source = string(b)
	}
	session := NewSession(name)
	if source != "" {
		if err := session.Add(source); err != nil {
			tracer().Errorf("%v", err)
			if *export != "" {
				os.Exit(2)
			}
		}
	}
	if *export != "" {
		if err := exportToFile(session, *export); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("gebnf> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{
		session: session,
		repl:    repl,
		out:     os.Stdout,
	}
	//
	// load an init file and start receiving commands / definitions
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func exportToFile(session *Session, filename string) error {
	A, err := session.Analysis()
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = exportAnnotation(A, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Intp is our interpreter object
type Intp struct {
	session *Session
	repl    *readline.Instance
	out     io.Writer
	pending []string // lines of an incomplete definition
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line != "" {
			if _, err := intp.Eval(line); err != nil {
				tracer().Errorf("Error line %d: "+err.Error(), lineno)
			}
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
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
		quit, err := intp.Eval(line)
		if len(intp.pending) > 0 {
			intp.repl.SetPrompt("   ...> ")
		} else {
			intp.repl.SetPrompt("gebnf> ")
		}
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

// Eval evaluates a line of input: either a command or (part of) an EBNF
// definition. Definition text is collected until a line ends with ';' or '.'.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") && len(intp.pending) == 0 {
		return intp.Execute(strings.Fields(line))
	}
	intp.pending = append(intp.pending, line)
	if !strings.HasSuffix(line, ";") && !strings.HasSuffix(line, ".") {
		return false, nil
	}
	text := strings.Join(intp.pending, "\n")
	intp.pending = nil
	if err := intp.session.Add(text); err != nil {
		var unknown *grammar.UnknownIdentifierError
		if errors.As(err, &unknown) { // probably defined later on
			pterm.Warning.Println(err.Error())
			return false, nil
		}
		return false, err
	}
	if G, err := intp.session.Store(); err == nil {
		pterm.Info.Printf("grammar %s has %d nonterminals\n", G.Name, G.Size())
	}
	return false, nil
}

// Execute runs a command, given as a list of words starting with ':'.
func (intp *Intp) Execute(args []string) (bool, error) {
	cmd, arg := args[0], strings.Join(args[1:], " ")
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":help", ":h":
		fmt.Fprintln(intp.out, "commands: :dump, :first NAME, :follow NAME, :sets, :reset, :quit")
	case ":reset":
		intp.session.Reset()
		pterm.Info.Println("all definitions cleared")
	case ":dump":
		G, err := intp.session.Store()
		if err != nil {
			return false, err
		}
		return false, intp.printTree(G)
	case ":first", ":follow":
		if arg == "" {
			return false, fmt.Errorf("usage: %s NAME", cmd)
		}
		id, err := intp.session.Lookup(arg)
		if err != nil {
			return false, err
		}
		A, err := intp.session.Analysis()
		if err != nil {
			return false, err
		}
		if cmd == ":first" {
			pterm.Info.Printf("FIRST(%s) = %v\n", intp.session.Label(id), A.First(grammar.NonTerm(id)))
		} else {
			pterm.Info.Printf("FOLLOW(%s) = %v\n", intp.session.Label(id), A.Follow(id))
		}
	case ":sets":
		A, err := intp.session.Analysis()
		if err != nil {
			return false, err
		}
		return false, intp.printSets(A)
	default:
		return false, fmt.Errorf("unknown command %s, try :help", cmd)
	}
	return false, nil
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func setTraceLevels(level tracing.TraceLevel) {
	tracer().SetTraceLevel(level)
	for _, key := range []string{"gebnf.grammar", "gebnf.ebnf", "gebnf.scanner"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}
