// Command debtag inspects Debian tag files: control files, Packages and
// Sources indices, Release files and the dpkg status database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/etnz/debtag/deb"
	"github.com/etnz/debtag/tagfile"
)

// main is the entry point for the debtag CLI tool.
func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "parse":
		runParse(os.Args[2:])
	case "get":
		runGet(os.Args[2:])
	case "lint":
		runLint(os.Args[2:])
	case "status":
		runStatus(os.Args[2:])
	case "control":
		runControl(os.Args[2:])
	case "release":
		runRelease(os.Args[2:])
	case "sign":
		runSign(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

// printUsage prints the help message to stdout.
func printUsage() {
	fmt.Println("Usage: debtag <command> [flags] [file...]")
	fmt.Println("\nCommands:")
	fmt.Println("  parse    Print every paragraph of a tag file")
	fmt.Println("  get      Print one field of every paragraph")
	fmt.Println("  lint     Check tag files for syntax errors")
	fmt.Println("  status   List packages from the dpkg status database")
	fmt.Println("  control  Print the control paragraph of a .deb")
	fmt.Println("  release  Print a Release or InRelease file")
	fmt.Println("  sign     Clearsign a Release file into an InRelease file")
	fmt.Println("\nFiles ending in .gz or .xz are decompressed, '-' reads stdin.")
}

// newFlagSet creates the flag set of a subcommand with the shared -config flag.
func newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	confPath := fs.String("config", "debtag.yaml", "Path to config file (.yaml or .toml)")
	return fs, confPath
}

func mustConfig(path string) *Config {
	config, err := decodeConfig(path)
	if err != nil {
		fmt.Printf("Fatal: Could not read config file %s: %v\n", path, err)
		os.Exit(1)
	}
	return config
}

func mustParse(path string) []*tagfile.Section {
	content, err := readInput(path)
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}
	sections, err := tagfile.Parse(content)
	if err != nil {
		fmt.Printf("Fatal: %s: %v\n", path, err)
		os.Exit(1)
	}
	return sections
}

// runParse executes the 'parse' subcommand.
func runParse(args []string) {
	fs, confPath := newFlagSet("parse")
	output := fs.String("output", "", "Output format: yaml or json (default from config)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		log.Fatal("parse expects exactly one file")
	}
	config := mustConfig(*confPath)
	format := config.Output
	if *output != "" {
		format = *output
	}

	sections := mustParse(fs.Arg(0))
	if err := encodeSections(os.Stdout, format, sections); err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}
}

// runGet executes the 'get' subcommand.
func runGet(args []string) {
	fs, _ := newFlagSet("get")
	field := fs.String("field", "", "Field name to print (case-sensitive)")
	def := fs.String("default", "", "Value printed for paragraphs without the field")
	fs.Parse(args)

	if *field == "" {
		log.Fatal("--field is required")
	}
	if fs.NArg() != 1 {
		log.Fatal("get expects exactly one file")
	}
	hasDefault := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "default" {
			hasDefault = true
		}
	})

	for _, s := range mustParse(fs.Arg(0)) {
		value, ok := s.Get(*field)
		if !ok {
			if !hasDefault {
				continue
			}
			value = *def
		}
		fmt.Println(value)
	}
}

// runLint executes the 'lint' subcommand.
func runLint(args []string) {
	fs, _ := newFlagSet("lint")
	watch := fs.Bool("watch", false, "Lint again whenever a file changes")
	fs.Parse(args)

	if fs.NArg() == 0 {
		log.Fatal("lint expects at least one file")
	}
	listener := func(e fmt.Stringer) { fmt.Println(e) }

	ok := true
	for _, path := range fs.Args() {
		if !lintFile(path, listener) {
			ok = false
		}
	}

	if *watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := watchFiles(ctx, fs.Args(), listener); err != nil {
			fmt.Printf("Fatal: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if !ok {
		os.Exit(1)
	}
}

// runStatus executes the 'status' subcommand.
func runStatus(args []string) {
	fs, confPath := newFlagSet("status")
	file := fs.String("file", "", "Status file (default from config)")
	all := fs.Bool("all", false, "Include packages that are not fully installed")
	fs.Parse(args)

	config := mustConfig(*confPath)
	path := config.StatusFile
	if *file != "" {
		path = *file
	}

	content, err := readInput(path)
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}
	pkgs, err := deb.ParseStatus(content)
	if err != nil {
		fmt.Printf("Fatal: %s: %v\n", path, err)
		os.Exit(1)
	}
	if !*all {
		pkgs = deb.Installed(pkgs)
	}

	for _, p := range pkgs {
		fmt.Printf("%-32s %-24s %-6s %s\n", p.Metadata.Package, p.Metadata.Version, p.Metadata.Architecture, p.Status)
	}
}

// runControl executes the 'control' subcommand.
func runControl(args []string) {
	fs, _ := newFlagSet("control")
	file := fs.String("file", string(deb.FileControl), "Control archive file to print: control, md5sums or conffiles")
	fs.Parse(args)

	if fs.NArg() != 1 {
		log.Fatal("control expects exactly one .deb file")
	}
	switch deb.ControlFile(*file) {
	case deb.FileControl, deb.FileMd5sums, deb.FileConffiles:
	default:
		log.Fatalf("unknown control file %q", *file)
	}
	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if deb.ControlFile(*file) != deb.FileControl {
		content, err := deb.ExtractControlFile(f, deb.ControlFile(*file))
		if err != nil {
			fmt.Printf("Fatal: %s: %v\n", fs.Arg(0), err)
			os.Exit(1)
		}
		fmt.Print(content)
		return
	}

	m, err := deb.ReadDebMetadata(f)
	if err != nil {
		fmt.Printf("Fatal: %s: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}
	fmt.Print(m.String())
}

// runRelease executes the 'release' subcommand.
func runRelease(args []string) {
	fs, confPath := newFlagSet("release")
	keyringPath := fs.String("keyring", "", "Armored public keys verifying InRelease (default from config)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		log.Fatal("release expects exactly one file")
	}
	config := mustConfig(*confPath)
	if *keyringPath == "" {
		*keyringPath = config.Keyring
	}

	path := fs.Arg(0)
	content, err := readInput(path)
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}

	release, err := loadRelease(path, content, *keyringPath)
	if err != nil {
		fmt.Printf("Fatal: %s: %v\n", path, err)
		os.Exit(1)
	}
	if err := encodeRelease(os.Stdout, release); err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}
}

// runSign executes the 'sign' subcommand.
func runSign(args []string) {
	fs, _ := newFlagSet("sign")
	keyPath := fs.String("key", "", "ASCII-armored private key file (default: $GPG_PRIVATE_KEY)")
	output := fs.String("o", "", "Write the InRelease file here instead of stdout")
	public := fs.String("public", "", "Also export the armored public key to this path")
	fs.Parse(args)

	if fs.NArg() != 1 {
		log.Fatal("sign expects exactly one Release file")
	}
	key, err := signingKey(*keyPath)
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}

	path := fs.Arg(0)
	content, err := readInput(path)
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}
	signed, err := signRelease(content, key)
	if err != nil {
		fmt.Printf("Fatal: %s: %v\n", path, err)
		os.Exit(1)
	}

	if *public != "" {
		if err := exportPublicKey(key, *public); err != nil {
			fmt.Printf("Fatal: %v\n", err)
			os.Exit(1)
		}
	}

	if *output == "" {
		os.Stdout.Write(signed)
		return
	}
	if err := os.WriteFile(*output, signed, 0644); err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}
}

// loadRelease parses content as an InRelease file when it is clearsigned,
// and as a plain Release file otherwise.
func loadRelease(path, content, keyringPath string) (*deb.Release, error) {
	signed := filepath.Base(path) == "InRelease" ||
		strings.HasPrefix(content, "-----BEGIN PGP SIGNED MESSAGE-----")
	if !signed {
		if keyringPath != "" {
			fmt.Fprintf(os.Stderr, "Warning: %s is not signed, keyring ignored\n", path)
		}
		return deb.ParseRelease(content)
	}

	var keyring string
	if keyringPath != "" {
		data, err := os.ReadFile(keyringPath)
		if err != nil {
			return nil, fmt.Errorf("reading keyring: %w", err)
		}
		keyring = string(data)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: no keyring configured, %s signature not verified\n", path)
	}
	return deb.ParseInRelease([]byte(content), keyring)
}
