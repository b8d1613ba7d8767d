// Package cmd implements the mcs command line application to manage the marina.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/marina"
	"github.com/etnz/marina/config"
	"github.com/etnz/marina/logger"
	"github.com/fatih/color"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&inventoryCmd{}, "boats")
	c.Register(&addCmd{}, "boats")
	c.Register(&removeCmd{}, "boats")
	c.Register(&paymentCmd{}, "boats")
	c.Register(&monthCmd{}, "boats")
	c.Register(&shellCmd{}, "boats")

	c.Register(&fmtCmd{}, "file")
	c.Register(&queryCmd{}, "file")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// Commands lists the subcommands, for completion.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&inventoryCmd{}, &addCmd{}, &removeCmd{}, &paymentCmd{}, &monthCmd{}, &shellCmd{},
		&fmtCmd{}, &queryCmd{}, &topicCmd{}, &assistCmd{},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("f", "", "Path to the inventory file (default $MCS_FILE, then the config file's)")
var configFile = flag.String("config", "", "Path to the TOML configuration file (default $MCS_CONFIG, then marina.toml)")
var verbose = flag.Bool("v", false, "Verbose logging (default $MCS_VERBOSE)")

// errNoFile is reported when no inventory file is named anywhere.
var errNoFile = errors.New("no inventory file: use -f, $MCS_FILE or the config file")

var warn = color.New(color.FgYellow)

// ConfigPath returns the configuration file in use.
func ConfigPath() string {
	if *configFile != "" {
		return *configFile
	}
	if p := os.Getenv("MCS_CONFIG"); p != "" {
		return p
	}
	return "marina.toml"
}

func isVerbose() bool {
	if *verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv("MCS_VERBOSE"))
	return v
}

var baseLogger *zap.Logger

// Logger returns the application logger.
func Logger() *zap.Logger {
	if baseLogger == nil {
		l, err := logger.New(isVerbose())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create the logger: %v\n", err)
			l = zap.NewNop()
		}
		baseLogger = l
	}
	return baseLogger
}

// InventoryPath returns the inventory file named by the flag, the environment or cfg, in that order.
func InventoryPath(cfg *config.Config) (string, error) {
	switch {
	case *inventoryFile != "":
		return *inventoryFile, nil
	case os.Getenv("MCS_FILE") != "":
		return os.Getenv("MCS_FILE"), nil
	case cfg.File != "":
		return cfg.File, nil
	}
	return "", errNoFile
}

// session holds what a command needs to work on the inventory file.
type session struct {
	path string
	inv  *marina.Inventory
	log  *zap.Logger
}

// openSession loads the configuration and the inventory file.
//
// Skipped lines are reported as warnings on stderr, any other error is returned.
func openSession() (*session, error) {
	cfg, err := config.Load(ConfigPath())
	if err != nil {
		return nil, err
	}
	path, err := InventoryPath(cfg)
	if err != nil {
		return nil, err
	}
	log := logger.Named(Logger(), "inventory")
	opts := append(cfg.Options(), marina.WithLogger(log))
	inv, err := marina.OpenInventory(path, opts...)
	if marina.IsFatal(err) {
		return nil, err
	}
	if err != nil {
		reportSkipped(os.Stderr, err)
	}
	return &session{path: path, inv: inv, log: log}, nil
}

// save writes the inventory back to its file.
func (s *session) save() error {
	if err := marina.SaveInventory(s.path, s.inv); err != nil {
		return err
	}
	s.log.Debug("inventory saved", zap.String("file", s.path), zap.Int("boats", s.inv.Len()))
	return nil
}

// reportSkipped prints one warning per line that could not be loaded.
func reportSkipped(w io.Writer, err error) {
	skipped := []error{err}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			skipped = joined.Unwrap()
			break
		}
	}
	for _, e := range skipped {
		warn.Fprintf(w, "Warning: skipped %v\n", e)
	}
}

// failure prints err and returns the matching exit status.
func failure(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, errNoFile) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// BoatNames returns the names in the inventory file, or nothing if it cannot be read.
func BoatNames() []string {
	cfg, err := config.Load(ConfigPath())
	if err != nil {
		return nil
	}
	path, err := InventoryPath(cfg)
	if err != nil {
		return nil
	}
	boats, _ := marina.LoadFile(path)
	names := make([]string, 0, len(boats))
	for _, b := range boats {
		names = append(names, b.Name)
	}
	return names
}
