// Package ui implements the interactive console front end: the menu loop,
// result and statistics formatting, and the external image viewer.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/adeilh/metcat/cache"
	"github.com/adeilh/metcat/catalog"
	"github.com/adeilh/metcat/museum"
	"github.com/adeilh/metcat/nationality"
)

// Viewer opens artwork images. Satisfied by *ImageViewer; tests stub it.
type Viewer interface {
	Show(ctx context.Context, artwork museum.Artwork) error
	Cleanup()
}

// Console runs the interactive menu against the catalog services. All state
// it shows (statistics, cached results) comes from the single shared store.
type Console struct {
	search        *catalog.SearchService
	artworks      *catalog.ArtworkService
	nationalities *nationality.Manager
	store         *cache.Store
	viewer        Viewer
	log           *slog.Logger

	in  *bufio.Scanner
	out io.Writer
}

type consoleConfig struct {
	in     io.Reader
	out    io.Writer
	viewer Viewer
	log    *slog.Logger
}

// ConsoleOption customizes a Console.
type ConsoleOption func(*consoleConfig)

// WithInput sets the reader user input comes from. Defaults to stdin.
func WithInput(r io.Reader) ConsoleOption {
	return func(cfg *consoleConfig) {
		if r != nil {
			cfg.in = r
		}
	}
}

// WithOutput sets the writer the menu renders to. Defaults to stdout.
func WithOutput(w io.Writer) ConsoleOption {
	return func(cfg *consoleConfig) {
		if w != nil {
			cfg.out = w
		}
	}
}

// WithViewer sets the image viewer. Defaults to NewImageViewer.
func WithViewer(v Viewer) ConsoleOption {
	return func(cfg *consoleConfig) {
		if v != nil {
			cfg.viewer = v
		}
	}
}

// WithConsoleLogger sets the logger. Defaults to a discarding logger.
func WithConsoleLogger(log *slog.Logger) ConsoleOption {
	return func(cfg *consoleConfig) {
		if log != nil {
			cfg.log = log
		}
	}
}

// NewConsole wires the menu to the services and the shared store.
func NewConsole(search *catalog.SearchService, artworks *catalog.ArtworkService, nationalities *nationality.Manager, store *cache.Store, opts ...ConsoleOption) *Console {
	cfg := consoleConfig{
		in:  os.Stdin,
		out: os.Stdout,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.viewer == nil {
		cfg.viewer = NewImageViewer()
	}
	return &Console{
		search:        search,
		artworks:      artworks,
		nationalities: nationalities,
		store:         store,
		viewer:        cfg.viewer,
		log:           cfg.log,
		in:            bufio.NewScanner(cfg.in),
		out:           cfg.out,
	}
}

const menu = `
MetMuseum catalog
-----------------
1. Browse by department
2. Search by artist nationality
3. Search by artist name
4. Artwork details by id
5. Cache statistics
6. Clear cache
7. Exit
`

// Run drives the menu loop until the user exits, input runs out, or the
// context is canceled. The image viewer's temp files are removed on return.
func (c *Console) Run(ctx context.Context) error {
	defer c.viewer.Cleanup()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, menu)
		choice, ok := c.prompt("Choice: ")
		if !ok {
			return nil
		}

		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			err = c.browseDepartments(ctx)
		case "2":
			err = c.searchNationality(ctx)
		case "3":
			err = c.searchArtist(ctx)
		case "4":
			err = c.showArtwork(ctx)
		case "5":
			c.showStats()
		case "6":
			c.clearCache()
		case "7":
			fmt.Fprintln(c.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown option.")
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Warn("menu action failed", "error", err)
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
}

func (c *Console) browseDepartments(ctx context.Context) error {
	departments, err := c.search.Departments(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "\nDepartments:")
	for _, d := range departments {
		fmt.Fprintf(c.out, "%4d. %s\n", d.ID, d.Name)
	}

	raw, ok := c.prompt("Department id: ")
	if !ok {
		return nil
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %q", catalog.ErrInvalidDepartment, raw)
	}
	artworks, err := c.search.ByDepartment(ctx, id)
	if err != nil {
		return err
	}
	c.listArtworks(artworks)
	return nil
}

func (c *Console) searchNationality(ctx context.Context) error {
	if available, err := c.nationalities.Available(); err == nil && len(available) > 0 {
		fmt.Fprintf(c.out, "\n%d nationalities loaded, e.g. %s\n", len(available), strings.Join(head(available, 5), ", "))
	}
	nat, ok := c.prompt("Nationality: ")
	if !ok {
		return nil
	}
	artworks, err := c.search.ByNationality(ctx, nat)
	if err != nil {
		return err
	}
	c.listArtworks(artworks)
	return nil
}

func (c *Console) searchArtist(ctx context.Context) error {
	name, ok := c.prompt("Artist name: ")
	if !ok {
		return nil
	}
	artworks, err := c.search.ByArtist(ctx, name)
	if err != nil {
		return err
	}
	c.listArtworks(artworks)
	return nil
}

func (c *Console) showArtwork(ctx context.Context) error {
	raw, ok := c.prompt("Artwork id: ")
	if !ok {
		return nil
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %q", museum.ErrInvalidArtworkID, raw)
	}
	artwork, err := c.artworks.Artwork(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, formatArtworkDetails(artwork))

	if !artwork.HasImage() {
		return nil
	}
	answer, ok := c.prompt("Open image? [y/N]: ")
	if !ok || !strings.EqualFold(strings.TrimSpace(answer), "y") {
		return nil
	}
	if err := c.viewer.Show(ctx, artwork); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Image opened in external viewer.")
	return nil
}

func (c *Console) showStats() {
	fmt.Fprint(c.out, "\n"+formatStats(c.store.Stats()))
}

func (c *Console) clearCache() {
	c.store.Clear()
	fmt.Fprintln(c.out, "Cache cleared.")
}

func (c *Console) listArtworks(artworks []museum.Artwork) {
	if len(artworks) == 0 {
		fmt.Fprintln(c.out, "No artworks found.")
		return
	}
	fmt.Fprintf(c.out, "\n%d artworks:\n", len(artworks))
	for i, artwork := range artworks {
		fmt.Fprintln(c.out, formatArtworkLine(i+1, artwork))
	}
}

// prompt prints the label and reads one line. ok is false once input is
// exhausted, which ends the menu loop.
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func head(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
