package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/forgelabs/cardforge/cardforge"
	"github.com/forgelabs/cardforge/cardforge/catalog"
	"github.com/forgelabs/cardforge/cardforge/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	var cfg cardforge.Config
	configMissing := false
	if loaded, err := cardforge.LoadConfig(*configPath); err != nil {
		cfg = cardforge.DefaultConfig()
		configMissing = true
	} else {
		cfg = *loaded
	}

	slog.SetDefault(logger.New(cfg.Log.SlogLevel(), cfg.Log.Format, cfg.Log.AddSource))
	if configMissing {
		logger.LogSystem("No config file found, using defaults",
			slog.String("path", *configPath))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	session, err := cardforge.New(ctx, cfg)
	if err != nil {
		slog.Error("Failed to start session", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Printf("CardForge: %d cards loaded, %d recipes known\n",
		session.Catalog.Len(), len(session.Catalog.Recipes()))
	fmt.Println(`Type "help" for commands.`)

	shell := &shell{session: session}
	shell.run(ctx)
}

type shell struct {
	session *cardforge.Session

	// pending fusion preview awaiting confirm/cancel
	pending *catalog.FusionCard
}

func (s *shell) run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[%s]> ", s.session.ActiveDeck().Name)
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		cmd = strings.ToLower(cmd)
		start := time.Now()
		quit := s.dispatch(cmd, rest)
		logger.LogCommand(cmd, time.Since(start), nil)
		if quit {
			return
		}
	}
}

// dispatch runs one shell command and reports whether the loop should exit.
func (s *shell) dispatch(cmd, rest string) bool {
	switch cmd {
	case "help":
		s.help()
	case "cards", "search":
		s.search(rest)
	case "decks":
		s.listDecks()
	case "deck":
		s.selectDeck(rest)
	case "show":
		s.showDeck()
	case "add":
		s.add(rest)
	case "remove", "rm":
		s.remove(rest)
	case "swap":
		s.swap(rest)
	case "place":
		s.place(rest)
	case "rename":
		s.rename(rest)
	case "fuse":
		s.fuse(rest)
	case "confirm", "y":
		s.confirm()
	case "cancel", "n":
		s.cancel()
	case "quit", "exit", "q":
		return true
	default:
		fmt.Printf("Unknown command %q. Type \"help\" for commands.\n", cmd)
	}
	return false
}

func (s *shell) help() {
	fmt.Print(`Commands:
  cards [query] [@category]   list collection, optionally filtered
  decks                       list decks
  deck <1-4>                  select the active deck
  show                        show the active deck's slots
  add <name>                  add a card to the first empty slot
  remove <slot>               clear a slot (1-10)
  swap <slot> <slot>          swap two slots
  place <slot> <name>         place a card into a specific slot
  rename <name>               rename the active deck
  fuse <name> / <name>        preview a fusion
  confirm / cancel            resolve or discard a pending fusion
  quit
`)
}

// parseFilter splits an optional trailing @category token off a query.
func parseFilter(input string) (query string, filter catalog.Category) {
	filter = catalog.CategoryAll
	fields := strings.Fields(input)
	for i, f := range fields {
		if !strings.HasPrefix(f, "@") {
			continue
		}
		name := strings.TrimPrefix(f, "@")
		for _, c := range append(catalog.BaseCategories, catalog.CategoryFusion) {
			if strings.EqualFold(name, string(c)) {
				filter = c
				break
			}
		}
		fields = append(fields[:i], fields[i+1:]...)
		break
	}
	return strings.Join(fields, " "), filter
}

func (s *shell) search(input string) {
	query, filter := parseFilter(input)
	results := s.session.Collection.Search(query, filter)
	if len(results) == 0 {
		fmt.Println("No cards match.")
		return
	}
	for _, c := range results {
		st := c.CardStats()
		fmt.Printf("  %-20s %-8s STR %2d  SPD %2d  DEF %2d  x%d\n",
			c.CardTitle(), c.CardCategory(), st.Str, st.Spd, st.Def,
			s.session.Collection.CopiesAvailable(c))
	}
}

func (s *shell) listDecks() {
	for _, d := range s.session.Decks.Decks() {
		marker := " "
		if d.ID == s.session.ActiveDeck().ID {
			marker = "*"
		}
		fmt.Printf(" %s %d. %-16s (%d/%d)\n", marker, d.ID, d.Name, d.OccupiedCount(), len(d.Slots))
	}
}

func (s *shell) selectDeck(arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("Usage: deck <1-4>")
		return
	}
	if err := s.session.SelectDeck(id); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Active deck: %s\n", s.session.ActiveDeck().Name)
}

func (s *shell) showDeck() {
	deck := s.session.ActiveDeck()
	fmt.Printf("%s (%d/%d)\n", deck.Name, deck.OccupiedCount(), len(deck.Slots))
	for i, c := range deck.Slots {
		if c == nil {
			fmt.Printf("  %2d. (empty)\n", i+1)
			continue
		}
		st := c.CardStats()
		fmt.Printf("  %2d. %-20s STR %2d  SPD %2d  DEF %2d\n", i+1, c.CardTitle(), st.Str, st.Spd, st.Def)
	}
}

// lookup resolves a user-typed name to a collection card, preferring an
// exact substring hit and falling back to fuzzy matching.
func (s *shell) lookup(query string) catalog.Card {
	if query == "" {
		return nil
	}
	if results := s.session.Collection.Search(query, catalog.CategoryAll); len(results) > 0 {
		return results[0]
	}
	return s.session.Collection.FindOne(query)
}

func (s *shell) add(query string) {
	card := s.lookup(query)
	if card == nil {
		fmt.Printf("No card matches %q.\n", query)
		return
	}
	if err := s.session.Decks.AddCard(s.session.ActiveDeck(), card); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Added %s to %s.\n", card.CardTitle(), s.session.ActiveDeck().Name)
}

func (s *shell) remove(arg string) {
	slot, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("Usage: remove <slot>")
		return
	}
	if err := s.session.Decks.RemoveCard(s.session.ActiveDeck(), slot-1); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Slot %d cleared.\n", slot)
}

func (s *shell) swap(args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		fmt.Println("Usage: swap <slot> <slot>")
		return
	}
	a, errA := strconv.Atoi(fields[0])
	b, errB := strconv.Atoi(fields[1])
	if errA != nil || errB != nil {
		fmt.Println("Usage: swap <slot> <slot>")
		return
	}
	if err := s.session.Decks.Swap(s.session.ActiveDeck(), a-1, b-1); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Swapped slots %d and %d.\n", a, b)
}

func (s *shell) place(args string) {
	slotArg, query, _ := strings.Cut(args, " ")
	slot, err := strconv.Atoi(slotArg)
	if err != nil || strings.TrimSpace(query) == "" {
		fmt.Println("Usage: place <slot> <name>")
		return
	}
	card := s.lookup(strings.TrimSpace(query))
	if card == nil {
		fmt.Printf("No card matches %q.\n", query)
		return
	}
	if err := s.session.Decks.PlaceAt(s.session.ActiveDeck(), card, slot-1); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Placed %s.\n", card.CardTitle())
}

func (s *shell) rename(name string) {
	if name == "" {
		fmt.Println("Usage: rename <name>")
		return
	}
	s.session.Decks.Rename(s.session.ActiveDeck(), name)
	fmt.Printf("Deck renamed to %s.\n", name)
}

func (s *shell) fuse(args string) {
	left, right, found := strings.Cut(args, "/")
	if !found {
		fmt.Println("Usage: fuse <name> / <name>")
		return
	}
	a := s.lookup(strings.TrimSpace(left))
	b := s.lookup(strings.TrimSpace(right))
	if a == nil || b == nil {
		fmt.Println("Could not match both cards.")
		return
	}
	preview, err := s.session.ResolveFusion(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	s.pending = preview
	fmt.Printf("%s + %s => %s (%s)\n", a.CardTitle(), b.CardTitle(), preview.Title, preview.Category)
	fmt.Printf("  STR %2d  SPD %2d  DEF %2d\n", preview.Stats.Str, preview.Stats.Spd, preview.Stats.Def)
	fmt.Println(`Type "confirm" to fuse or "cancel" to discard.`)
}

func (s *shell) confirm() {
	if s.pending == nil {
		fmt.Println("Nothing to confirm.")
		return
	}
	fused := s.session.ConfirmFusion(s.pending)
	fmt.Printf("Fused! %s joined the collection (#%d).\n", fused.Title, fused.ID)
	s.pending = nil
}

func (s *shell) cancel() {
	if s.pending == nil {
		fmt.Println("Nothing to cancel.")
		return
	}
	fmt.Println("Fusion discarded.")
	s.pending = nil
}
