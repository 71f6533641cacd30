package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"chess-bot/engine"
	"chess-bot/rules"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Depth-only searches are not bounded by the clock.
const unlimitedTime = 24 * time.Hour

func main() {
	backend := flag.String("backend", rules.DefaultBackend, "rules backend: "+strings.Join(rules.Backends(), ", "))
	hashMB := flag.Int("hash", engine.DefaultOptions().HashMB, "transposition table size in MB")
	tableMode := flag.String("tablemode", engine.DefaultOptions().TableMode.String(), "depthaware, exactdepth, depthagnostic or disabled")
	moveTime := flag.Duration("movetime", engine.DefaultOptions().MoveTime, "default time per move")
	logLevel := flag.String("loglevel", "info", "zerolog level (debug, info, warn, error, disabled)")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	opts := engine.DefaultOptions()
	opts.HashMB = *hashMB
	opts.MoveTime = *moveTime
	if opts.TableMode, err = engine.ParseTableMode(*tableMode); err != nil {
		log.Fatal().Err(err).Msg("bad -tablemode")
	}

	u, err := newUCI(os.Stdout, *backend, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start engine")
	}
	u.loop(os.Stdin)
}

type uci struct {
	out      io.Writer
	backend  string
	opts     engine.Options
	searcher *engine.Searcher
	logger   zerolog.Logger
	gameID   string

	fen   string
	moves []string
	pos   engine.Position
}

func newUCI(out io.Writer, backend string, opts engine.Options) (*uci, error) {
	if !rules.Valid(backend) {
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
	s, err := engine.NewSearcher(opts)
	if err != nil {
		return nil, err
	}
	u := &uci{out: out, backend: strings.ToLower(backend), opts: opts, searcher: s}
	u.newGame()
	return u, nil
}

func (u *uci) println(a ...any) { fmt.Fprintln(u.out, a...) }

func (u *uci) loop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !u.handle(scanner.Text()) {
			return
		}
	}
}

// handle runs one command line and reports whether the loop should go on.
func (u *uci) handle(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 { // ignore blank lines
		return true
	}
	switch strings.ToLower(tokens[0]) {
	case "uci":
		u.println("id name chess-bot")
		u.println("id author chess-bot developers")
		u.println("option name Hash type spin default", engine.DefaultOptions().HashMB, "min 1 max 4096")
		u.println("option name TableMode type combo default depthaware var depthaware var exactdepth var depthagnostic var disabled")
		u.println("option name Backend type combo default", rules.DefaultBackend, "var", strings.Join(rules.Backends(), " var "))
		u.println("option name KeepTable type check default false")
		u.println("uciok")
	case "isready":
		u.println("readyok")
	case "ucinewgame":
		u.newGame()
	case "position":
		u.position(tokens[1:])
	case "go":
		u.goCmd(tokens[1:])
	case "eval":
		u.eval()
	case "d":
		u.display()
	case "setoption":
		u.setOption(tokens[1:])
	case "stop":
		// Searches run synchronously; nothing is in flight here.
	case "quit":
		return false
	default:
		u.println("info string Unknown command:", line)
	}
	return true
}

func (u *uci) newGame() {
	u.gameID = uuid.NewString()
	u.resetLogger()
	u.searcher.ResetForNewGame()
	if err := u.setPosition(startFEN, nil); err != nil {
		u.logger.Error().Err(err).Msg("start position rejected")
	}
	u.logger.Info().Msg("new game")
}

// resetLogger tags log events with the current game and backend.
func (u *uci) resetLogger() {
	u.logger = log.With().Str("game", u.gameID).Str("backend", u.backend).Logger()
}

// setPosition rebuilds the position from fen plus moves on the current
// backend. The previous position is kept if anything fails.
func (u *uci) setPosition(fen string, moves []string) error {
	pos, err := rules.New(u.backend, fen)
	if err != nil {
		return err
	}
	for _, moveStr := range moves {
		moveStr = strings.ToLower(moveStr)
		legal := pos.LegalMoves()
		i := slices.IndexFunc(legal, func(m engine.Move) bool { return m.String() == moveStr })
		if i < 0 {
			return fmt.Errorf("move %s is not legal", moveStr)
		}
		pos.Apply(legal[i])
	}
	u.fen, u.moves, u.pos = fen, moves, pos
	return nil
}

func (u *uci) position(args []string) {
	if len(args) == 0 {
		u.println("info string Malformed position command")
		return
	}
	var fen string
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		fen = startFEN
	case "fen":
		i := slices.IndexFunc(rest, func(s string) bool { return strings.EqualFold(s, "moves") })
		if i < 0 {
			i = len(rest)
		}
		fen = strings.Join(rest[:i], " ")
		rest = rest[i:]
		if fen == "" {
			u.println("info string Invalid fen position")
			return
		}
	default:
		u.println("info string Invalid position subcommand")
		return
	}

	var moves []string
	if len(rest) > 0 && strings.EqualFold(rest[0], "moves") {
		moves = append(moves, rest[1:]...)
	}
	if err := u.setPosition(fen, moves); err != nil {
		u.println("info string", err)
		u.logger.Warn().Err(err).Str("fen", fen).Msg("position rejected")
	}
}

type goParams struct {
	depth      int
	moveTime   int
	time, inc  [2]int
	hasClock   bool
	hasBudget  bool
	onlyDepth  bool
	unparsable []string
}

func parseGo(args []string) (p goParams) {
	intArg := func(i int) (int, bool) {
		if i+1 >= len(args) {
			return 0, false
		}
		v, err := strconv.Atoi(args[i+1])
		return v, err == nil
	}
	for i := 0; i < len(args); i++ {
		tok := strings.ToLower(args[i])
		var dst *int
		var seen *bool
		switch tok {
		case "infinite", "ponder":
			continue
		case "depth":
			dst = &p.depth
		case "movetime":
			dst, seen = &p.moveTime, &p.hasBudget
		case "wtime":
			dst, seen = &p.time[engine.White], &p.hasClock
		case "btime":
			dst, seen = &p.time[engine.Black], &p.hasClock
		case "winc":
			dst = &p.inc[engine.White]
		case "binc":
			dst = &p.inc[engine.Black]
		default:
			p.unparsable = append(p.unparsable, tok)
			continue
		}
		v, ok := intArg(i)
		if i+1 < len(args) {
			i++ // the value token is consumed even when it is not a number
		}
		if !ok {
			p.unparsable = append(p.unparsable, tok)
			continue
		}
		*dst = v
		if seen != nil {
			*seen = true
		}
	}
	p.onlyDepth = p.depth > 0 && !p.hasBudget && !p.hasClock
	return p
}

func (u *uci) goCmd(args []string) {
	p := parseGo(args)
	for _, tok := range p.unparsable {
		u.println("info string Malformed go command option", tok)
	}

	stm := u.pos.SideToMove()
	var budget time.Duration
	switch {
	case p.hasBudget:
		budget = time.Duration(p.moveTime) * time.Millisecond
	case p.hasClock:
		budget = engine.AllocateMoveTime(p.time[stm], p.inc[stm], engine.GetPiecePhase(u.pos))
	case p.onlyDepth:
		budget = unlimitedTime
	default:
		budget = u.opts.MoveTime
	}

	res, err := u.searcher.ChooseMoveWithTimeLimit(u.pos, p.depth, budget)
	if err != nil {
		u.println("info string", err)
		u.println("bestmove 0000")
		return
	}
	for _, it := range res.Iterations {
		u.println(fmt.Sprintf("info depth %d score %s nodes %d time %d pv %v",
			it.Depth, uciScore(it.Score, stm), it.Nodes, it.Elapsed.Milliseconds(), it.Move))
	}
	u.logger.Debug().Stringer("move", res.Move).Int("depth", res.Depth).Msg("bestmove")
	u.println("bestmove", res.Move)
}

// uciScore renders s from the side to move's view: centipawns or mate in
// moves, negative when the side to move is being mated.
func uciScore(s engine.Score, stm engine.Color) string {
	s = s.For(stm)
	switch {
	case s.IsWin():
		return fmt.Sprintf("mate %d", (s.Plies()+1)/2)
	case s.IsLoss():
		return fmt.Sprintf("mate -%d", (s.Plies()+1)/2)
	}
	return fmt.Sprintf("cp %d", int(math.Round(s.Value()*100)))
}

func (u *uci) eval() {
	terms := engine.EvaluateTerms(u.pos)
	u.println(fmt.Sprintf("info string material %.2f positional %.2f placement %.2f pawns %.2f",
		terms.Material, terms.Positional, terms.Placement, terms.PawnCount))
	u.println(fmt.Sprintf("info string safety %.2f pressure %.2f center %.2f development %.2f castling %.2f check %.2f",
		terms.Safety, terms.Pressure, terms.Center, terms.Development, terms.Castling, terms.Check))
	u.println("info string eval", engine.Evaluate(u.pos))
}

func (u *uci) display() {
	if f, ok := u.pos.(interface{ FEN() string }); ok {
		u.println("info string fen", f.FEN())
	}
	u.println(fmt.Sprintf("info string key %016x side %v legal %d depth %d",
		u.pos.Key(), u.pos.SideToMove(), len(u.pos.LegalMoves()), engine.ChooseDepth(u.pos)))
	ordered := lo.Map(engine.OrderMoves(u.pos), func(m engine.Move, _ int) string { return m.String() })
	u.println("info string ordered", strings.Join(ordered, " "))
}

func (u *uci) setOption(args []string) {
	// setoption name <id> value <x>
	var name, value string
	for i := 0; i+1 < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "name":
			name = args[i+1]
		case "value":
			value = strings.Join(args[i+1:], " ")
		}
	}
	if name == "" {
		u.println("info string Malformed setoption command")
		return
	}

	opts := u.opts
	backend := u.backend
	switch strings.ToLower(name) {
	case "hash":
		mb, err := strconv.Atoi(value)
		if err != nil {
			u.println("info string Hash needs an integer value")
			return
		}
		opts.HashMB = mb
	case "tablemode":
		mode, err := engine.ParseTableMode(value)
		if err != nil {
			u.println("info string", err)
			return
		}
		opts.TableMode = mode
	case "keeptable":
		keep, err := strconv.ParseBool(value)
		if err != nil {
			u.println("info string KeepTable needs true or false")
			return
		}
		opts.KeepTable = keep
	case "backend":
		if !rules.Valid(value) {
			u.println("info string Unknown backend", value)
			return
		}
		backend = strings.ToLower(value)
	default:
		u.println("info string Unknown option", name)
		return
	}

	s, err := engine.NewSearcher(opts)
	if err != nil {
		u.println("info string", err)
		return
	}
	u.opts, u.searcher = opts, s
	if backend != u.backend {
		u.backend = backend
		u.resetLogger()
		if err := u.setPosition(u.fen, u.moves); err != nil {
			u.println("info string", err)
		}
	}
	u.logger.Info().Str("option", name).Str("value", value).Msg("option set")
}
