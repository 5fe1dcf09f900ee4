package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jwhitfield/pixelpilot/internal/action"
	"github.com/jwhitfield/pixelpilot/internal/classify"
	"github.com/jwhitfield/pixelpilot/internal/codec"
	"github.com/jwhitfield/pixelpilot/internal/config"
	"github.com/jwhitfield/pixelpilot/internal/control"
	"github.com/jwhitfield/pixelpilot/internal/episode"
	"github.com/jwhitfield/pixelpilot/internal/regions"
	"github.com/jwhitfield/pixelpilot/internal/variant"
)

const commandTimeout = 60 * time.Second

// #region main

func main() {
	variantName := flag.String("variant", envOr("PIXELPILOT_VARIANT", "deja_vu"), "game variant profile")
	configPath := flag.String("config", "", "explicit config file (default: configs/<variant>.yaml)")
	dbPath := flag.String("db", envOr("PIXELPILOT_DB", "pixelpilot.db"), "episode database path")
	addr := flag.String("addr", envOr("EMULATOR_ADDR", "localhost:50051"), "emulator gRPC address")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pixelpilot",
	})

	profile, err := variant.Get(*variantName)
	if err != nil {
		logger.Fatal("unknown variant", "error", err)
	}
	cfg, err := config.Load(*variantName, *configPath)
	if err != nil {
		logger.Fatal("load config", "error", err)
	}
	profile = cfg.Apply(profile)

	bundle, err := variant.Build(profile, regions.DirSource{Root: cfg.AssetRoot()})
	if err != nil {
		logger.Fatal("build catalog", "variant", profile.Name, "assets", cfg.AssetRoot(), "error", err)
	}

	client, err := codec.NewClient(*addr)
	if err != nil {
		logger.Fatal("connect emulator", "addr", *addr, "error", err)
	}
	defer client.Close()

	store, err := episode.NewStore(*dbPath)
	if err != nil {
		logger.Fatal("open episode store", "db", *dbPath, "error", err)
	}
	defer store.Close()

	ep, err := store.BeginEpisode(profile.Name)
	if err != nil {
		logger.Fatal("begin episode", "error", err)
	}
	defer func() {
		if err := store.EndEpisode(ep.EpisodeID); err != nil {
			logger.Error("end episode", "error", err)
		}
	}()

	rt := &action.Runtime{
		Source:     client,
		Classifier: bundle.Classifier,
		Judge:      bundle.Judge,
		Epsilon:    profile.Epsilon,
		Budgets:    cfg.ActionBudgets(),
	}
	ctl := control.New()

	logger.Info("ready", "variant", profile.Name, "emulator", *addr, "episode", ep.EpisodeID)
	fmt.Println("Type a command (help for the list, quit to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if line == "help" {
			for _, doc := range ctl.ActionStrings() {
				fmt.Println("  " + doc)
			}
			continue
		}
		runCommand(logger, store, ctl, rt, ep.EpisodeID, line)
	}
}

// #endregion main

// #region command

func runCommand(logger *log.Logger, store *episode.Store, ctl *control.Controller, rt *action.Runtime, episodeID, line string) {
	act, params := ctl.StringToAction(line)
	if act == nil {
		logger.Warn("unparseable command", "command", line)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	modeBefore, err := rt.Mode(ctx)
	if err != nil {
		logger.Error("classify current frame", "error", err)
		return
	}

	// A cursor resting on the menu's option list can corrupt the UI framing
	// the matcher depends on; steer off it before doing anything else.
	if modeBefore == classify.InMenu {
		if cur, err := rt.Source.CurrentFrame(ctx); err == nil && rt.Classifier.CursorOnMenuOptions(cur) {
			logger.Warn("cursor resting on option list, steering down first", "command", line)
			act, params = ctl.StringToAction("menu(down)")
		}
	}

	if !act.Valid(modeBefore, params) {
		logger.Warn("command not valid in current mode", "command", act.Name(), "mode", modeBefore)
		return
	}

	out, err := act.Execute(ctx, rt, params)
	if err != nil {
		logger.Error("execute", "command", act.Name(), "error", err)
		return
	}

	modeAfter := modeBefore
	if final := out.Final(); final != nil {
		modeAfter = final.Mode
	}
	fmt.Printf("[%s] outcome=%s mode=%s snapshots=%d\n", act.Name(), out.Code, modeAfter, len(out.Snapshots))

	inv := episode.Invocation{
		EpisodeID: episodeID,
		Command:   line,
		Action:    act.Name(),
		Outcome:   int(out.Code),
		Snapshots: len(out.Snapshots),
	}
	if data, err := json.Marshal(params); err == nil && len(params) > 0 {
		inv.ParamsJSON = string(data)
	}
	if final := out.Final(); final != nil && final.Move != nil {
		steps := final.Move.StepsTaken
		inv.StepsTaken = &steps
		inv.Rotated = final.Move.Rotated
		fmt.Printf("  steps_taken=%d rotated=%s\n", steps, rotatedString(final.Move.Rotated))
	}
	if _, err := store.RecordInvocation(inv, episode.Decision{
		ModeBefore: int(modeBefore),
		ModeAfter:  int(modeAfter),
		StopReason: out.Code.String(),
	}); err != nil {
		logger.Error("record invocation", "error", err)
	}
}

func rotatedString(r *bool) string {
	if r == nil {
		return "unknown"
	}
	return fmt.Sprintf("%v", *r)
}

// #endregion command

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
