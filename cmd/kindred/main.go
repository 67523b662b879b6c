package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kindred/internal/behavior"
	"kindred/internal/cmdlog"
	"kindred/internal/config"
	"kindred/internal/jobs"
	"kindred/internal/match"
	"kindred/internal/metrics"
	"kindred/internal/model"
	"kindred/internal/neighbor"
	"kindred/internal/store/profiledb"
	"kindred/internal/theme"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "init":
		cmdInit()
	case "analyze":
		cmdAnalyze()
	case "profile":
		cmdProfile()
	case "match":
		cmdMatch()
	case "similar":
		cmdSimilar()
	case "watch":
		cmdWatch()
	default:
		printHelp()
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: kindred <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init        Create a config file at ./kindred.yaml")
	fmt.Println("  analyze     Run the analysis pipeline over the newest dump")
	fmt.Println("  profile     Show one author's behavioral profile")
	fmt.Println("  match       Rank authors against your preferences")
	fmt.Println("  similar     Find posts nearest to a given post")
	fmt.Println("  watch       Re-run analysis on an interval")
}

func loadConfig(path string) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	return cfg
}

func openDB(cfg config.Config) *profiledb.DB {
	db, err := profiledb.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	return db
}

func cmdInit() {
	out := flag.NewFlagSet("init", flag.ExitOnError)
	path := out.String("path", "./kindred.yaml", "path to write config")
	_ = out.Parse(os.Args[2:])
	cfg := config.Default()
	if err := config.Save(*path, cfg); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
}

func cmdAnalyze() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	cfgPath := fs.String("config", "./kindred.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	metrics.StartServer(cfg.Metrics.Addr)
	db := openDB(cfg)
	defer db.Close()
	_ = cmdlog.Run("analyze", func() error {
		res, err := jobs.RunOnce(context.Background(), db, cfg)
		if err != nil {
			return err
		}
		fmt.Printf("Analyzed %d posts from %s\n", len(res.Posts), res.Source)
		fmt.Printf("Profiles: %d  Record-level defaults: %d\n", len(res.Profiles), res.Failures)
		return nil
	})
}

func cmdProfile() {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	cfgPath := fs.String("config", "./kindred.yaml", "config path")
	user := fs.String("user", "", "author to look up")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	db := openDB(cfg)
	defer db.Close()
	_ = cmdlog.Run("profile", func() error {
		profiles, err := db.LoadProfiles(context.Background())
		if err != nil {
			return err
		}
		printProfile(behavior.GetProfile(*user, profiles))
		return nil
	})
}

func printProfile(v behavior.ProfileView) {
	fmt.Printf("User: %s\n", v.Author)
	fmt.Printf("  response time:   %s\n", v.ResponseTime)
	fmt.Printf("  messages:        %d\n", v.MessageFrequency)
	fmt.Printf("  engagement:      %s\n", v.EngagementLevel)
	fmt.Printf("  style:           %s\n", v.CommunicationStyle)
	fmt.Printf("  active hours:    %d\n", v.ActiveHours)
	fmt.Printf("  weekend activity: %s\n", v.WeekendActivity)
}

func cmdMatch() {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	cfgPath := fs.String("config", "./kindred.yaml", "config path")
	style := fs.String("style", "neutral", "preferred communication style (positive|neutral|critical)")
	respTime := fs.Float64("response-time", 6, "preferred response time in hours")
	engagement := fs.String("engagement", "medium", "preferred engagement level (low|medium|high)")
	top := fs.Int("top", 0, "number of matches (config default if 0)")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	db := openDB(cfg)
	defer db.Close()
	_ = cmdlog.Run("match", func() error {
		st, err := model.ParseCommStyle(*style)
		if err != nil {
			return err
		}
		lvl, err := model.ParseEngagementLevel(*engagement)
		if err != nil {
			return err
		}
		profiles, err := db.LoadProfiles(context.Background())
		if err != nil {
			return err
		}
		n := *top
		if n <= 0 {
			n = cfg.Match.TopN
		}
		prefs := model.Preferences{CommunicationStyle: st, ResponseTime: *respTime, EngagementLevel: lvl}
		results, err := match.Rank(profiles, prefs, n)
		if err != nil {
			return err
		}
		for i, r := range results {
			fmt.Printf("\nMatch %d: %s (score %.1f)\n", i+1, r.Author, r.Score)
			printProfile(behavior.GetProfile(r.Author, profiles))
		}
		return nil
	})
}

func cmdSimilar() {
	fs := flag.NewFlagSet("similar", flag.ExitOnError)
	cfgPath := fs.String("config", "./kindred.yaml", "config path")
	postID := fs.String("post", "", "post id to query")
	k := fs.Int("k", 0, "neighbor count (config default if 0)")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	db := openDB(cfg)
	defer db.Close()
	_ = cmdlog.Run("similar", func() error {
		rows, err := db.LoadVectors(context.Background())
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return fmt.Errorf("no stored vectors; run analyze first")
		}
		row := -1
		matrix := make([][]float32, len(rows))
		for i, r := range rows {
			matrix[i] = r.Vector
			if r.PostID == *postID {
				row = i
			}
		}
		if row < 0 {
			return fmt.Errorf("post %q not in last run", *postID)
		}
		index := neighbor.New(cfg.Analysis.Neighbors)
		index.Fit(matrix)
		hits, err := index.QueryRow(row, *k)
		if err != nil {
			return err
		}
		for _, h := range hits {
			fmt.Printf("%s by %s distance=%.4f\n", rows[h.Index].PostID, rows[h.Index].Author, h.Distance)
		}
		return nil
	})
}

func cmdWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	cfgPath := fs.String("config", "./kindred.yaml", "config path")
	interval := fs.Duration("interval", 15*time.Minute, "re-analysis interval")
	_ = fs.Parse(os.Args[2:])
	cfg := loadConfig(*cfgPath)
	metrics.StartServer(cfg.Metrics.Addr)
	db := openDB(cfg)
	defer db.Close()
	_ = cmdlog.Run("watch", func() error {
		return jobs.RunLoop(context.Background(), db, cfg, *interval, nil)
	})
}
